// seehuhn.de/go/msdf - multi-channel signed distance fields for text
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package msdf

import (
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/msdf/testcases"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	shape := NewShape(10, 1)
	shape.AddPolyline(
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 10, Y: 0},
		vec.Vec2{X: 10, Y: 1},
		vec.Vec2{X: 0, Y: 0},
	)

	coverage := Coverage(shape, 10, 1)

	const epsilon = 1e-5
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// TestCoverageScaled checks that the shape is mapped onto the pixel grid
// the same way as in FillPlane.
func TestCoverageScaled(t *testing.T) {
	shape := NewShape(16, 16)
	shape.AddPolyline(
		vec.Vec2{X: 4, Y: 4},
		vec.Vec2{X: 12, Y: 4},
		vec.Vec2{X: 12, Y: 12},
		vec.Vec2{X: 4, Y: 12},
		vec.Vec2{X: 4, Y: 4},
	)

	coverage := Coverage(shape, 8, 8)
	for y := range 8 {
		for x := range 8 {
			var want float32
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := coverage[y*8+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d, %d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

// TestCoverageAgainstVector compares the coverage masks of all fixtures
// with the output of golang.org/x/image/vector.
func TestCoverageAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				shape, err := ShapeFromPath(tc.Path, tc.Bounds, tc.Padding)
				if err != nil {
					t.Fatal(err)
				}
				w, h := tc.Width, tc.Height
				got := Coverage(shape, w, h)
				want := vectorCoverage(shape, w, h)

				// flattening of curves differs between the two
				// rasterizers by up to a quarter pixel
				tolerance := 0.05
				if category == "curve" || tc.Name == "donut" {
					tolerance = 0.5
				}

				var maxDiff float64
				for i := range got {
					maxDiff = max(maxDiff, math.Abs(float64(got[i])-want[i]))
				}
				if maxDiff > tolerance {
					t.Errorf("max coverage difference %.3f", maxDiff)
				}
			})
		}
	}
}

// vectorCoverage rasterises the segments of shape using
// golang.org/x/image/vector.
func vectorCoverage(shape *Shape, width, height int) []float64 {
	r := vector.NewRasterizer(width, height)
	sx := float32(float64(width) / shape.Width)
	sy := float32(float64(height) / shape.Height)

	pen := vec.Vec2{X: math.NaN()}
	for _, seg := range shape.Segments {
		if start := seg.Start(); start != pen {
			r.MoveTo(float32(start.X)*sx, float32(start.Y)*sy)
		}
		switch seg := seg.(type) {
		case Line:
			r.LineTo(float32(seg.P1.X)*sx, float32(seg.P1.Y)*sy)
		case Quadratic:
			r.QuadTo(
				float32(seg.P1.X)*sx, float32(seg.P1.Y)*sy,
				float32(seg.P2.X)*sx, float32(seg.P2.Y)*sy)
		}
		pen = seg.End()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	res := make([]float64, width*height)
	for i, a := range dst.Pix {
		res[i] = float64(a) / 255
	}
	return res
}
