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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestLine(t *testing.T) {
	l := Line{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 10, Y: 0}}

	if got := l.Point(0.25); got != (vec.Vec2{X: 2.5, Y: 0}) {
		t.Errorf("Point(0.25) = %v", got)
	}
	if got := l.Tangent(0.7); got != (vec.Vec2{X: 1, Y: 0}) {
		t.Errorf("Tangent = %v", got)
	}

	cases := []struct {
		p    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 5, Y: 3}, 0.5},
		{vec.Vec2{X: 15, Y: 0}, 1.5},
		{vec.Vec2{X: -5, Y: -1}, -0.5},
	}
	for _, c := range cases {
		if got := l.NearestT(c.p); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NearestT(%v) = %g, want %g", c.p, got, c.want)
		}
	}
}

func TestQuadratic(t *testing.T) {
	q := Quadratic{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 5, Y: 10},
		P2: vec.Vec2{X: 10, Y: 0},
	}

	if got := q.Point(0.5); got != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("Point(0.5) = %v", got)
	}
	if got := q.Point(1); got != q.P2 {
		t.Errorf("Point(1) = %v", got)
	}
	if got := q.Tangent(0.5); math.Abs(got.X-1) > 1e-12 || math.Abs(got.Y) > 1e-12 {
		t.Errorf("Tangent(0.5) = %v", got)
	}
	if got := q.NearestT(vec.Vec2{X: 5, Y: 8}); got != 0.5 {
		t.Errorf("NearestT = %g, want 0.5", got)
	}

	// far away points still map into [0, 1]
	if got := q.NearestT(vec.Vec2{X: -100, Y: 0}); got != 0 {
		t.Errorf("NearestT left = %g, want 0", got)
	}
	if got := q.NearestT(vec.Vec2{X: 100, Y: 0}); got != 1 {
		t.Errorf("NearestT right = %g, want 1", got)
	}
}

// TestDegenerateSegment checks that zero-length segments give finite
// results instead of NaN.
func TestDegenerateSegment(t *testing.T) {
	p0 := vec.Vec2{X: 3, Y: 4}
	segs := []Segment{
		Line{P0: p0, P1: p0},
		Quadratic{P0: p0, P1: p0, P2: p0},
	}
	for _, seg := range segs {
		if !isDegenerate(seg) {
			t.Errorf("%v: not detected as degenerate", seg)
		}
		for _, mode := range []Mode{Clamped, Perpendicular} {
			d := Measure(seg, vec.Vec2{}, mode)
			if math.IsNaN(d.Distance) || math.IsNaN(d.Orthogonality) || math.IsNaN(d.T) {
				t.Errorf("%v, mode %d: NaN in %+v", seg, mode, d)
			}
			if math.Abs(d.Distance-5) > 1e-9 {
				t.Errorf("%v, mode %d: distance %g, want 5", seg, mode, d.Distance)
			}
		}
	}

	if isDegenerate(Line{P0: p0, P1: vec.Vec2{X: 3, Y: 4.001}}) {
		t.Error("short line detected as degenerate")
	}
}
