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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in pixel coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// coverageRasterizer computes the fraction of each pixel covered by the
// interior of a shape, using the nonzero winding rule.
//
// Coverage accumulation model: for each pixel two values are tracked,
//
//	cover: signed vertical extent of edges crossing this pixel column
//	area:  cover weighted by how far left the crossing lies in the pixel
//
// and the final coverage of pixel i in a row is accumulated cover of the
// pixels left of i plus area[i], clamped to [0, 1].
type coverageRasterizer struct {
	// ctm maps shape coordinates to pixel coordinates.
	ctm matrix.Matrix

	// flatness is the curve approximation tolerance in pixels.
	flatness float64

	edges []edge
	cover []float32
	area  []float32
}

// Coverage rasterises the interior of shape onto a width × height grid,
// using the same mapping from shape space to pixels as [FillPlane].
// The result is in row-major order, with values between 0 and 1.
//
// Only the segments of shape are used; their direction determines the
// winding number, so the segments must form closed contours.
func Coverage(shape *Shape, width, height int) []float32 {
	r := &coverageRasterizer{
		ctm:      matrix.Scale(float64(width)/shape.Width, float64(height)/shape.Height),
		flatness: defaultFlatness,
	}
	for _, seg := range shape.Segments {
		switch seg := seg.(type) {
		case Line:
			r.addEdge(seg.P0, seg.P1)
		case Quadratic:
			r.flattenQuadratic(seg.P0, seg.P1, seg.P2)
		}
	}
	return r.fill(width, height)
}

// flattenQuadratic approximates a quadratic Bézier by edges.
func (r *coverageRasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// error vector e = (P0 - 2*P1 + P2) / 4, measured in pixels
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	eDev := vec.Vec2{
		X: r.ctm[0]*e.X + r.ctm[2]*e.Y,
		Y: r.ctm[1]*e.X + r.ctm[3]*e.Y,
	}

	n := 1
	if errDev := eDev.Length(); errDev > r.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.flatness)))
	}

	q := Quadratic{P0: p0, P1: p1, P2: p2}
	prev := p0
	for i := 1; i <= n; i++ {
		pt := q.Point(float64(i) / float64(n))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// addEdge transforms an edge to pixel space and records it.
// Horizontal edges do not contribute to coverage and are skipped.
func (r *coverageRasterizer) addEdge(p0, p1 vec.Vec2) {
	q0 := r.ctm.Apply(p0)
	q1 := r.ctm.Apply(p1)
	x0, y0 := q0.X, q0.Y
	x1, y1 := q1.X, q1.Y

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})
}

// fill accumulates all edges into a width × height buffer and integrates
// each scanline.
func (r *coverageRasterizer) fill(width, height int) []float32 {
	size := width * height
	r.cover = make([]float32, size)
	r.area = make([]float32, size)

	for i := range r.edges {
		e := &r.edges[i]
		yMin := max(int(math.Floor(min(e.y0, e.y1))), 0)
		yMax := min(int(math.Floor(max(e.y0, e.y1)))+1, height)
		for y := yMin; y < yMax; y++ {
			row := r.cover[y*width : (y+1)*width]
			area := r.area[y*width : (y+1)*width]
			accumulateEdge(e, y, row, area)
		}
	}

	for y := range height {
		integrateNonZero(r.cover[y*width:(y+1)*width], r.area[y*width:(y+1)*width])
	}
	return r.cover
}

// accumulateEdge adds the contribution of e within scanline [y, y+1) to
// cover and area.  Crossings left of the row are folded into the first
// pixel; crossings right of the row are dropped.
func accumulateEdge(e *edge, y int, cover, area []float32) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	// +1 for downward edges, -1 for upward edges
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))
	width := len(cover)

	if pixRight < 0 {
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	}
	if pixLeft >= width {
		return
	}

	if pixLeft == pixRight {
		addCrossing(e, yTop, yBot, sign, pixLeft, cover, area)
		return
	}

	// the edge spans several pixel columns: split it at column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yA := e.y0 + dydx*(float64(pix)-e.x0)
		yB := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(yA, yB), yTop)
		segBot := min(max(yA, yB), yBot)
		if segBot <= segTop {
			continue
		}
		addCrossing(e, segTop, segBot, sign, pix, cover, area)
	}
}

// addCrossing records the part of e between yTop and yBot, which lies
// within pixel column pix.
func addCrossing(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32) {
	v := sign * float32(yBot-yTop)
	if pix < 0 {
		cover[0] += v
		area[0] += v
		return
	}
	if pix >= len(cover) {
		return
	}

	yMid := (yTop + yBot) / 2
	xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)
	cover[pix] += v
	area[pix] += v * float32(1-xFrac)
}

// integrateNonZero converts one row of accumulated cover and area values
// to coverage, in place.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
