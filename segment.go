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

	"seehuhn.de/go/geom/vec"
)

// Segment is one piece of a glyph outline, parametrised over t in [0, 1].
//
// The only implementations are [Line] and [Quadratic].
type Segment interface {
	// Point evaluates the segment at parameter t.  Values of t outside
	// [0, 1] extrapolate the segment.
	Point(t float64) vec.Vec2

	// Tangent returns the unit tangent direction at t, or the zero vector
	// where the derivative vanishes.
	Tangent(t float64) vec.Vec2

	// NearestT returns the parameter of the point nearest to p.
	// The result is not clamped to [0, 1].
	NearestT(p vec.Vec2) float64

	// Start and End return the end points of the segment.
	Start() vec.Vec2
	End() vec.Vec2

	isSegment()
}

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 vec.Vec2
}

func (Line) isSegment() {}

// Start implements the [Segment] interface.
func (l Line) Start() vec.Vec2 { return l.P0 }

// End implements the [Segment] interface.
func (l Line) End() vec.Vec2 { return l.P1 }

// Point implements the [Segment] interface.
func (l Line) Point(t float64) vec.Vec2 {
	return l.P0.Add(l.P1.Sub(l.P0).Mul(t))
}

// Tangent implements the [Segment] interface.
// The tangent of a line does not depend on t.
func (l Line) Tangent(float64) vec.Vec2 {
	return unit(l.P1.Sub(l.P0))
}

// NearestT projects p orthogonally onto the infinite line through P0 and
// P1.  For a zero-length line the result is 0.
func (l Line) NearestT(p vec.Vec2) float64 {
	d := l.P1.Sub(l.P0)
	dd := d.Dot(d)
	if dd == 0 {
		return 0
	}
	return p.Sub(l.P0).Dot(d) / dd
}

// Quadratic is a quadratic Bézier segment from P0 to P2 with control
// point P1.
type Quadratic struct {
	P0, P1, P2 vec.Vec2
}

func (Quadratic) isSegment() {}

// Start implements the [Segment] interface.
func (q Quadratic) Start() vec.Vec2 { return q.P0 }

// End implements the [Segment] interface.
func (q Quadratic) End() vec.Vec2 { return q.P2 }

// Point implements the [Segment] interface.
func (q Quadratic) Point(t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return q.P0.Mul(omt * omt).Add(q.P1.Mul(2 * omt * t)).Add(q.P2.Mul(t * t))
}

// Tangent implements the [Segment] interface.
func (q Quadratic) Tangent(t float64) vec.Vec2 {
	// B'(t) = 2(1-t)(P1-P0) + 2t(P2-P1)
	d := q.P1.Sub(q.P0).Mul(2 * (1 - t)).Add(q.P2.Sub(q.P1).Mul(2 * t))
	return unit(d)
}

// NearestT samples the curve at quadraticSamples+1 evenly spaced parameters
// and returns the one closest to p.  The result always lies in [0, 1].
func (q Quadratic) NearestT(p vec.Vec2) float64 {
	best := 0.0
	bestDist := math.Inf(1)
	for i := 0; i <= quadraticSamples; i++ {
		t := float64(i) / quadraticSamples
		if d := distSq(q.Point(t), p); d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best
}

// isDegenerate reports whether the end points of seg coincide to within
// degenerateThreshold.
func isDegenerate(seg Segment) bool {
	return dist(seg.Start(), seg.End()) < degenerateThreshold
}

const (
	// quadraticSamples is the number of intervals used to search for the
	// nearest point on a quadratic segment.
	quadraticSamples = 100

	// degenerateThreshold is the minimum distance between the end points
	// of a segment.  Shorter segments are dropped when a shape is built
	// from an outline.
	degenerateThreshold = 1e-4
)
