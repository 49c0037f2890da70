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

// Mode selects how [Measure] treats the segment's parameter range.
type Mode int

const (
	// Clamped restricts the nearest point to the segment itself.  This is
	// used to rank the segments of a plane against each other.
	Clamped Mode = iota

	// Perpendicular lets the nearest point run past the end points along
	// the extended segment.  The resulting pseudo-distance is what gets
	// stored once a segment has been selected; it keeps corners sharp.
	Perpendicular
)

// SegmentDistance describes the position of a query point relative to a
// segment.
type SegmentDistance struct {
	// T is the parameter of the closest point.
	T float64

	// Closest is the point on the segment nearest to the query point.
	Closest vec.Vec2

	// Distance is the (unsigned) distance from Closest to the query point.
	Distance float64

	// Sign is +1 or -1, depending on which side of the directed segment
	// the query point lies.
	Sign float64

	// Orthogonality is |sin| of the angle between the tangent at T and the
	// direction from Closest to the query point.  It is 1 when the query
	// point lies on the normal through Closest.
	Orthogonality float64
}

// Signed returns Distance*Sign.
func (d SegmentDistance) Signed() float64 {
	return d.Distance * d.Sign
}

// Measure computes the distance from p to seg.
func Measure(seg Segment, p vec.Vec2, mode Mode) SegmentDistance {
	t := seg.NearestT(p)
	if mode == Clamped {
		t = clamp01(t)
	}
	closest := seg.Point(t)
	tangent := seg.Tangent(t)
	pd := p.Sub(closest)

	sign := -1.0
	if cross(tangent, pd) > 0 {
		sign = 1
	}

	return SegmentDistance{
		T:             t,
		Closest:       closest,
		Distance:      pd.Length(),
		Sign:          sign,
		Orthogonality: math.Abs(cross(tangent, unit(pd))),
	}
}
