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

// DistanceMap is a dense grid of signed distances, in row-major order.
// Data[j*Width+i] holds the value for pixel column i in row j.
type DistanceMap struct {
	Width, Height int
	Data          []float32
}

// NewDistanceMap allocates a zeroed distance map.
func NewDistanceMap(width, height int) *DistanceMap {
	return &DistanceMap{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height),
	}
}

// At returns the value stored for pixel (i, j).
func (m *DistanceMap) At(i, j int) float32 {
	return m.Data[j*m.Width+i]
}

// Resize changes the dimensions of m, reusing the existing storage where
// possible.  The contents are unspecified afterwards.
func (m *DistanceMap) Resize(width, height int) {
	n := width * height
	if cap(m.Data) < n {
		m.Data = make([]float32, n)
	}
	m.Data = m.Data[:n]
	m.Width = width
	m.Height = height
}

// FillPlane overwrites every pixel of dm with the signed pseudo-distance
// to the nearest segment of plane.
//
// Pixel (i, j) is sampled at its center, mapped into the coordinate space
// of shape.  Segments are ranked by clamped distance; when two distances
// differ by less than tieEpsilon, the segment with the larger
// orthogonality wins.  The stored value is the perpendicular distance to
// the winning segment, multiplied by its sign.
//
// Planes with fewer than two segments are rejected with [ErrEmptyPlane]
// or [ErrSingleSegmentPlane].
func FillPlane(dm *DistanceMap, shape *Shape, plane []Segment) error {
	switch len(plane) {
	case 0:
		return ErrEmptyPlane
	case 1:
		return ErrSingleSegmentPlane
	}
	if dm.Width <= 0 || dm.Height <= 0 || len(dm.Data) != dm.Width*dm.Height {
		return ErrBufferSize
	}

	cell := vec.Vec2{
		X: shape.Width / float64(dm.Width),
		Y: shape.Height / float64(dm.Height),
	}

	for j := range dm.Height {
		row := dm.Data[j*dm.Width : (j+1)*dm.Width]
		for i := range dm.Width {
			p := scale(vec.Vec2{X: float64(i) + 0.5, Y: float64(j) + 0.5}, cell)
			seg := nearestSegment(plane, p)
			row[i] = float32(Measure(seg, p, Perpendicular).Signed())
		}
	}
	return nil
}

// SelectSegment returns the segment of plane which owns the distance value
// at p.  See [FillPlane] for the selection rule.
func SelectSegment(plane []Segment, p vec.Vec2) (Segment, error) {
	switch len(plane) {
	case 0:
		return nil, ErrEmptyPlane
	case 1:
		return nil, ErrSingleSegmentPlane
	}
	return nearestSegment(plane, p), nil
}

// nearestSegment performs a linear scan over plane with a single running
// best.  plane must not be empty.
func nearestSegment(plane []Segment, p vec.Vec2) Segment {
	best := plane[0]
	bestDist := Measure(best, p, Clamped)
	for _, seg := range plane[1:] {
		d := Measure(seg, p, Clamped)
		if closer(d, bestDist) {
			best = seg
			bestDist = d
		}
	}
	return best
}

// closer reports whether candidate should replace best.
func closer(candidate, best SegmentDistance) bool {
	if math.Abs(candidate.Distance-best.Distance) < tieEpsilon {
		return candidate.Orthogonality > best.Orthogonality
	}
	return candidate.Distance < best.Distance
}

// tieEpsilon is the largest difference, in shape units, for which two
// distances count as equal when ranking segments.
const tieEpsilon = 0.001
