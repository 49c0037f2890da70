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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// NumPlanes is the number of planes, and thus color channels, of a shape.
const NumPlanes = 3

// Shape is the outline of one glyph.
//
// Planes share the segment values stored in Segments; they are filled by
// [Shape.SplitPlanes].
type Shape struct {
	// Width and Height give the extent of the coordinate space covered by
	// the distance field.  These are not pixel counts.
	Width, Height float64

	// Segments lists the outline segments in the order they were added.
	Segments []Segment

	// Planes holds the three segment subsets, one per color channel.
	Planes [NumPlanes][]Segment
}

// NewShape returns an empty shape covering [0, width] × [0, height].
func NewShape(width, height float64) *Shape {
	return &Shape{
		Width:  width,
		Height: height,
	}
}

// Add appends a segment to the shape.  Segments whose end points coincide
// are rejected with [ErrDegenerateSegment].
func (s *Shape) Add(seg Segment) error {
	if isDegenerate(seg) {
		return fmt.Errorf("%w: %v", ErrDegenerateSegment, seg.Start())
	}
	s.Segments = append(s.Segments, seg)
	return nil
}

// AddPolyline appends one line for every pair of consecutive points.
// Zero-length lines are skipped.
func (s *Shape) AddPolyline(pts ...vec.Vec2) {
	for i := 0; i+1 < len(pts); i++ {
		s.addIfProper(Line{P0: pts[i], P1: pts[i+1]})
	}
}

func (s *Shape) addIfProper(seg Segment) {
	if isDegenerate(seg) {
		return
	}
	s.Segments = append(s.Segments, seg)
}

// SplitPlanes assigns the segments to the three planes by position:
// plane 0 gets segment 0 and all even indices, plane 1 gets segment 0 and
// all odd indices, plane 2 gets every segment except segment 0.
// Existing plane contents are discarded.
func (s *Shape) SplitPlanes() {
	for k := range s.Planes {
		s.Planes[k] = s.Planes[k][:0]
	}
	for i, seg := range s.Segments {
		if i%2 == 0 {
			s.Planes[0] = append(s.Planes[0], seg)
		}
		if i == 0 || i%2 != 0 {
			s.Planes[1] = append(s.Planes[1], seg)
		}
		if i != 0 {
			s.Planes[2] = append(s.Planes[2], seg)
		}
	}
}

// ShapeFromPath converts a glyph outline into a shape.
//
// The outline is translated so that the lower-left corner of bbox lands at
// (padding, padding), and the shape extent is the size of bbox plus padding
// on each side.  A close command adds a line back to the most recent
// move-to point.  Segments shorter than 1e-4 are dropped.  Outlines with
// cubic segments are rejected with [ErrCubic].
func ShapeFromPath(p *path.Data, bbox rect.Rect, padding float64) (*Shape, error) {
	s := NewShape(bbox.URx-bbox.LLx+2*padding, bbox.URy-bbox.LLy+2*padding)
	offset := vec.Vec2{X: padding - bbox.LLx, Y: padding - bbox.LLy}
	tr := func(v vec.Vec2) vec.Vec2 { return v.Add(offset) }

	var current, start vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = tr(p.Coords[coordIdx])
			start = current
			coordIdx++

		case path.CmdLineTo:
			next := tr(p.Coords[coordIdx])
			s.addIfProper(Line{P0: current, P1: next})
			current = next
			coordIdx++

		case path.CmdQuadTo:
			ctrl := tr(p.Coords[coordIdx])
			next := tr(p.Coords[coordIdx+1])
			s.addIfProper(Quadratic{P0: current, P1: ctrl, P2: next})
			current = next
			coordIdx += 2

		case path.CmdCubeTo:
			return nil, ErrCubic

		case path.CmdClose:
			s.addIfProper(Line{P0: current, P1: start})
			current = start
		}
	}
	return s, nil
}
