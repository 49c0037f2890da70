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

package glyphs

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/msdf"
)

// convert translates sfnt segments into a path.  Every contour is closed
// explicitly.
func convert(segs sfnt.Segments) (*path.Data, rect.Rect, error) {
	p := &path.Data{}
	var b bounds
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			pt := toVec(seg.Args[0])
			p = p.MoveTo(pt)
			b.addPoint(pt)
			open = true

		case sfnt.SegmentOpLineTo:
			pt := toVec(seg.Args[0])
			p = p.LineTo(pt)
			b.addPoint(pt)

		case sfnt.SegmentOpQuadTo:
			ctrl := toVec(seg.Args[0])
			pt := toVec(seg.Args[1])
			b.addQuad(current(p), ctrl, pt)
			p = p.QuadTo(ctrl, pt)

		case sfnt.SegmentOpCubeTo:
			return nil, rect.Rect{}, msdf.ErrCubic
		}
	}
	if open {
		p = p.Close()
	}
	return p, b.rect(), nil
}

// current returns the end point of the last coordinate in p.
func current(p *path.Data) vec.Vec2 {
	return p.Coords[len(p.Coords)-1]
}

func toVec(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: fixedToFloat64(p.X), Y: fixedToFloat64(p.Y)}
}

// bounds accumulates the exact bounding box of lines and quadratic curves.
type bounds struct {
	r     rect.Rect
	valid bool
}

func (b *bounds) addPoint(p vec.Vec2) {
	if !b.valid {
		b.r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		b.valid = true
		return
	}
	b.r.LLx = min(b.r.LLx, p.X)
	b.r.LLy = min(b.r.LLy, p.Y)
	b.r.URx = max(b.r.URx, p.X)
	b.r.URy = max(b.r.URy, p.Y)
}

// addQuad extends the box by the quadratic Bézier curve p0, p1, p2.  The
// control point only counts where the curve has an extremum.
func (b *bounds) addQuad(p0, p1, p2 vec.Vec2) {
	b.addPoint(p2)
	q := msdf.Quadratic{P0: p0, P1: p1, P2: p2}
	for _, t := range []float64{
		quadExtremum(p0.X, p1.X, p2.X),
		quadExtremum(p0.Y, p1.Y, p2.Y),
	} {
		if t > 0 && t < 1 {
			b.addPoint(q.Point(t))
		}
	}
}

// quadExtremum returns the parameter where the derivative of the
// one-dimensional quadratic Bézier a, b, c vanishes, or NaN if there is
// none.
func quadExtremum(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return math.NaN()
	}
	return (a - b) / den
}

func (b *bounds) rect() rect.Rect {
	if !b.valid {
		return rect.Rect{}
	}
	return b.r
}
