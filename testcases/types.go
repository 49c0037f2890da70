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

// Package testcases provides named glyph-like outlines for tests and proof
// sheets.
//
// All outlines use a y axis pointing down, like glyph outlines loaded from
// a font.  Outer contours run clockwise on screen and holes run
// counter-clockwise, so the inside of every fixture has negative signed
// distance.  Every fixture has at least three segments and no cubic
// curves.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase is a single named outline.
type TestCase struct {
	Name    string     // lowercase a-z and _ only
	Path    *path.Data // the outline
	Bounds  rect.Rect  // bounding box of all points of Path
	Padding float64    // space around Bounds, in outline units
	Width   int        // distance field width in pixels
	Height  int        // distance field height in pixels
}

// fixture builds a TestCase which samples the padded outline at roughly
// one pixel per unit.
func fixture(name string, p *path.Data, padding float64) TestCase {
	b := bounds(p)
	return TestCase{
		Name:    name,
		Path:    p,
		Bounds:  b,
		Padding: padding,
		Width:   int(math.Ceil(b.URx - b.LLx + 2*padding)),
		Height:  int(math.Ceil(b.URy - b.LLy + 2*padding)),
	}
}

// bounds returns the bounding box of all coordinates in p, including
// control points.
func bounds(p *path.Data) rect.Rect {
	if len(p.Coords) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, c := range p.Coords {
		b.LLx = min(b.LLx, c.X)
		b.LLy = min(b.LLy, c.Y)
		b.URx = max(b.URx, c.X)
		b.URy = max(b.URy, c.Y)
	}
	return b
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
