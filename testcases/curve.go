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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var curveCases = []TestCase{
	fixture("quadratic_bowl", (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(20, 0)).
		QuadTo(pt(20, 20), pt(0, 20)).
		Close(), 2),
	fixture("quadratic_arch", (&path.Data{}).
		MoveTo(pt(0, 16)).
		QuadTo(pt(12, -8), pt(24, 16)).
		LineTo(pt(12, 16)).
		Close(), 2),
	fixture("circle", circle(12, 12, 12, false), 2),
}

// circle builds a circle from eight quadratic arcs.  The outline runs
// clockwise on screen, or counter-clockwise if reverse is set.
func circle(cx, cy, r float64, reverse bool) *path.Data {
	const n = 8
	step := 2 * math.Pi / n
	if reverse {
		step = -step
	}
	// the control point of each arc lies on the bisecting ray
	rc := r / math.Cos(math.Pi/n)

	p := (&path.Data{}).MoveTo(pt(cx+r, cy))
	for i := range n {
		mid := (float64(i) + 0.5) * step
		end := float64(i+1) * step
		p = p.QuadTo(
			pt(cx+rc*math.Cos(mid), cy+rc*math.Sin(mid)),
			pt(cx+r*math.Cos(end), cy+r*math.Sin(end)),
		)
	}
	return p.Close()
}
