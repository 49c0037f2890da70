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

var polygonCases = []TestCase{
	fixture("square", rectangle(0, 0, 12, 12), 2),
	fixture("rectangle_wide", rectangle(0, 0, 30, 8), 3),
	fixture("triangle", triangle(0, 0, 20, 4, 6, 18), 3),
	fixture("pentagon", regularPolygon(10, 10, 10, 5), 2),
	fixture("l_shape", polygon(
		0, 0,
		6, 0,
		6, 14,
		14, 14,
		14, 20,
		0, 20,
	), 2),
}

// rectangle builds a rectangle, clockwise on screen.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// reversedRectangle builds a rectangle, counter-clockwise on screen.
func reversedRectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x1, y2)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x2, y1)).
		Close()
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return polygon(x1, y1, x2, y2, x3, y3)
}

// polygon builds a closed polygon from a flat list of coordinates.
func polygon(xy ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}

// regularPolygon builds a regular n-gon with circumradius r, starting at
// the top and running clockwise on screen.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	xy := make([]float64, 0, 2*n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		xy = append(xy, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(xy...)
}
