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
	"seehuhn.de/go/geom/path"
)

var contourCases = []TestCase{
	fixture("ring", join(
		rectangle(0, 0, 20, 20),
		reversedRectangle(6, 6, 14, 14),
	), 2),
	fixture("debug_quad", join(
		polygon(1, 1, 14, 2, 13, 15, 2, 14),
		reversedRectangle(4, 4, 6, 6),
	), 1),
	fixture("two_squares", join(
		rectangle(0, 0, 8, 8),
		rectangle(12, 4, 20, 12),
	), 2),
	fixture("donut", join(
		circle(12, 12, 12, false),
		circle(12, 12, 6, true),
	), 2),
}

// join concatenates the contours of several paths.
func join(paths ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range paths {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
