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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestVectorHelpers(t *testing.T) {
	a := vec.Vec2{X: 3, Y: 4}
	b := vec.Vec2{X: 0.5, Y: -2}

	if got := scale(a, b); got != (vec.Vec2{X: 1.5, Y: -8}) {
		t.Errorf("scale = %v", got)
	}
	if got := divide(a, 2); got != (vec.Vec2{X: 1.5, Y: 2}) {
		t.Errorf("divide = %v", got)
	}
	if got := unit(a); got != (vec.Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("unit = %v", got)
	}
	if got := unit(vec.Vec2{}); got != (vec.Vec2{}) {
		t.Errorf("unit of zero = %v", got)
	}
	if got := dist(a, vec.Vec2{}); got != 5 {
		t.Errorf("dist = %g", got)
	}
	// a.Y*b.X - a.X*b.Y
	if got := cross(vec.Vec2{X: 1}, vec.Vec2{Y: 1}); got != -1 {
		t.Errorf("cross = %g", got)
	}
}
