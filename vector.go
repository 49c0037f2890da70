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

// cross returns the two-dimensional cross product a.Y*b.X - a.X*b.Y.
// The sign convention determines which side of a directed segment counts
// as positive.
func cross(a, b vec.Vec2) float64 {
	return a.Y*b.X - a.X*b.Y
}

// unit returns a scaled to length 1.  The zero vector is returned unchanged.
func unit(a vec.Vec2) vec.Vec2 {
	l := a.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return divide(a, l)
}

// scale multiplies a and b component-wise.
func scale(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}

// divide divides both components of a by f.
func divide(a vec.Vec2, f float64) vec.Vec2 {
	return vec.Vec2{X: a.X / f, Y: a.Y / f}
}

// dist returns the Euclidean distance between a and b.
func dist(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// distSq returns the squared distance between a and b.
func distSq(a, b vec.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// clamp01 restricts t to the interval [0, 1].
func clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}
