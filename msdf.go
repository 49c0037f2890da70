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

// Package msdf generates multi-channel signed distance fields for glyph
// outlines.
//
// A [Shape] holds the line and quadratic segments of one glyph.  Its
// segments are split into three overlapping planes, and every plane is
// rasterised into a [DistanceMap] by [FillPlane].  [FillChannel] then stores
// each map in one color channel of an [Image].  A renderer recovers the
// outline by taking the median of the three channels.
//
// Plane membership is positional: plane 0 holds the segments at even
// indices, plane 1 the segments at odd indices, and both also hold
// segment 0; plane 2 holds every segment except segment 0.
// Corner-angle based edge coloring is not implemented.
package msdf
