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

package atlas

import (
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
)

// ErrUnknownRune is returned by [Layout] for characters missing from the
// atlas.
var ErrUnknownRune = errors.New("atlas: character not in atlas")

// TextLayout is the placement of a single line of text.
//
// Coordinates have the y axis pointing up, in pixels at the atlas font
// size.
type TextLayout struct {
	Glyphs []PlacedGlyph

	// Extents is the bounding box of all quads, and always contains the
	// origin.
	Extents rect.Rect
}

// PlacedGlyph is one glyph quad of a [TextLayout].
type PlacedGlyph struct {
	Char *Char

	// Quad is the area covered by the glyph outline.
	Quad rect.Rect

	// Texture is Quad grown by the padding, matching the glyph's texture.
	Texture rect.Rect

	// SubRect is the glyph's texture in normalised atlas coordinates.
	SubRect rect.Rect
}

// SubRect returns the texture area of c, scaled so that the atlas spans
// the unit square.
func (fd *FontData) SubRect(c *Char) rect.Rect {
	w := float64(fd.Common.ScaleW)
	h := float64(fd.Common.ScaleH)
	return rect.Rect{
		LLx: float64(c.X) / w,
		LLy: float64(c.Y) / h,
		URx: float64(c.X+c.Width) / w,
		URy: float64(c.Y+c.Height) / h,
	}
}

// Layout places the characters of s on a line, starting at the origin.
// Blank characters only advance the pen.
func Layout(fd *FontData, s string) (*TextLayout, error) {
	byRune := make(map[rune]*Char, len(fd.Chars))
	for i := range fd.Chars {
		c := &fd.Chars[i]
		byRune[rune(c.ID)] = c
	}

	// the baseline of every glyph ends up at the same height
	top := fd.Common.LineHeight + fd.Info.Size - fd.Common.Base
	padding := float64(fd.Info.Padding[0])

	res := &TextLayout{}
	var x1, y1, x2, y2 float64
	pen := 0.0
	for _, r := range s {
		c, ok := byRune[r]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownRune, "%q", r)
		}
		if c.Width > 0 && c.Height > 0 {
			x := pen + c.XOffset + padding
			y := top - float64(c.Height) - c.YOffset
			quad := rect.Rect{
				LLx: x,
				LLy: y,
				URx: x + float64(c.Width) - 2*padding,
				URy: y + float64(c.Height) - 2*padding,
			}
			res.Glyphs = append(res.Glyphs, PlacedGlyph{
				Char: c,
				Quad: quad,
				Texture: rect.Rect{
					LLx: x - padding,
					LLy: y - padding,
					URx: x - padding + float64(c.Width),
					URy: y - padding + float64(c.Height),
				},
				SubRect: fd.SubRect(c),
			})
			x1 = math.Min(x1, quad.LLx)
			y1 = math.Min(y1, quad.LLy)
			x2 = math.Max(x2, quad.URx)
			y2 = math.Max(y2, quad.URy)
		}
		pen += c.XAdvance
	}
	res.Extents = rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
	return res, nil
}
