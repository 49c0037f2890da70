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

// Package glyphs extracts glyph outlines from TrueType and OpenType fonts.
//
// Outlines are returned as [path.Data] in pixel units at a fixed size, with
// the y axis pointing down and the origin on the baseline at the glyph's
// pen position.
package glyphs

import (
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/msdf"
)

// ErrNoGlyph is returned for runes which the font does not map.
var ErrNoGlyph = errors.New("glyphs: no glyph for rune")

// Font is a parsed font, scaled to a fixed size.
//
// A Font is not safe for concurrent use.
type Font struct {
	sf   *sfnt.Font
	buf  sfnt.Buffer
	size float64
	ppem fixed.Int26_6
}

// Glyph is the outline of a single character.
type Glyph struct {
	Rune  rune
	Index sfnt.GlyphIndex

	// Outline holds the contours of the glyph.  It has no commands for
	// blank glyphs like the space character.
	Outline *path.Data

	// Bounds is the exact bounding box of Outline.  The zero rectangle is
	// used for blank glyphs.
	Bounds rect.Rect

	// Advance is the horizontal advance width in pixels.
	Advance float64
}

// IsBlank reports whether the glyph has no outline.
func (g *Glyph) IsBlank() bool {
	return len(g.Outline.Cmds) == 0
}

// Metrics describes the vertical extent of a font.  All values are in
// pixels and positive.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Parse parses a TrueType or OpenType font.  Outlines and metrics are
// scaled so that one em is size pixels.
func Parse(data []byte, size float64) (*Font, error) {
	if !(size > 0) {
		return nil, errors.Errorf("glyphs: invalid font size %g", size)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "glyphs: cannot parse font")
	}
	f := &Font{
		sf:   sf,
		size: size,
		ppem: fixed.Int26_6(size * 64),
	}
	msdf.Logger().Debug("glyphs: parsed font",
		"name", f.Name(),
		"glyphs", sf.NumGlyphs(),
		"size", size)
	return f, nil
}

// Size returns the number of pixels per em.
func (f *Font) Size() float64 {
	return f.size
}

// Name returns the family name of the font, or the empty string if the
// font has none.
func (f *Font) Name() string {
	name, err := f.sf.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the vertical metrics of the font.
func (f *Font) Metrics() (Metrics, error) {
	m, err := f.sf.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, errors.Wrap(err, "glyphs: cannot read metrics")
	}
	return Metrics{
		Ascent:     fixedToFloat64(m.Ascent),
		Descent:    fixedToFloat64(m.Descent),
		LineHeight: fixedToFloat64(m.Height),
	}, nil
}

// Glyph loads the outline for r.
//
// Runes without a glyph give [ErrNoGlyph].  Outlines with cubic curves, as
// found in CFF-based fonts, give [msdf.ErrCubic].
func (f *Font) Glyph(r rune) (*Glyph, error) {
	idx, err := f.sf.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, errors.Wrapf(err, "glyphs: rune %q", r)
	}
	if idx == 0 {
		return nil, errors.Wrapf(ErrNoGlyph, "rune %q", r)
	}

	// segs is only valid until the next use of f.buf
	segs, err := f.sf.LoadGlyph(&f.buf, idx, f.ppem, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "glyphs: cannot load rune %q", r)
	}
	outline, bbox, err := convert(segs)
	if err != nil {
		return nil, errors.Wrapf(err, "rune %q", r)
	}

	adv, err := f.sf.GlyphAdvance(&f.buf, idx, f.ppem, font.HintingNone)
	if err != nil {
		return nil, errors.Wrapf(err, "glyphs: no advance for rune %q", r)
	}

	return &Glyph{
		Rune:    r,
		Index:   idx,
		Outline: outline,
		Bounds:  bbox,
		Advance: fixedToFloat64(adv),
	}, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
