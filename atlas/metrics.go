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
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// FontData is the metrics record of an atlas, in the JSON layout used by
// BMFont-style MSDF text renderers.
type FontData struct {
	Chars  []Char `json:"chars"`
	Info   Info   `json:"info"`
	Common Common `json:"common"`
}

// Char describes one glyph of the atlas.
//
// Width and Height give the size of the glyph's texture, including the
// padding on both sides.  XOffset and YOffset locate the texture relative
// to the pen position, with y measured downwards from one font size above
// the baseline.  Blank glyphs have zero size.
type Char struct {
	ID       int     `json:"id"`
	Char     string  `json:"char"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	XOffset  float64 `json:"xoffset"`
	YOffset  float64 `json:"yoffset"`
	XAdvance float64 `json:"xadvance"`
}

// Info describes how the atlas was generated.
type Info struct {
	Face     string  `json:"face"`
	Size     float64 `json:"size"`
	Bold     int     `json:"bold"`
	Italic   int     `json:"italic"`
	Unicode  int     `json:"unicode"`
	StretchH int     `json:"stretchH"`
	Smooth   int     `json:"smooth"`
	AA       int     `json:"aa"`
	Padding  [4]int  `json:"padding"`
	Spacing  [2]int  `json:"spacing"`
	Outline  int     `json:"outline"`
}

// Common holds the font-wide layout values.
type Common struct {
	LineHeight float64 `json:"lineHeight"`
	Base       float64 `json:"base"`
	ScaleW     int     `json:"scaleW"`
	ScaleH     int     `json:"scaleH"`
	Pages      int     `json:"pages"`
}

// WriteJSON writes the metrics record to w.
func (fd *FontData) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(fd); err != nil {
		return errors.Wrap(err, "atlas: cannot write metrics")
	}
	return nil
}

// ReadJSON reads a metrics record, as written by [FontData.WriteJSON].
func ReadJSON(r io.Reader) (*FontData, error) {
	fd := &FontData{}
	if err := json.NewDecoder(r).Decode(fd); err != nil {
		return nil, errors.Wrap(err, "atlas: cannot read metrics")
	}
	return fd, nil
}
