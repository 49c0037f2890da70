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
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/rangetable"
)

var (
	ascii = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x20, Hi: 0x7E, Stride: 1}},
	}
	latin1Supplement = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xA0, Hi: 0xFF, Stride: 1}},
	}
)

// Charset returns the character set with the given name.
//
// The names "ascii" (U+0020 to U+007E) and "latin1" (ascii plus U+00A0 to
// U+00FF) are recognised.  Any other string is taken as the literal list
// of characters to include.
func Charset(name string) (*unicode.RangeTable, error) {
	switch name {
	case "ascii":
		return ascii, nil
	case "latin1":
		return rangetable.Merge(ascii, latin1Supplement), nil
	case "":
		return nil, errors.New("atlas: empty character set")
	}
	return rangetable.New([]rune(name)...), nil
}

// Runes lists the characters of rt in increasing order.
func Runes(rt *unicode.RangeTable) []rune {
	var res []rune
	rangetable.Visit(rt, func(r rune) {
		res = append(res, r)
	})
	return res
}
