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

// Report summarises how well a distance field image reproduces the
// outline it was generated from.
type Report struct {
	// Pixels is the number of pixels compared.
	Pixels int

	// Mismatched counts the pixels where the median of the three channels
	// classifies the pixel differently from the coverage mask.
	Mismatched int
}

// Fraction returns the share of mismatched pixels.
func (r Report) Fraction() float64 {
	if r.Pixels == 0 {
		return 0
	}
	return float64(r.Mismatched) / float64(r.Pixels)
}

// Verify decodes img the way a renderer does and compares the result with
// a coverage mask, as computed by [Coverage].
//
// A pixel of img counts as inside if the median of its first three
// channels exceeds 127.  A pixel of the mask counts as inside if its
// coverage is at least 0.5.
func Verify(img *Image, coverage []float32) (Report, error) {
	n := img.Width * img.Height
	if len(coverage) != n || len(img.Pix) != n*img.Pitch {
		return Report{}, ErrBufferSize
	}
	if img.Pitch < 3 {
		return Report{}, ErrChannel
	}

	rep := Report{Pixels: n}
	for i, c := range coverage {
		inside := img.Median(i%img.Width, i/img.Width) > 127
		if inside != (c >= 0.5) {
			rep.Mismatched++
		}
	}
	return rep, nil
}

func median3(a, b, c byte) byte {
	return max(min(a, b), min(max(a, b), c))
}
