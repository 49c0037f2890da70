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
	"bytes"
	"io"
)

// tgaHeaderSize is the length of the fixed TGA file header.
const tgaHeaderSize = 18

// WriteTGA writes img as an uncompressed 24-bit truecolor TGA file.
//
// Each pixel is written as channel 2, channel 1, channel 0, so that an
// image whose channels hold red, green and blue shows up with the right
// colors.  Rows are stored top to bottom.
func WriteTGA(w io.Writer, img *Image) error {
	if img.Width > 0xFFFF || img.Height > 0xFFFF {
		return ErrTGASize
	}
	if img.Pitch < 3 || len(img.Pix) != img.Width*img.Height*img.Pitch {
		return ErrChannel
	}

	var header [tgaHeaderSize]byte
	header[2] = 2 // uncompressed truecolor
	header[12] = byte(img.Width)
	header[13] = byte(img.Width >> 8)
	header[14] = byte(img.Height)
	header[15] = byte(img.Height >> 8)
	header[16] = 24 // bits per pixel
	header[17] = 32 // descriptor: origin at the top
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	n := img.Width * img.Height
	body := make([]byte, n*3)
	for i := range n {
		src := img.Pix[i*img.Pitch:]
		body[i*3+0] = src[2]
		body[i*3+1] = src[1]
		body[i*3+2] = src[0]
	}
	_, err := w.Write(body)
	return err
}

// EncodeTGA returns the TGA encoding of img, as written by [WriteTGA].
func EncodeTGA(img *Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(tgaHeaderSize + img.Width*img.Height*3)
	if err := WriteTGA(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
