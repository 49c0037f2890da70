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
	"image"
	"image/color"
	"math"
)

// Image is an 8-bit multi-channel raster.  Channel c of pixel (i, j) is
// stored at Pix[(j*Width+i)*Pitch+c].
//
// Image implements [image.Image], reading channels 0, 1 and 2 as red,
// green and blue.
type Image struct {
	Width, Height int

	// Pitch is the number of channels per pixel.  The encoders in this
	// package need at least three.
	Pitch int

	Pix []byte
}

// NewImage allocates a zeroed image.
func NewImage(width, height, pitch int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pitch:  pitch,
		Pix:    make([]byte, width*height*pitch),
	}
}

// ColorModel implements the [image.Image] interface.
func (m *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements the [image.Image] interface.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// At implements the [image.Image] interface.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.NRGBA{}
	}
	o := (y*m.Width + x) * m.Pitch
	return color.NRGBA{R: m.Pix[o], G: m.Pix[o+1], B: m.Pix[o+2], A: 255}
}

// Median returns the median of the first three channels of pixel (x, y).
// Renderers treat values above 127 as inside the glyph.
func (m *Image) Median(x, y int) byte {
	o := (y*m.Width + x) * m.Pitch
	return median3(m.Pix[o], m.Pix[o+1], m.Pix[o+2])
}

// FillChannel encodes dm into one channel of img.
//
// Distances in [-maxRange, maxRange] map linearly onto the byte range with
// inverted polarity: 0 becomes 127, +maxRange becomes 0 and -maxRange
// becomes 255.  Values outside the range saturate.
func FillChannel(img *Image, dm *DistanceMap, channel int, maxRange float64) error {
	if err := checkTarget(img, dm); err != nil {
		return err
	}
	if channel < 0 || channel >= img.Pitch {
		return ErrChannel
	}
	if !(maxRange > 0) {
		return ErrRange
	}

	for i, d := range dm.Data {
		s := clamp01(float64(d)/(2*maxRange) + 0.5)
		img.Pix[i*img.Pitch+channel] = byte(math.Floor((1 - s) * 255))
	}
	return nil
}

// FillDebugChannel visualises the raw distances of dm without range
// scaling.  Channel channel of each pixel darkens with positive distance,
// the other two of the first three channels darken with negative
// distance; both saturate at a distance of 1.
func FillDebugChannel(img *Image, dm *DistanceMap, channel int) error {
	if err := checkTarget(img, dm); err != nil {
		return err
	}
	if img.Pitch < 3 || channel < 0 || channel >= 3 {
		return ErrChannel
	}

	for i, d := range dm.Data {
		pos := byte(math.Floor((1 - clamp01(float64(d))) * 255))
		neg := byte(math.Floor((1 - clamp01(float64(-d))) * 255))
		px := img.Pix[i*img.Pitch : i*img.Pitch+3]
		for c := range px {
			if c == channel {
				px[c] = pos
			} else {
				px[c] = neg
			}
		}
	}
	return nil
}

func checkTarget(img *Image, dm *DistanceMap) error {
	if img.Width != dm.Width || img.Height != dm.Height ||
		len(dm.Data) != dm.Width*dm.Height ||
		img.Pitch <= 0 || len(img.Pix) != img.Width*img.Height*img.Pitch {
		return ErrBufferSize
	}
	return nil
}
