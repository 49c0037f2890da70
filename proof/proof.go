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

// Package proof draws glyph shapes and their distance fields as PDF
// pages, for visual inspection.
//
// The decoded field is shown as a grid of gray cells, one per pixel, with
// white for the inside of the glyph.  On top of this, the segments of
// each colour plane are stroked with decreasing width, so that the
// segments shared between planes remain visible.  The start point of
// every segment is marked by a small square.
package proof

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/msdf"
)

// Scale is the number of PDF points per shape unit.
const Scale = 16

var planeStyles = [3]struct {
	gray  float64
	width float64
}{
	{0.1, 0.08},
	{0.4, 0.16},
	{0.7, 0.24},
}

// Write creates a single-page PDF file showing shape.  If img is not nil,
// its decoded field is drawn underneath the outline.
func Write(fname string, shape *msdf.Shape, img *msdf.Image) error {
	if img != nil && (img.Width <= 0 || img.Height <= 0 ||
		img.Pitch < 3 || len(img.Pix) != img.Width*img.Height*img.Pitch) {
		return msdf.ErrBufferSize
	}
	if shape.Planes[0] == nil {
		shape.SplitPlanes()
	}

	paper := &pdf.Rectangle{
		URx: shape.Width * Scale,
		URy: shape.Height * Scale,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// shape coordinates have the y axis pointing down
	page.Transform(matrix.Matrix{Scale, 0, 0, -Scale, 0, shape.Height * Scale})

	if img != nil {
		cw := shape.Width / float64(img.Width)
		ch := shape.Height / float64(img.Height)
		for y := range img.Height {
			for x := range img.Width {
				page.SetFillColor(color.DeviceGray(float64(img.Median(x, y)) / 255))
				page.Rectangle(float64(x)*cw, float64(y)*ch, cw, ch)
				page.Fill()
			}
		}
	}

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for k := len(shape.Planes) - 1; k >= 0; k-- {
		style := planeStyles[k]
		page.SetStrokeColor(color.DeviceGray(style.gray))
		page.SetLineWidth(style.width)
		for _, seg := range shape.Planes[k] {
			drawSegment(page, seg)
			page.Stroke()
		}
	}

	const mark = 0.15
	page.SetFillColor(color.DeviceGray(0))
	for _, seg := range shape.Segments {
		p := seg.Start()
		page.Rectangle(p.X-mark, p.Y-mark, 2*mark, 2*mark)
	}
	page.Fill()

	return page.Close()
}

// drawSegment appends seg to the current path.  Quadratic segments are
// converted to cubic Bézier curves.
func drawSegment(page *document.Page, seg msdf.Segment) {
	switch seg := seg.(type) {
	case msdf.Line:
		page.MoveTo(seg.P0.X, seg.P0.Y)
		page.LineTo(seg.P1.X, seg.P1.Y)
	case msdf.Quadratic:
		c1 := seg.P0.Add(seg.P1.Sub(seg.P0).Mul(2.0 / 3))
		c2 := seg.P2.Add(seg.P1.Sub(seg.P2).Mul(2.0 / 3))
		page.MoveTo(seg.P0.X, seg.P0.Y)
		page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, seg.P2.X, seg.P2.Y)
	}
}
