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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/msdf"
	"seehuhn.de/go/msdf/atlas"
)

// progress draws a progress bar on a terminal.
type progress struct {
	w     io.Writer
	width int
}

// newProgress returns a progress bar writing to f, or nil if f is not a
// terminal.
func newProgress(f *os.File) *progress {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width < 20 {
		width = 80
	}
	return &progress{w: f, width: width}
}

// Update redraws the bar.  It has the signature of atlas.Config.Progress.
func (p *progress) Update(done, total int) {
	label := fmt.Sprintf(" %d/%d", done, total)
	n := p.width - len(label) - 2
	filled := 0
	if total > 0 {
		filled = n * done / total
	}
	fmt.Fprintf(p.w, "\r[%s%s]%s", strings.Repeat("#", filled), strings.Repeat(" ", n-filled), label)
}

// Done ends the progress line.
func (p *progress) Done() {
	fmt.Fprintln(p.w)
}

// tgaDump writes distance fields to TGA files, for debugging.
type tgaDump struct {
	dir string
	err error
}

// Plane writes the raw distances of one plane.  It has the signature of
// atlas.Config.Trace.
func (d *tgaDump) Plane(r rune, plane int, dm *msdf.DistanceMap) {
	if d.err != nil {
		return
	}
	img := msdf.NewImage(dm.Width, dm.Height, 3)
	if err := msdf.FillDebugChannel(img, dm, plane); err != nil {
		d.err = err
		return
	}
	d.err = d.write(fmt.Sprintf("U+%04X-plane%d.tga", r, plane), img)
}

// Glyphs writes the final field of every glyph.
func (d *tgaDump) Glyphs(a *atlas.Atlas) error {
	if d.err != nil {
		return d.err
	}
	for _, g := range a.Glyphs {
		if g.Image == nil {
			continue
		}
		if err := d.write(fmt.Sprintf("U+%04X.tga", g.Rune), g.Image); err != nil {
			return err
		}
	}
	return nil
}

func (d *tgaDump) write(name string, img *msdf.Image) error {
	data, err := msdf.EncodeTGA(img)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.dir, name), data, 0644)
}
