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

package proof

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/msdf"
	"seehuhn.de/go/msdf/testcases"
)

func TestWrite(t *testing.T) {
	tc, ok := testcases.Find("contour", "debug_quad")
	if !ok {
		t.Fatal("missing test case")
	}
	shape, err := msdf.ShapeFromPath(tc.Path, tc.Bounds, tc.Padding)
	if err != nil {
		t.Fatal(err)
	}
	gen, err := msdf.NewGenerator(msdf.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	img, err := gen.Generate(shape, tc.Width, tc.Height)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, name := range []string{"outline.pdf", "field.pdf"} {
		var field *msdf.Image
		if name == "field.pdf" {
			field = img
		}
		fname := filepath.Join(dir, name)
		if err := Write(fname, shape, field); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s is not a PDF file", name)
		}
	}
}

func TestWriteBadImage(t *testing.T) {
	shape := msdf.NewShape(4, 4)
	img := msdf.NewImage(4, 4, 3)
	img.Pix = img.Pix[:10]
	err := Write(filepath.Join(t.TempDir(), "bad.pdf"), shape, img)
	if !errors.Is(err, msdf.ErrBufferSize) {
		t.Errorf("got %v, want %v", err, msdf.ErrBufferSize)
	}
}
