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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeTGA(t *testing.T) {
	img := NewImage(4, 3, 3)
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}

	data, err := EncodeTGA(img)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != tgaHeaderSize+4*3*3 {
		t.Fatalf("got %d bytes, want %d", len(data), tgaHeaderSize+4*3*3)
	}

	wantHeader := []byte{
		0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		4, 0, 3, 0, 24, 32,
	}
	if d := cmp.Diff(wantHeader, data[:tgaHeaderSize]); d != "" {
		t.Errorf("header (-want +got):\n%s", d)
	}

	// channels 0 and 2 are swapped
	body := data[tgaHeaderSize:]
	for i := range 12 {
		want := []byte{byte(3*i + 2), byte(3*i + 1), byte(3 * i)}
		if got := body[3*i : 3*i+3]; !bytes.Equal(got, want) {
			t.Errorf("pixel %d: got %v, want %v", i, got, want)
		}
	}
}

func TestEncodeTGAPitch(t *testing.T) {
	img := NewImage(2, 1, 4)
	copy(img.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	data, err := EncodeTGA(img)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{3, 2, 1, 7, 6, 5}, data[tgaHeaderSize:]); d != "" {
		t.Errorf("body (-want +got):\n%s", d)
	}
}

func TestEncodeTGAErrors(t *testing.T) {
	if _, err := EncodeTGA(&Image{Width: 70000, Height: 1, Pitch: 3}); !errors.Is(err, ErrTGASize) {
		t.Errorf("wide image: got %v", err)
	}
	if _, err := EncodeTGA(NewImage(2, 2, 2)); !errors.Is(err, ErrChannel) {
		t.Errorf("pitch 2: got %v", err)
	}

	errWrite := errors.New("write failed")
	err := WriteTGA(failingWriter{errWrite}, NewImage(1, 1, 3))
	if !errors.Is(err, errWrite) {
		t.Errorf("failing writer: got %v", err)
	}
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}
