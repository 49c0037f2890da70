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
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func exampleFontData() *FontData {
	return &FontData{
		Chars: []Char{
			{ID: 'A', Char: "A", X: 0, Y: 0, Width: 90, Height: 90, XOffset: -9, YOffset: 40, XAdvance: 68},
			{ID: ' ', Char: " ", XAdvance: 30},
			{ID: 'g', Char: "g", X: 90, Y: 0, Width: 70, Height: 90, XOffset: -7, YOffset: 60, XAdvance: 60},
		},
		Info: Info{
			Face:    "Example",
			Size:    100,
			Padding: [4]int{10, 10, 10, 10},
		},
		Common: Common{
			LineHeight: 120,
			Base:       95,
			ScaleW:     256,
			ScaleH:     128,
			Pages:      1,
		},
	}
}

func TestLayout(t *testing.T) {
	fd := exampleFontData()
	l, err := Layout(fd, "A g")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(l.Glyphs))
	}

	a, g := l.Glyphs[0], l.Glyphs[1]
	if a.Char.Char != "A" || g.Char.Char != "g" {
		t.Errorf("glyphs %q, %q", a.Char.Char, g.Char.Char)
	}

	wantA := rect.Rect{LLx: 1, LLy: -5, URx: 71, URy: 65}
	if a.Quad != wantA {
		t.Errorf("quad of A: %v, want %v", a.Quad, wantA)
	}
	wantTex := rect.Rect{LLx: -9, LLy: -15, URx: 81, URy: 75}
	if a.Texture != wantTex {
		t.Errorf("texture of A: %v, want %v", a.Texture, wantTex)
	}
	wantSub := rect.Rect{LLx: 0, LLy: 0, URx: 90.0 / 256, URy: 90.0 / 128}
	if a.SubRect != wantSub {
		t.Errorf("subrect of A: %v, want %v", a.SubRect, wantSub)
	}

	// the pen advances past the space
	wantG := rect.Rect{LLx: 101, LLy: -25, URx: 151, URy: 45}
	if g.Quad != wantG {
		t.Errorf("quad of g: %v, want %v", g.Quad, wantG)
	}

	wantExt := rect.Rect{LLx: 0, LLy: -25, URx: 151, URy: 65}
	if l.Extents != wantExt {
		t.Errorf("extents %v, want %v", l.Extents, wantExt)
	}
}

func TestLayoutUnknown(t *testing.T) {
	_, err := Layout(exampleFontData(), "Ab")
	if !errors.Is(err, ErrUnknownRune) {
		t.Errorf("got %v, want %v", err, ErrUnknownRune)
	}
}

func TestFontDataJSON(t *testing.T) {
	fd := exampleFontData()
	buf := &bytes.Buffer{}
	if err := fd.WriteJSON(buf); err != nil {
		t.Fatal(err)
	}

	// consumers look up fields by these names
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &generic); err != nil {
		t.Fatal(err)
	}
	raw := make(map[string]map[string]any)
	for _, key := range []string{"info", "common"} {
		var m map[string]any
		if err := json.Unmarshal(generic[key], &m); err != nil {
			t.Fatalf("%s: %v", key, err)
		}
		raw[key] = m
	}
	var chars []map[string]any
	if err := json.Unmarshal(generic["chars"], &chars); err != nil {
		t.Fatal(err)
	}

	wantKeys := map[string][]string{
		"chars":  {"char", "height", "id", "width", "x", "xadvance", "xoffset", "y", "yoffset"},
		"common": {"base", "lineHeight", "pages", "scaleH", "scaleW"},
	}
	if d := cmp.Diff(wantKeys["chars"], sortedKeys(chars[0])); d != "" {
		t.Errorf("char keys (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantKeys["common"], sortedKeys(raw["common"])); d != "" {
		t.Errorf("common keys (-want +got):\n%s", d)
	}
	if pad, ok := raw["info"]["padding"].([]any); !ok || len(pad) != 4 {
		t.Errorf("info.padding = %v", raw["info"]["padding"])
	}

	back, err := ReadJSON(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(fd, back); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func sortedKeys(m map[string]any) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
