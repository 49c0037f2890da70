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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCharset(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		first rune
		last  rune
	}{
		{"ascii", 95, ' ', '~'},
		{"latin1", 95 + 96, ' ', 'ÿ'},
		{"cab", 3, 'a', 'c'},
		{"aaä", 2, 'a', 'ä'},
	}
	for _, c := range cases {
		rt, err := Charset(c.name)
		if err != nil {
			t.Fatal(err)
		}
		runes := Runes(rt)
		if len(runes) != c.n {
			t.Errorf("%q: got %d runes, want %d", c.name, len(runes), c.n)
			continue
		}
		if runes[0] != c.first || runes[len(runes)-1] != c.last {
			t.Errorf("%q: range %q to %q", c.name, runes[0], runes[len(runes)-1])
		}
	}

	rt, err := Charset("latin1")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range Runes(rt) {
		if r > 0x7E && r < 0xA0 {
			t.Errorf("control character %U in latin1", r)
		}
	}

	if _, err := Charset(""); err == nil {
		t.Error("empty charset accepted")
	}
}

func TestRunesLiteral(t *testing.T) {
	rt, err := Charset("hello, world")
	if err != nil {
		t.Fatal(err)
	}
	want := []rune(" ,dehlorw")
	if d := cmp.Diff(want, Runes(rt)); d != "" {
		t.Errorf("runes (-want +got):\n%s", d)
	}
}
