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

// Command genproof writes proof sheets for the test shapes.
// For every test case it generates the distance field, then writes a PDF
// showing the field and the colour planes, and the field itself as a TGA
// image.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/msdf"
	"seehuhn.de/go/msdf/proof"
	"seehuhn.de/go/msdf/testcases"
)

const outDir = "testdata/proof"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	gen, err := msdf.NewGenerator(msdf.DefaultConfig())
	if err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(gen, tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(gen *msdf.Generator, tc testcases.TestCase, name string) error {
	shape, err := msdf.ShapeFromPath(tc.Path, tc.Bounds, tc.Padding)
	if err != nil {
		return err
	}
	img, err := gen.Generate(shape, tc.Width, tc.Height)
	if err != nil {
		return err
	}

	rep, err := msdf.Verify(img, msdf.Coverage(shape, tc.Width, tc.Height))
	if err != nil {
		return err
	}
	fmt.Printf("%-24s %3dx%-3d %4d segments, %3d/%d pixels wrong\n",
		name, tc.Width, tc.Height, len(shape.Segments), rep.Mismatched, rep.Pixels)

	if err := proof.Write(filepath.Join(outDir, name+".pdf"), shape, img); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".tga"))
	if err != nil {
		return err
	}
	if err := msdf.WriteTGA(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
