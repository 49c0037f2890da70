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

// Command export writes the test shapes and their distance fields to JSON,
// for comparison with other distance field generators.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/msdf"
	"seehuhn.de/go/msdf/testcases"
)

func main() {
	var out struct {
		MaxRange  float64        `json:"max_range"`
		TestCases []jsonTestCase `json:"testcases"`
	}

	cfg := msdf.DefaultConfig()
	gen, err := msdf.NewGenerator(cfg)
	if err != nil {
		panic(err)
	}
	out.MaxRange = cfg.MaxRange

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(gen, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string        `json:"name"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Padding float64       `json:"padding"`
	Path    []jsonSegment `json:"path"`

	// Planes lists the segment indices of each colour plane.
	Planes [3][]int `json:"planes"`

	// Field holds the RGB bytes of the distance field, row by row.
	Field []int `json:"field"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(gen *msdf.Generator, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		Padding: tc.Padding,
		Path:    pathToJSON(tc.Path.Iter()),
	}

	shape, err := msdf.ShapeFromPath(tc.Path, tc.Bounds, tc.Padding)
	if err != nil {
		return jtc, err
	}
	img, err := gen.Generate(shape, tc.Width, tc.Height)
	if err != nil {
		return jtc, err
	}

	index := make(map[msdf.Segment]int, len(shape.Segments))
	for i, seg := range shape.Segments {
		index[seg] = i
	}
	for k, plane := range shape.Planes {
		jtc.Planes[k] = []int{}
		for _, seg := range plane {
			jtc.Planes[k] = append(jtc.Planes[k], index[seg])
		}
	}

	for i := 0; i < len(img.Pix); i += img.Pitch {
		for c := range 3 {
			jtc.Field = append(jtc.Field, int(img.Pix[i+c]))
		}
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
