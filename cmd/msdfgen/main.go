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

// Command msdfgen builds a multi-channel signed distance field atlas for a
// TrueType font.
//
// Usage:
//
//	msdfgen [flags] font.ttf
//
// The atlas is written as a PNG image together with a JSON file holding
// the glyph metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"

	"github.com/pkg/errors"

	"seehuhn.de/go/msdf"
	"seehuhn.de/go/msdf/atlas"
	"seehuhn.de/go/msdf/glyphs"
	"seehuhn.de/go/msdf/proof"
)

var (
	sizeFlag    = flag.Float64("size", 48, "font size in pixels per em")
	paddingFlag = flag.Int("padding", atlas.DefaultConfig().Padding, "padding around each glyph, in pixels")
	rangeFlag   = flag.Float64("range", atlas.DefaultConfig().MaxRange, "distance range of the field, in pixels")
	spacingFlag = flag.Int("spacing", 1, "gap between glyphs in the atlas, in pixels")
	charsFlag   = flag.String("chars", "ascii", `characters to include: "ascii", "latin1" or a literal list`)
	workersFlag = flag.Int("workers", 0, "number of concurrent glyph workers (0 = one per CPU)")
	widthFlag   = flag.Int("width", 0, "atlas width in pixels (0 = automatic)")
	outFlag     = flag.String("o", "atlas", "output file name prefix")
	tgaFlag     = flag.String("tga", "", "directory for per-glyph TGA dumps")
	proofFlag   = flag.String("proof", "", "character to write a PDF proof sheet for")
	verifyFlag  = flag.Bool("verify", false, "compare each field with the glyph coverage")
	verboseFlag = flag.Bool("v", false, "log individual glyphs")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] font.ttf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	msdf.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0)); err != nil {
		logger.Error("msdfgen failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fontFile string) error {
	data, err := os.ReadFile(fontFile)
	if err != nil {
		return err
	}
	f, err := glyphs.Parse(data, *sizeFlag)
	if err != nil {
		return errors.Wrap(err, fontFile)
	}

	rt, err := atlas.Charset(*charsFlag)
	if err != nil {
		return err
	}

	cfg := atlas.DefaultConfig()
	cfg.Padding = *paddingFlag
	cfg.MaxRange = *rangeFlag
	cfg.Spacing = *spacingFlag
	cfg.Workers = *workersFlag
	cfg.Width = *widthFlag

	bar := newProgress(os.Stderr)
	if bar != nil {
		cfg.Progress = bar.Update
	}

	var dump *tgaDump
	if *tgaFlag != "" {
		if err := os.MkdirAll(*tgaFlag, 0755); err != nil {
			return err
		}
		dump = &tgaDump{dir: *tgaFlag}
		cfg.Trace = dump.Plane
	}

	a, err := atlas.Build(ctx, f, atlas.Runes(rt), cfg)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return err
	}
	if dump != nil {
		if err := dump.Glyphs(a); err != nil {
			return err
		}
	}

	if err := writePNG(*outFlag+".png", a); err != nil {
		return err
	}
	if err := writeJSON(*outFlag+".json", a.Font); err != nil {
		return err
	}

	if *proofFlag != "" {
		if err := writeProof(*outFlag+"-proof.pdf", a, []rune(*proofFlag)[0]); err != nil {
			return err
		}
	}

	if *verifyFlag {
		reports, err := a.Verify()
		if err != nil {
			return err
		}
		for _, g := range a.Glyphs {
			rep, ok := reports[g.Rune]
			if !ok {
				continue
			}
			log := msdf.Logger().Debug
			if rep.Fraction() > 0.05 {
				log = msdf.Logger().Warn
			}
			log("msdfgen: verify", "rune", string(g.Rune),
				"mismatched", rep.Mismatched, "pixels", rep.Pixels)
		}
	}

	for _, r := range slices.Sorted(maps.Keys(a.Failed)) {
		msdf.Logger().Warn("msdfgen: missing glyph", "rune", string(r), "err", a.Failed[r])
	}
	return nil
}

func writePNG(fname string, a *atlas.Atlas) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(out, a.Image); err != nil {
		out.Close()
		return errors.Wrap(err, fname)
	}
	return out.Close()
}

func writeJSON(fname string, fd *atlas.FontData) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := fd.WriteJSON(out); err != nil {
		out.Close()
		return errors.Wrap(err, fname)
	}
	return out.Close()
}

func writeProof(fname string, a *atlas.Atlas, r rune) error {
	for _, g := range a.Glyphs {
		if g.Rune != r {
			continue
		}
		if g.Shape == nil {
			return errors.Errorf("character %q is blank", r)
		}
		return proof.Write(fname, g.Shape, g.Image)
	}
	return errors.Wrapf(atlas.ErrUnknownRune, "character %q", r)
}
