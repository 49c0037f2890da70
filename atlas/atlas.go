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

// Package atlas packs the distance fields of many glyphs into a single
// texture, together with the metrics a text renderer needs to use it.
package atlas

import (
	"cmp"
	"context"
	"image"
	"math"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/msdf"
	"seehuhn.de/go/msdf/glyphs"
)

var (
	// ErrEmpty is returned when no glyph could be placed in the atlas.
	ErrEmpty = errors.New("atlas: no glyphs")

	// ErrTooWide is recorded for glyphs wider than the atlas.
	ErrTooWide = errors.New("atlas: glyph wider than atlas")
)

// Atlas is a texture holding the distance fields of a set of glyphs.
type Atlas struct {
	// Image holds the packed distance fields.  The red, green and blue
	// channels hold planes 0, 1 and 2.
	Image *image.NRGBA

	// Font is the metrics record describing Image.
	Font *FontData

	// Glyphs lists the glyphs in the atlas, ordered by rune.
	Glyphs []*Glyph

	// Failed lists the characters which were skipped, with the reason.
	Failed map[rune]error
}

// Glyph is a single glyph of an atlas.
type Glyph struct {
	Rune rune

	// X and Y give the position of Image in the atlas.
	X, Y int

	// Image is the distance field of the glyph, and Shape the outline it
	// was generated from.  Both are nil for blank glyphs.
	Image *msdf.Image
	Shape *msdf.Shape

	// Bounds is the bounding box of the outline, in pixels with the y axis
	// pointing down from the baseline.
	Bounds  rect.Rect
	Advance float64
}

// job holds the state of one glyph while the atlas is built.
type job struct {
	glyph *Glyph
	w, h  int
	err   error
}

// Build generates distance fields for the given characters and packs
// them into an atlas.
//
// Glyph outlines are loaded from f one at a time, the distance fields are
// generated concurrently.  Characters which cannot be rendered are listed
// in Atlas.Failed and do not abort the build.
func Build(ctx context.Context, f *glyphs.Font, runes []rune, cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := msdf.Logger()

	metrics, err := f.Metrics()
	if err != nil {
		return nil, err
	}

	a := &Atlas{
		Failed: make(map[rune]error),
	}
	var jobs []*job
	for _, r := range runes {
		j, err := load(f, r, cfg.Padding)
		if err != nil {
			log.Warn("atlas: skipping glyph", "rune", string(r), "err", err)
			a.Failed[r] = err
			continue
		}
		jobs = append(jobs, j)
	}

	if err := generate(ctx, jobs, cfg); err != nil {
		return nil, err
	}

	var placed []*job
	for _, j := range jobs {
		if j.err != nil {
			log.Warn("atlas: skipping glyph", "rune", string(j.glyph.Rune), "err", j.err)
			a.Failed[j.glyph.Rune] = j.err
			continue
		}
		placed = append(placed, j)
	}
	if len(placed) == 0 {
		return nil, ErrEmpty
	}

	width := cfg.Width
	if width == 0 {
		width = autoWidth(placed, cfg.Spacing)
	}
	placed = pack(placed, width, cfg.Spacing, a.Failed)
	if !slices.ContainsFunc(placed, func(j *job) bool { return j.glyph.Image != nil }) {
		return nil, ErrEmpty
	}

	height := 0
	for _, j := range placed {
		height = max(height, j.glyph.Y+j.h)
	}
	a.Image = image.NewNRGBA(image.Rect(0, 0, width, height))
	for _, j := range placed {
		if img := j.glyph.Image; img != nil {
			draw.Copy(a.Image, image.Pt(j.glyph.X, j.glyph.Y), img, img.Bounds(), draw.Src, nil)
		}
	}

	slices.SortFunc(placed, func(x, y *job) int {
		return cmp.Compare(x.glyph.Rune, y.glyph.Rune)
	})
	a.Font = &FontData{
		Info: Info{
			Face:     f.Name(),
			Size:     f.Size(),
			Unicode:  1,
			StretchH: 100,
			Smooth:   1,
			AA:       1,
			Padding:  [4]int{cfg.Padding, cfg.Padding, cfg.Padding, cfg.Padding},
			Spacing:  [2]int{cfg.Spacing, cfg.Spacing},
		},
		Common: Common{
			LineHeight: metrics.LineHeight,
			Base:       metrics.Ascent,
			ScaleW:     width,
			ScaleH:     height,
			Pages:      1,
		},
	}
	for _, j := range placed {
		a.Glyphs = append(a.Glyphs, j.glyph)
		a.Font.Chars = append(a.Font.Chars, charData(j, f.Size(), cfg.Padding))
	}

	log.Info("atlas: built",
		"glyphs", len(placed),
		"failed", len(a.Failed),
		"width", width,
		"height", height)
	return a, nil
}

// load reads the outline for r and converts it into a shape.
func load(f *glyphs.Font, r rune, padding int) (*job, error) {
	g, err := f.Glyph(r)
	if err != nil {
		return nil, err
	}
	j := &job{
		glyph: &Glyph{
			Rune:    r,
			Bounds:  g.Bounds,
			Advance: g.Advance,
		},
	}
	if g.IsBlank() {
		return j, nil
	}

	pad := float64(padding)
	shape, err := msdf.ShapeFromPath(g.Outline, g.Bounds, pad)
	if err != nil {
		return nil, errors.Wrapf(err, "rune %q", r)
	}
	j.glyph.Shape = shape
	j.w = int(math.Ceil(shape.Width))
	j.h = int(math.Ceil(shape.Height))
	return j, nil
}

// generate computes the distance fields for all non-blank glyphs.
// Failures of individual glyphs are stored in the jobs; the returned
// error is only set if ctx is cancelled.
func generate(ctx context.Context, jobs []*job, cfg Config) error {
	total := len(jobs)
	var mu sync.Mutex // serialises the callbacks
	done := 0

	pool := sync.Pool{
		New: func() any {
			return &msdf.Generator{MaxRange: cfg.MaxRange}
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if j.glyph.Shape != nil {
				gen := pool.Get().(*msdf.Generator)
				defer pool.Put(gen)

				gen.Debug = nil
				if cfg.Trace != nil {
					gen.Debug = func(plane int, dm *msdf.DistanceMap) {
						mu.Lock()
						defer mu.Unlock()
						cfg.Trace(j.glyph.Rune, plane, dm)
					}
				}
				j.glyph.Image, j.err = gen.Generate(j.glyph.Shape, j.w, j.h)
				msdf.Logger().Debug("atlas: glyph",
					"rune", string(j.glyph.Rune),
					"width", j.w,
					"height", j.h,
					"err", j.err)
			}

			if cfg.Progress != nil {
				mu.Lock()
				done++
				cfg.Progress(done, total)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// autoWidth returns the smallest power of two which is at least the width
// of the widest glyph and the side of a square with the total glyph area.
func autoWidth(jobs []*job, spacing int) int {
	area := 0
	widest := 1
	for _, j := range jobs {
		area += (j.w + spacing) * (j.h + spacing)
		widest = max(widest, j.w)
	}
	side := max(widest, int(math.Ceil(math.Sqrt(float64(area)))))
	width := 1
	for width < side {
		width *= 2
	}
	return width
}

// pack assigns atlas positions to the glyphs, tallest first, and returns
// the glyphs which could be placed.  Blank glyphs are kept at (0, 0).
func pack(jobs []*job, width, spacing int, failed map[rune]error) []*job {
	order := slices.Clone(jobs)
	slices.SortStableFunc(order, func(a, b *job) int {
		if c := cmp.Compare(b.h, a.h); c != 0 {
			return c
		}
		return cmp.Compare(b.w, a.w)
	})

	packer := NewShelfPacker(width, spacing)
	res := order[:0]
	for _, j := range order {
		if j.glyph.Image == nil {
			res = append(res, j)
			continue
		}
		x, y, ok := packer.Allocate(j.w, j.h)
		if !ok {
			failed[j.glyph.Rune] = errors.Wrapf(ErrTooWide, "rune %q: %d > %d", j.glyph.Rune, j.w, packer.Width())
			continue
		}
		j.glyph.X, j.glyph.Y = x, y
		res = append(res, j)
	}
	msdf.Logger().Debug("atlas: packed",
		"shelves", packer.ShelfCount(),
		"utilization", packer.Utilization())
	return res
}

// charData returns the metrics record of a placed glyph.  Offsets use the
// layout of a text line whose baseline lies one font size below the top.
func charData(j *job, size float64, padding int) Char {
	g := j.glyph
	c := Char{
		ID:       int(g.Rune),
		Char:     string(g.Rune),
		XAdvance: g.Advance,
	}
	if g.Image == nil {
		return c
	}
	pad := float64(padding)
	c.X = g.X
	c.Y = g.Y
	c.Width = j.w
	c.Height = j.h
	c.XOffset = g.Bounds.LLx - pad
	c.YOffset = size + g.Bounds.LLy + pad
	return c
}

// Verify compares the median of every glyph's distance field with the
// coverage of its outline.  Blank glyphs are omitted.
func (a *Atlas) Verify() (map[rune]msdf.Report, error) {
	res := make(map[rune]msdf.Report, len(a.Glyphs))
	for _, g := range a.Glyphs {
		if g.Image == nil {
			continue
		}
		cov := msdf.Coverage(g.Shape, g.Image.Width, g.Image.Height)
		rep, err := msdf.Verify(g.Image, cov)
		if err != nil {
			return nil, errors.Wrapf(err, "rune %q", g.Rune)
		}
		res[g.Rune] = rep
	}
	return res, nil
}
