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

// Generator turns shapes into three-channel distance field images.
// Create one instance per goroutine and reuse it for many glyphs; the
// scratch distance map grows as needed but is never shrunk.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	// MaxRange is passed to [FillChannel].
	MaxRange float64

	// Debug, if not nil, is called after each plane has been rasterised,
	// before the map is encoded into the image.  The map is only valid
	// during the call.
	Debug func(plane int, dm *DistanceMap)

	dm DistanceMap // reused across planes and glyphs
}

// NewGenerator returns a Generator for the given configuration.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{MaxRange: cfg.MaxRange}, nil
}

// Generate rasterises shape into a width × height image with three
// channels.  The planes of shape are rebuilt by [Shape.SplitPlanes].
// Failure in any plane aborts the glyph; the error is a [*PlaneError].
func (g *Generator) Generate(shape *Shape, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBufferSize
	}

	shape.SplitPlanes()
	img := NewImage(width, height, NumPlanes)
	g.dm.Resize(width, height)

	for k, plane := range shape.Planes {
		if err := FillPlane(&g.dm, shape, plane); err != nil {
			return nil, &PlaneError{Plane: k, Err: err}
		}
		if g.Debug != nil {
			g.Debug(k, &g.dm)
		}
		if err := FillChannel(img, &g.dm, k, g.MaxRange); err != nil {
			return nil, &PlaneError{Plane: k, Err: err}
		}
	}

	Logger().Debug("msdf: generated field",
		"segments", len(shape.Segments),
		"width", width,
		"height", height)
	return img, nil
}
