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
	"fmt"
	"runtime"

	"seehuhn.de/go/msdf"
)

// Config holds the parameters for building an atlas.
type Config struct {
	// Padding is the number of pixels added on every side of a glyph's
	// bounding box.  The distance field extends into the padding.
	Padding int

	// MaxRange is the distance, in pixels, which maps to the ends of the
	// byte range.
	MaxRange float64

	// Spacing is the number of pixels left empty between glyphs in the
	// atlas.
	Spacing int

	// Workers is the number of glyphs generated concurrently.  Zero means
	// runtime.GOMAXPROCS(0).
	Workers int

	// Width is the width of the atlas in pixels.  Zero selects the
	// smallest power of two which gives a roughly square atlas.
	Width int

	// Progress, if not nil, is called after each glyph has been
	// generated.
	Progress func(done, total int)

	// Trace, if not nil, is called with the distance map of every plane of
	// every glyph.  The map is only valid during the call.
	Trace func(r rune, plane int, dm *msdf.DistanceMap)
}

// DefaultConfig returns the default atlas parameters.
func DefaultConfig() Config {
	return Config{
		Padding:  10,
		MaxRange: 1,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if !(c.MaxRange > 0) {
		return &ConfigError{Field: "MaxRange", Reason: "must be positive"}
	}
	if c.Spacing < 0 {
		return &ConfigError{Field: "Spacing", Reason: "must be non-negative"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must be non-negative"}
	}
	if c.Width < 0 {
		return &ConfigError{Field: "Width", Reason: "must be non-negative"}
	}
	return nil
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("atlas: invalid config.%s: %s", e.Field, e.Reason)
}
