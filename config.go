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

import "fmt"

// Config holds the parameters of a [Generator].
type Config struct {
	// MaxRange is the distance, in shape units, which maps to the ends of
	// the byte range.  Larger values give softer but more scalable fields.
	MaxRange float64
}

// DefaultConfig returns the configuration used by the atlas tool.
func DefaultConfig() Config {
	return Config{
		MaxRange: 1,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !(c.MaxRange > 0) {
		return &ConfigError{Field: "MaxRange", Reason: "must be positive"}
	}
	return nil
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("msdf: invalid config.%s: %s", e.Field, e.Reason)
}
