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
	"errors"
	"fmt"
)

var (
	// ErrEmptyPlane is returned when a plane contains no segments.
	ErrEmptyPlane = errors.New("msdf: plane is empty")

	// ErrSingleSegmentPlane is returned for planes with exactly one
	// segment.  Such planes are not implemented.
	ErrSingleSegmentPlane = errors.New("msdf: plane has a single segment, not implemented")

	// ErrBufferSize is returned when a distance map or image has the wrong
	// dimensions for an operation.
	ErrBufferSize = errors.New("msdf: buffer size mismatch")

	// ErrChannel is returned for channel indices outside the image pitch.
	ErrChannel = errors.New("msdf: invalid channel")

	// ErrRange is returned for a non-positive distance range.
	ErrRange = errors.New("msdf: distance range must be positive")

	// ErrDegenerateSegment is returned when a segment's end points
	// coincide.
	ErrDegenerateSegment = errors.New("msdf: degenerate segment")

	// ErrCubic is returned for outlines which contain cubic Bézier curves.
	ErrCubic = errors.New("msdf: cubic curves are not supported")

	// ErrTGASize is returned for images too large for the TGA header.
	ErrTGASize = errors.New("msdf: image too large for TGA")
)

// PlaneError reports the failure to rasterise one plane of a shape.
type PlaneError struct {
	Plane int
	Err   error
}

func (e *PlaneError) Error() string {
	return fmt.Sprintf("msdf: plane %d: %v", e.Plane, e.Err)
}

func (e *PlaneError) Unwrap() error {
	return e.Err
}
