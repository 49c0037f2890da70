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

// ShelfPacker places rectangles into horizontal shelves of a fixed-width
// atlas.  The atlas grows downwards as needed.
//
// Rectangles are placed left-to-right on the first shelf which has room,
// and a new shelf is started below the last one when none does.  Packing
// works best when rectangles are added tallest first.
type ShelfPacker struct {
	width   int     // total width of the atlas
	spacing int     // gap between rectangles
	shelves []shelf // list of shelves

	usedArea int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // y position of shelf top
	height int // height of the shelf (tallest item so far)
	x      int // next free x position
}

// NewShelfPacker creates a packer for an atlas of the given width.
func NewShelfPacker(width, spacing int) *ShelfPacker {
	return &ShelfPacker{
		width:   width,
		spacing: spacing,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a w × h rectangle and returns its top-left
// corner.  Allocation fails only if the rectangle is wider than the
// atlas.
func (p *ShelfPacker) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + p.spacing
	if w > p.width {
		return -1, -1, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+w > p.width {
			continue
		}
		if h > s.height {
			// only the last shelf can grow
			if i != len(p.shelves)-1 {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		p.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if len(p.shelves) > 0 {
		last := p.shelves[len(p.shelves)-1]
		newY = last.y + last.height + p.spacing
	}
	p.shelves = append(p.shelves, shelf{
		y:      newY,
		height: h,
		x:      paddedW,
	})
	p.usedArea += w * h
	return 0, newY, true
}

// Width returns the width of the atlas.
func (p *ShelfPacker) Width() int {
	return p.width
}

// Height returns the height needed for all rectangles allocated so far.
func (p *ShelfPacker) Height() int {
	if len(p.shelves) == 0 {
		return 0
	}
	last := p.shelves[len(p.shelves)-1]
	return last.y + last.height
}

// ShelfCount returns the number of shelves currently in use.
func (p *ShelfPacker) ShelfCount() int {
	return len(p.shelves)
}

// Utilization returns the fraction of the atlas covered by rectangles.
func (p *ShelfPacker) Utilization() float64 {
	total := p.width * p.Height()
	if total <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}

// Reset clears all allocations, allowing the packer to be reused.
func (p *ShelfPacker) Reset() {
	p.shelves = p.shelves[:0]
	p.usedArea = 0
}
