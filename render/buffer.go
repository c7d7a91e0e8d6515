package render

import (
	"github.com/lixenwraith/ball-hunt/core"
)

// Cell is one terminal cell: a background color plus an optional glyph
type Cell struct {
	Bg    core.RGB
	Fg    core.RGB
	Glyph rune // 0 = background only
}

// RenderBuffer is the cell grid the terminal canvas composes into before flushing
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a black buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to black using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions in cells
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in buffer bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields a zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg paints the cell background and drops any glyph
func (b *RenderBuffer) SetBg(x, y int, c core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Bg: c}
}

// SetGlyph draws a glyph over the existing background
func (b *RenderBuffer) SetGlyph(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Glyph = r
	cell.Fg = fg
}

// Fade blends every cell in the rectangle toward c by alpha.
// Glyphs whose foreground has faded to the background are dropped.
func (b *RenderBuffer) Fade(x0, y0, x1, y1 int, c core.RGB, alpha float64) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width), min(y1, b.height)
	if alpha >= 1 {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				b.cells[y*b.width+x] = Cell{Bg: c}
			}
		}
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := &b.cells[y*b.width+x]
			cell.Bg = cell.Bg.Blend(c, alpha)
			if cell.Glyph == 0 {
				continue
			}
			cell.Fg = cell.Fg.Blend(c, alpha)
			if cell.Fg == cell.Bg {
				cell.Glyph = 0
			}
		}
	}
}
