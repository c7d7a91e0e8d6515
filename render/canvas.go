package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/engine"
)

// Screen is the part of tcell.Screen the canvas flushes into
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// TerminalCanvas maps the simulation's continuous canvas onto terminal cells.
// One cell covers CellWidth x CellHeight canvas units; the top HUDRows rows
// belong to the status line and are not part of the canvas.
type TerminalCanvas struct {
	buf    *RenderBuffer
	status *StatusDisplay
}

var _ engine.Canvas = (*TerminalCanvas)(nil)

// NewTerminalCanvas creates a canvas for a terminal of cols x rows
func NewTerminalCanvas(cols, rows int, status *StatusDisplay) *TerminalCanvas {
	c := &TerminalCanvas{buf: NewRenderBuffer(0, 0), status: status}
	c.Resize(cols, rows)
	return c
}

// Resize adapts to a new terminal size; the loop must be told via Loop.Resize
func (c *TerminalCanvas) Resize(cols, rows int) {
	c.buf.Resize(cols, rows-constants.HUDRows)
}

// Buffer exposes the cell grid
func (c *TerminalCanvas) Buffer() *RenderBuffer {
	return c.buf
}

// Size returns the canvas extent in canvas units
func (c *TerminalCanvas) Size() (float64, float64) {
	w, h := c.buf.Bounds()
	return float64(w * constants.CellWidth), float64(h * constants.CellHeight)
}

// FillRect paints the covered cells; alpha < 1 fades them toward col
func (c *TerminalCanvas) FillRect(x, y, w, h float64, col core.RGB, alpha float64) {
	x0, y0 := toCell(x, y)
	x1 := int(math.Ceil((x + w) / constants.CellWidth))
	y1 := int(math.Ceil((y + h) / constants.CellHeight))
	c.buf.Fade(x0, y0, x1, y1, col, alpha)
}

// FillCircle paints every cell whose center lies inside the circle, and
// always the cell holding the center so sub-cell circles stay visible
func (c *TerminalCanvas) FillCircle(x, y, r float64, col core.RGB) {
	x0, y0, x1, y1 := cellSpan(x, y, r)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			mx, my := cellCenter(cx, cy)
			if math.Hypot(mx-x, my-y) <= r {
				c.buf.SetBg(cx, cy, col)
			}
		}
	}
	cx, cy := toCell(x, y)
	c.buf.SetBg(cx, cy, col)
}

// StrokeCircle draws a glyph in every cell the ring of the given width touches
func (c *TerminalCanvas) StrokeCircle(x, y, r, lineWidth float64, col core.RGB) {
	inner := r - lineWidth/2
	outer := r + lineWidth/2
	x0, y0, x1, y1 := cellSpan(x, y, outer)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			near, far := cellDistances(cx, cy, x, y)
			if near <= outer && far >= inner {
				c.buf.SetGlyph(cx, cy, constants.HunterGlyph, col)
			}
		}
	}
}

// Flush writes the HUD row and the cell grid to the screen and shows it
func (c *TerminalCanvas) Flush(screen Screen) {
	w, h := c.buf.Bounds()
	if c.status != nil {
		c.status.Draw(screen, w)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.buf.Get(x, y)
			r := cell.Glyph
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y+constants.HUDRows, r, nil, CellStyle(cell))
		}
	}
	screen.Show()
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / constants.CellWidth)), int(math.Floor(y / constants.CellHeight))
}

func cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * constants.CellWidth, (float64(cy) + 0.5) * constants.CellHeight
}

// cellSpan returns the inclusive cell range covering the circle's bounding box
func cellSpan(x, y, r float64) (x0, y0, x1, y1 int) {
	x0, y0 = toCell(x-r, y-r)
	x1, y1 = toCell(x+r, y+r)
	return
}

// cellDistances returns the nearest and farthest distance from (x, y) to the cell rectangle
func cellDistances(cx, cy int, x, y float64) (near, far float64) {
	left := float64(cx) * constants.CellWidth
	top := float64(cy) * constants.CellHeight
	right := left + constants.CellWidth
	bottom := top + constants.CellHeight

	nx := math.Max(math.Max(left-x, 0), x-right)
	ny := math.Max(math.Max(top-y, 0), y-bottom)
	fx := math.Max(math.Abs(x-left), math.Abs(x-right))
	fy := math.Max(math.Abs(y-top), math.Abs(y-bottom))
	return math.Hypot(nx, ny), math.Hypot(fx, fy)
}
