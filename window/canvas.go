package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/engine"
)

// WindowCanvas draws onto a persistent offscreen image so a translucent
// clear leaves trails of the previous frames
type WindowCanvas struct {
	img    *ebiten.Image
	width  int
	height int
}

var _ engine.Canvas = (*WindowCanvas)(nil)

// NewWindowCanvas creates a canvas of width x height pixels
func NewWindowCanvas(width, height int) *WindowCanvas {
	c := &WindowCanvas{}
	c.Resize(width, height)
	return c
}

// fit returns the size the canvas takes for a requested size, and whether
// that differs from the current one. A minimized window reports 0x0, which
// maps to 1x1 so the image stays valid.
func (c *WindowCanvas) fit(width, height int) (int, int, bool) {
	width, height = max(width, 1), max(height, 1)
	return width, height, width != c.width || height != c.height
}

// Resize replaces the backing image, keeping what was drawn so far.
// It reports whether the size changed.
func (c *WindowCanvas) Resize(width, height int) bool {
	width, height, changed := c.fit(width, height)
	if c.img != nil && !changed {
		return false
	}
	img := ebiten.NewImage(width, height)
	img.Fill(core.RGBBlack.RGBA(1))
	if c.img != nil {
		img.DrawImage(c.img, nil)
		c.img.Deallocate()
	}
	c.img = img
	c.width, c.height = width, height
	return true
}

// Image returns the composed frame
func (c *WindowCanvas) Image() *ebiten.Image {
	return c.img
}

func (c *WindowCanvas) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

func (c *WindowCanvas) FillRect(x, y, w, h float64, col core.RGB, alpha float64) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), col.RGBA(alpha), false)
}

func (c *WindowCanvas) FillCircle(x, y, r float64, col core.RGB) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col.RGBA(1), true)
}

func (c *WindowCanvas) StrokeCircle(x, y, r, lineWidth float64, col core.RGB) {
	vector.StrokeCircle(c.img, float32(x), float32(y), float32(r), float32(lineWidth), col.RGBA(1), true)
}
