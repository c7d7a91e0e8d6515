package core

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from any frontend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Colorful converts to a go-colorful color for blending
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend moves c toward src by alpha in RGB space; alpha is clamped to [0, 1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	r, g, b := c.Colorful().BlendRgb(src.Colorful(), alpha).RGB255()
	return RGB{R: r, G: g, B: b}
}

// RGBA converts to an image/color value with the given opacity in [0, 1]
func (c RGB) RGBA(alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	a := uint8(alpha*255 + 0.5)
	// image/color expects premultiplied channels
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: a,
	}
}

// String formats the color the way CSS does, used in debug logs
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
