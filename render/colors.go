package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ball-hunt/core"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// CellStyle builds the tcell style for a buffer cell
func CellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.Background(RGBToTcell(c.Bg))
	if c.Glyph != 0 {
		style = style.Foreground(RGBToTcell(c.Fg))
	}
	return style
}

// HUD palette
var (
	hudStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230)).Background(tcell.NewRGBColor(20, 20, 28))
	hudFinalStyle = hudStyle.Foreground(tcell.NewRGBColor(255, 200, 60)).Bold(true)
)
