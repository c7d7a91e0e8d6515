package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ball-hunt/engine"
)

// StatusDisplay draws the scoreboard texts on the top terminal row
type StatusDisplay struct {
	engine.Scoreboard
}

var _ engine.Display = (*StatusDisplay)(nil)

// NewStatusDisplay creates an empty HUD
func NewStatusDisplay() *StatusDisplay {
	return &StatusDisplay{}
}

// Draw renders the HUD row across width cells.
// The time text is dropped when it would overlap the score.
func (d *StatusDisplay) Draw(screen Screen, width int) {
	score, elapsed := d.Texts()

	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, ' ', nil, hudStyle)
	}
	drawText(screen, 1, score, hudStyle, width)

	timeStyle := hudStyle
	if d.Final() {
		timeStyle = hudFinalStyle
	}
	start := width - runewidth.StringWidth(elapsed) - 1
	if start < runewidth.StringWidth(score)+2 {
		return
	}
	drawText(screen, start, elapsed, timeStyle, width)
}

func drawText(screen Screen, x int, s string, style tcell.Style, width int) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			return
		}
		screen.SetContent(x, 0, r, nil, style)
		x += w
	}
}
