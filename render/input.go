package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ball-hunt/engine"
)

// DirectionForKey maps WASD and arrow keys to hunter directions
func DirectionForKey(ev *tcell.EventKey) (engine.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.DirLeft, true
	case tcell.KeyRight:
		return engine.DirRight, true
	case tcell.KeyUp:
		return engine.DirUp, true
	case tcell.KeyDown:
		return engine.DirDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return engine.DirLeft, true
		case 'd', 'D':
			return engine.DirRight, true
		case 'w', 'W':
			return engine.DirUp, true
		case 's', 'S':
			return engine.DirDown, true
		}
	}
	return 0, false
}

// IsQuitKey reports Esc, Ctrl-C and q
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
