package constants

import "time"

// Terminal canvas geometry: canvas units covered by one terminal cell
const (
	CellWidth  = 8
	CellHeight = 16

	// HUDRows is the number of terminal rows reserved above the canvas
	HUDRows = 1
)

// Terminals report repeats but never key releases, so a press holds its
// direction for a window. The first press must outlast the auto-repeat delay
// (commonly 250-600ms); repeats then arrive every ~30-50ms.
const (
	KeyFirstHoldWindow = 600 * time.Millisecond
	KeyHoldWindow      = 150 * time.Millisecond
)

// HUD text
const (
	ScoreFormat     = "Ball Count: %d"
	TimeFormat      = "Time: %.2fs"
	FinalTimeFormat = "Final Time: %.2fs"
)

// HunterGlyph draws the hunter outline; balls paint cell backgrounds
const HunterGlyph = '▒'
