package engine

import (
	"time"

	"github.com/lixenwraith/ball-hunt/core"
)

// Canvas is the drawing surface the simulation renders into.
// Size may change between frames; the loop is told through Loop.Resize.
type Canvas interface {
	Size() (width, height float64)
	FillRect(x, y, w, h float64, c core.RGB, alpha float64)
	FillCircle(x, y, r float64, c core.RGB)
	StrokeCircle(x, y, r, lineWidth float64, c core.RGB)
}

// Direction is one of the four hunter movement inputs
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	directionCount
)

// String returns the direction name for logs
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Input exposes the held state of the movement directions
type Input interface {
	Held(d Direction) bool
}

// Clock is a monotonic time source
type Clock interface {
	Now() time.Time
}

// Display receives the score and timer text updates
type Display interface {
	SetScore(score int)
	SetTime(elapsed time.Duration, final bool)
}

// Scheduler runs a callback before the next refresh
type Scheduler interface {
	ScheduleNext(fn func())
}

// SoundPlayer receives gameplay audio cues
type SoundPlayer interface {
	PlayEliminate()
	PlayFinish()
}

// NopSound is a silent SoundPlayer
type NopSound struct{}

func (NopSound) PlayEliminate() {}
func (NopSound) PlayFinish()    {}

// NopDisplay discards display updates
type NopDisplay struct{}

func (NopDisplay) SetScore(int)                {}
func (NopDisplay) SetTime(time.Duration, bool) {}

// NopCanvas is a fixed-size canvas that draws nothing
type NopCanvas struct {
	Width, Height float64
}

func (c NopCanvas) Size() (float64, float64)                         { return c.Width, c.Height }
func (NopCanvas) FillRect(_, _, _, _ float64, _ core.RGB, _ float64) {}
func (NopCanvas) FillCircle(_, _, _ float64, _ core.RGB)             {}
func (NopCanvas) StrokeCircle(_, _, _, _ float64, _ core.RGB)        {}
