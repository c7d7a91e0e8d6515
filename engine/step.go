package engine

import (
	"time"

	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/vmath"
)

// Frame is the per-frame environment handed to Step
type Frame struct {
	Canvas     Canvas
	Input      Input
	Now        time.Time
	Rand       *vmath.Rand
	ClearAlpha float64
}

// StepResult reports what one frame changed
type StepResult struct {
	// Eliminated holds the collection indices of balls killed this frame, in order
	Eliminated []int
	Ended      bool
}

// Step advances the state by one frame and draws it.
// Stepping an ended state is a no-op.
func Step(s *State, f Frame) StepResult {
	var res StepResult
	if s.Phase == PhaseEnded {
		res.Ended = true
		return res
	}

	w, h := f.Canvas.Size()
	bounds := Bounds{Width: w, Height: h}

	f.Canvas.FillRect(0, 0, w, h, core.RGBBlack, f.ClearAlpha)

	for _, ball := range s.Balls {
		if !ball.Alive {
			continue
		}
		var e Entity = ball
		e.Draw(f.Canvas)
		e.Advance(bounds, nil)
		e.DetectCollisions(s.Balls, f.Rand)
	}

	var hunter Entity = s.Hunter
	hunter.Clamp(bounds)
	hunter.Advance(bounds, f.Input)
	hunter.Draw(f.Canvas)
	hunter.Clamp(bounds)
	res.Eliminated = hunter.DetectCollisions(s.Balls, f.Rand)
	s.Score += len(res.Eliminated)

	if s.clockStarted {
		s.Elapsed = f.Now.Sub(s.startTime)
	}
	s.Frames++

	if s.AliveCount() == 0 {
		s.Phase = PhaseEnded
		res.Ended = true
		f.Canvas.FillRect(0, 0, w, h, core.RGBBlack, 1)
		hunter.Draw(f.Canvas)
	}

	return res
}
