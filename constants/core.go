package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the terminal frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// WindowTPS is the ebiten update rate, one simulation frame per tick
	WindowTPS = 60
)

// Trail clear alpha: fraction of the background painted over the previous frame
const (
	ClearAlphaOpaque = 1.0
	ClearAlphaTrail  = 0.25
)
