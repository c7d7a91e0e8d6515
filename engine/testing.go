package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/ball-hunt/core"
)

// DrawOp is one recorded canvas call
type DrawOp struct {
	Kind      string // "rect", "fill", "stroke"
	X, Y      float64
	W, H, R   float64
	LineWidth float64
	Color     core.RGB
	Alpha     float64
}

// RecordingCanvas is a Canvas that records every draw call, for tests
type RecordingCanvas struct {
	Width, Height float64
	Ops           []DrawOp
}

// NewRecordingCanvas creates a recording canvas of the given size
func NewRecordingCanvas(width, height float64) *RecordingCanvas {
	return &RecordingCanvas{Width: width, Height: height}
}

func (c *RecordingCanvas) Size() (float64, float64) {
	return c.Width, c.Height
}

func (c *RecordingCanvas) FillRect(x, y, w, h float64, col core.RGB, alpha float64) {
	c.Ops = append(c.Ops, DrawOp{Kind: "rect", X: x, Y: y, W: w, H: h, Color: col, Alpha: alpha})
}

func (c *RecordingCanvas) FillCircle(x, y, r float64, col core.RGB) {
	c.Ops = append(c.Ops, DrawOp{Kind: "fill", X: x, Y: y, R: r, Color: col})
}

func (c *RecordingCanvas) StrokeCircle(x, y, r, lineWidth float64, col core.RGB) {
	c.Ops = append(c.Ops, DrawOp{Kind: "stroke", X: x, Y: y, R: r, LineWidth: lineWidth, Color: col})
}

// Count returns how many ops of the given kind were recorded
func (c *RecordingCanvas) Count(kind string) int {
	n := 0
	for _, op := range c.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// RecordingDisplay is a Display that keeps every update, for tests
type RecordingDisplay struct {
	mu     sync.Mutex
	Scores []int
	Times  []time.Duration
	Final  bool
}

func (d *RecordingDisplay) SetScore(score int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Scores = append(d.Scores, score)
}

func (d *RecordingDisplay) SetTime(elapsed time.Duration, final bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Times = append(d.Times, elapsed)
	d.Final = final
}

// LastTime returns the most recent time update, zero if none
func (d *RecordingDisplay) LastTime() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Times) == 0 {
		return 0
	}
	return d.Times[len(d.Times)-1]
}

// NewTestState builds a state from explicit balls and a hunter
func NewTestState(hunter *Hunter, balls ...*Ball) *State {
	return &State{Balls: balls, Hunter: hunter}
}
