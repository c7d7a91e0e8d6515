package engine

import (
	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/vmath"
)

// Hunter is the player-steered circle that eliminates balls and grows
type Hunter struct {
	core.Kinetic
	Color  core.RGB
	Radius float64
}

// NewHunter creates a hunter with the stock size, speed and color
func NewHunter(x, y float64) *Hunter {
	return &Hunter{
		Kinetic: core.Kinetic{X: x, Y: y, VelX: constants.HunterSpeed, VelY: constants.HunterSpeed},
		Color:   core.RGBWhite,
		Radius:  constants.HunterRadius,
	}
}

// Draw renders the hunter as an outline
func (h *Hunter) Draw(c Canvas) {
	c.StrokeCircle(h.X, h.Y, h.Radius, constants.HunterStrokeWidth, h.Color)
}

// Advance moves along each held direction; opposite keys cancel out
func (h *Hunter) Advance(_ Bounds, in Input) {
	if in == nil {
		return
	}
	if in.Held(DirLeft) {
		h.X -= h.VelX
	}
	if in.Held(DirRight) {
		h.X += h.VelX
	}
	if in.Held(DirUp) {
		h.Y -= h.VelY
	}
	if in.Held(DirDown) {
		h.Y += h.VelY
	}
}

// Clamp keeps the hunter fully inside the bounds
func (h *Hunter) Clamp(bounds Bounds) {
	h.X, h.Y = vmath.ClampCircle(h.X, h.Y, h.Radius, bounds.Width, bounds.Height)
}

// DetectCollisions eliminates every live ball overlapping the hunter and
// returns their indices. Balls are tested in collection order against the
// hunter's current size, so growth from an earlier hit can catch later balls.
// Scoring is left to the caller.
func (h *Hunter) DetectCollisions(balls []*Ball, rng *vmath.Rand) []int {
	var hits []int
	for i, ball := range balls {
		if !ball.Alive {
			continue
		}
		if !vmath.CirclesOverlap(h.X, h.Y, h.Radius, ball.X, ball.Y, ball.Radius) {
			continue
		}
		ball.Alive = false
		h.Color = rng.Color()
		h.Radius += constants.HunterGrowth
		h.VelX += constants.HunterSpeedGrowth
		h.VelY += constants.HunterSpeedGrowth
		hits = append(hits, i)
	}
	return hits
}
