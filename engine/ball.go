package engine

import (
	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/vmath"
)

// Ball is a bouncing circle that recolors on contact and can be eliminated.
// A dead ball stays in the collection but no longer draws, moves or collides.
type Ball struct {
	core.Kinetic
	Color  core.RGB
	Radius float64
	Alive  bool
}

// NewBall creates a live ball
func NewBall(x, y, velX, velY float64, color core.RGB, radius float64) *Ball {
	return &Ball{
		Kinetic: core.Kinetic{X: x, Y: y, VelX: velX, VelY: velY},
		Color:   color,
		Radius:  radius,
		Alive:   true,
	}
}

// Draw renders the ball as a filled circle
func (b *Ball) Draw(c Canvas) {
	if !b.Alive {
		return
	}
	c.FillCircle(b.X, b.Y, b.Radius, b.Color)
}

// Advance bounces off the canvas edges then translates by one frame.
// Input is ignored; balls are not steerable.
func (b *Ball) Advance(bounds Bounds, _ Input) {
	if !b.Alive {
		return
	}
	if b.X+b.Radius >= bounds.Width || b.X-b.Radius <= 0 {
		b.VelX = -b.VelX
	}
	if b.Y+b.Radius >= bounds.Height || b.Y-b.Radius <= 0 {
		b.VelY = -b.VelY
	}
	b.Translate()
}

// DetectCollisions gives this ball and every overlapping live ball one shared
// fresh color. Both members of a pair run this, so a pair may recolor twice per frame.
// Balls never eliminate each other, so the result is always nil.
func (b *Ball) DetectCollisions(balls []*Ball, rng *vmath.Rand) []int {
	if !b.Alive {
		return nil
	}
	for _, other := range balls {
		if other == b || !other.Alive {
			continue
		}
		if vmath.CirclesOverlap(b.X, b.Y, b.Radius, other.X, other.Y, other.Radius) {
			c := rng.Color()
			b.Color = c
			other.Color = c
		}
	}
	return nil
}

// Clamp keeps the ball fully inside the bounds
func (b *Ball) Clamp(bounds Bounds) {
	b.X, b.Y = vmath.ClampCircle(b.X, b.Y, b.Radius, bounds.Width, bounds.Height)
}
