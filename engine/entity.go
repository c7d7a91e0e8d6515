package engine

import "github.com/lixenwraith/ball-hunt/vmath"

// Bounds is the canvas extent the entities live in
type Bounds struct {
	Width, Height float64
}

// Entity is the capability set Step drives for balls and the hunter.
// DetectCollisions returns the indices of balls it eliminated, in order.
type Entity interface {
	Draw(c Canvas)
	Advance(b Bounds, in Input)
	Clamp(b Bounds)
	DetectCollisions(balls []*Ball, rng *vmath.Rand) []int
}

var (
	_ Entity = (*Ball)(nil)
	_ Entity = (*Hunter)(nil)
)
