package engine

import (
	"testing"

	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/vmath"
)

var testBounds = Bounds{Width: 800, Height: 600}

// TestBallBounceFlipsOnce verifies an edge-touching ball reverses only the touching axis
func TestBallBounceFlipsOnce(t *testing.T) {
	b := NewBall(5, 300, 3, 2, core.RGBWhite, 10)
	b.Advance(testBounds, nil)

	if b.VelX != -3 {
		t.Errorf("Expected VelX -3 after left-edge bounce, got %f", b.VelX)
	}
	if b.VelY != 2 {
		t.Errorf("Expected VelY unchanged at 2, got %f", b.VelY)
	}
	if b.X != 2 || b.Y != 302 {
		t.Errorf("Expected position (2, 302), got (%f, %f)", b.X, b.Y)
	}
}

// TestBallCornerBounce verifies both axes flip independently in a corner
func TestBallCornerBounce(t *testing.T) {
	b := NewBall(795, 595, 4, 4, core.RGBWhite, 10)
	b.Advance(testBounds, nil)

	if b.VelX != -4 || b.VelY != -4 {
		t.Errorf("Expected velocity (-4, -4), got (%f, %f)", b.VelX, b.VelY)
	}
}

// TestBallPureTranslation verifies two updates away from edges only translate
func TestBallPureTranslation(t *testing.T) {
	b := NewBall(400, 300, 2, -3, core.RGBWhite, 10)

	b.Advance(testBounds, nil)
	if b.X != 402 || b.Y != 297 {
		t.Fatalf("Expected (402, 297) after first update, got (%f, %f)", b.X, b.Y)
	}

	b.Advance(testBounds, nil)
	if b.X != 404 || b.Y != 294 {
		t.Fatalf("Expected (404, 294) after second update, got (%f, %f)", b.X, b.Y)
	}
	if b.VelX != 2 || b.VelY != -3 {
		t.Errorf("Expected velocity unchanged (2, -3), got (%f, %f)", b.VelX, b.VelY)
	}
}

// TestBallCollisionRecolorSymmetric verifies overlapping balls share one fresh color
func TestBallCollisionRecolorSymmetric(t *testing.T) {
	rng := vmath.NewRand(11)
	a := NewBall(100, 100, 0, 0, core.RGB{R: 1}, 10)
	b := NewBall(112, 100, 0, 0, core.RGB{G: 1}, 10)
	balls := []*Ball{a, b}

	a.DetectCollisions(balls, rng)
	if a.Color != b.Color {
		t.Fatalf("Expected identical colors after a's check, got %v and %v", a.Color, b.Color)
	}

	b.DetectCollisions(balls, rng)
	if a.Color != b.Color {
		t.Errorf("Expected identical colors after b's check, got %v and %v", a.Color, b.Color)
	}
}

// TestBallTangentNoRecolor verifies touching circles are not a collision
func TestBallTangentNoRecolor(t *testing.T) {
	rng := vmath.NewRand(5)
	a := NewBall(100, 100, 0, 0, core.RGB{R: 1}, 10)
	b := NewBall(120, 100, 0, 0, core.RGB{G: 1}, 10)

	a.DetectCollisions([]*Ball{a, b}, rng)
	if a.Color != (core.RGB{R: 1}) || b.Color != (core.RGB{G: 1}) {
		t.Errorf("Tangent balls recolored: %v, %v", a.Color, b.Color)
	}
}

// TestDeadBallInert verifies a dead ball neither draws, moves nor collides
func TestDeadBallInert(t *testing.T) {
	rng := vmath.NewRand(5)
	dead := NewBall(100, 100, 3, 3, core.RGB{R: 1}, 10)
	dead.Alive = false
	live := NewBall(105, 100, 0, 0, core.RGB{G: 1}, 10)
	canvas := NewRecordingCanvas(800, 600)

	dead.Draw(canvas)
	dead.Advance(testBounds, nil)
	dead.DetectCollisions([]*Ball{dead, live}, rng)
	live.DetectCollisions([]*Ball{dead, live}, rng)

	if len(canvas.Ops) != 0 {
		t.Errorf("Dead ball drew %d ops", len(canvas.Ops))
	}
	if dead.X != 100 || dead.Y != 100 {
		t.Errorf("Dead ball moved to (%f, %f)", dead.X, dead.Y)
	}
	if dead.Color != (core.RGB{R: 1}) || live.Color != (core.RGB{G: 1}) {
		t.Errorf("Dead ball took part in recolor: %v, %v", dead.Color, live.Color)
	}
}

// TestBallDrawsFilledCircle verifies the draw primitive and arguments
func TestBallDrawsFilledCircle(t *testing.T) {
	canvas := NewRecordingCanvas(800, 600)
	b := NewBall(40, 50, 0, 0, core.RGB{R: 9, G: 8, B: 7}, 12)
	b.Draw(canvas)

	if len(canvas.Ops) != 1 {
		t.Fatalf("Expected 1 op, got %d", len(canvas.Ops))
	}
	op := canvas.Ops[0]
	if op.Kind != "fill" || op.X != 40 || op.Y != 50 || op.R != 12 || op.Color != b.Color {
		t.Errorf("Unexpected draw op %+v", op)
	}
}
