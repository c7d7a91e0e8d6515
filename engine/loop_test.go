package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/core"
)

type loopFixture struct {
	loop      *Loop
	sched     *FrameScheduler
	clock     *MockTimeProvider
	display   *RecordingDisplay
	keys      *KeyState
	canvas    *RecordingCanvas
	eliminate int
	finish    int
}

func (f *loopFixture) PlayEliminate() { f.eliminate++ }
func (f *loopFixture) PlayFinish()    { f.finish++ }

func newLoopFixture(t *testing.T, cfg *Config, state *State) *loopFixture {
	t.Helper()
	f := &loopFixture{
		sched:   NewFrameScheduler(),
		clock:   NewMockTimeProvider(testEpoch),
		display: &RecordingDisplay{},
		keys:    NewKeyState(),
		canvas:  NewRecordingCanvas(800, 600),
	}
	loop, err := NewLoopWithState(cfg, Deps{
		Canvas:    f.canvas,
		Input:     f.keys,
		Clock:     f.clock,
		Display:   f.display,
		Scheduler: f.sched,
		Sound:     f,
	}, state)
	if err != nil {
		t.Fatalf("NewLoopWithState failed: %v", err)
	}
	f.loop = loop
	return f
}

// runningState never ends on its own: the only ball is far from the hunter
func runningState() *State {
	return NewTestState(NewHunter(100, 100), NewBall(700, 500, 0, 0, core.RGBWhite, 10))
}

// TestLoopSingleBallScenario covers the end-to-end elimination and shutdown
func TestLoopSingleBallScenario(t *testing.T) {
	state := NewTestState(NewHunter(405, 300), NewBall(400, 300, 0, 0, core.RGBWhite, 10))
	f := newLoopFixture(t, DefaultConfig(), state)

	f.loop.Start()
	if !f.sched.Pending() {
		t.Fatal("Expected Start to schedule the first frame")
	}
	f.sched.RunPending()

	if f.loop.Phase() != PhaseEnded {
		t.Fatalf("Expected ended phase, got %v", f.loop.Phase())
	}
	if f.loop.Score() != 1 {
		t.Errorf("Expected score 1, got %d", f.loop.Score())
	}
	if f.sched.Pending() {
		t.Error("Expected no frame scheduled after ending")
	}
	if f.sched.RunPending() {
		t.Error("RunPending ran a frame after ending")
	}
	select {
	case <-f.loop.Done():
	default:
		t.Error("Expected Done to be closed")
	}
	if f.eliminate != 1 || f.finish != 1 {
		t.Errorf("Expected 1 eliminate and 1 finish cue, got %d and %d", f.eliminate, f.finish)
	}
	if got := f.display.Scores; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected score updates [0 1], got %v", got)
	}
	if !f.display.Final {
		t.Error("Expected final time display")
	}
}

// TestLoopElapsedFrozenAtEnd verifies the displayed final time is the last computed one
func TestLoopElapsedFrozenAtEnd(t *testing.T) {
	ball := NewBall(700, 500, 0, 0, core.RGBWhite, 10)
	state := NewTestState(NewHunter(100, 100), ball)
	f := newLoopFixture(t, DefaultConfig(), state)

	f.loop.Start()
	for i := 0; i < 3; i++ {
		f.sched.RunPending()
		f.clock.Advance(time.Second)
	}

	// Park the hunter on the ball for the next frame
	state.Hunter.X, state.Hunter.Y = 700, 500
	f.sched.RunPending()

	want := 3 * time.Second
	if f.loop.Elapsed() != want {
		t.Fatalf("Expected elapsed %v at end, got %v", want, f.loop.Elapsed())
	}

	f.clock.Advance(10 * time.Second)
	f.sched.RunPending()
	if f.loop.Elapsed() != want || f.display.LastTime() != want {
		t.Errorf("Elapsed moved after end: loop=%v display=%v", f.loop.Elapsed(), f.display.LastTime())
	}
	if f.loop.Frames() != 4 {
		t.Errorf("Expected 4 frames, got %d", f.loop.Frames())
	}
}

// TestLoopClockStartsOnFirstFrame pins the default clock policy
func TestLoopClockStartsOnFirstFrame(t *testing.T) {
	f := newLoopFixture(t, DefaultConfig(), runningState())
	f.loop.Start()

	f.clock.Advance(500 * time.Millisecond)
	f.sched.RunPending()
	if f.loop.Elapsed() != 0 {
		t.Errorf("Expected elapsed 0 on first frame, got %v", f.loop.Elapsed())
	}

	f.clock.Advance(16 * time.Millisecond)
	f.sched.RunPending()
	if f.loop.Elapsed() != 16*time.Millisecond {
		t.Errorf("Expected elapsed 16ms, got %v", f.loop.Elapsed())
	}
	if len(f.display.Times) != 2 {
		t.Errorf("Expected a time update per frame, got %v", f.display.Times)
	}
}

// TestLoopManualClock pins the manual clock policy: no time until started
func TestLoopManualClock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClockPolicy = ClockManual
	f := newLoopFixture(t, cfg, runningState())
	f.loop.Start()

	for i := 0; i < 5; i++ {
		f.clock.Advance(time.Second)
		f.sched.RunPending()
	}
	if len(f.display.Times) != 0 || f.loop.Elapsed() != 0 {
		t.Fatalf("Expected no time before StartClock, got %v", f.display.Times)
	}

	f.loop.StartClock()
	f.clock.Advance(2 * time.Second)
	f.sched.RunPending()
	if f.loop.Elapsed() != 2*time.Second {
		t.Errorf("Expected elapsed 2s after manual start, got %v", f.loop.Elapsed())
	}
}

// TestLoopStartIdempotent verifies a second Start does not double-schedule
func TestLoopStartIdempotent(t *testing.T) {
	f := newLoopFixture(t, DefaultConfig(), runningState())
	f.loop.Start()
	f.loop.Start()

	if len(f.display.Scores) != 1 {
		t.Errorf("Expected one initial score update, got %v", f.display.Scores)
	}
	for i := 0; i < 10; i++ {
		if !f.sched.RunPending() {
			t.Fatalf("Frame %d not scheduled", i)
		}
	}
	if f.loop.Frames() != 10 || f.sched.Runs() != 10 {
		t.Errorf("Expected 10 frames, got %d (runs %d)", f.loop.Frames(), f.sched.Runs())
	}
}

// TestLoopResizeClamps verifies a shrinking canvas pulls entities inside
func TestLoopResizeClamps(t *testing.T) {
	f := newLoopFixture(t, DefaultConfig(), runningState())
	f.canvas.Width, f.canvas.Height = 300, 200

	f.loop.Resize()

	b := f.loop.State().Balls[0]
	if b.X != 290 || b.Y != 190 {
		t.Errorf("Expected ball clamped to (290, 190), got (%f, %f)", b.X, b.Y)
	}
}

// TestNewLoopSpawnsFullCollection verifies production construction
func TestNewLoopSpawnsFullCollection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	loop, err := NewLoop(cfg, Deps{
		Canvas:    NopCanvas{Width: 800, Height: 600},
		Clock:     NewMockTimeProvider(testEpoch),
		Scheduler: NewFrameScheduler(),
	})
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}
	if n := len(loop.State().Balls); n != constants.BallCount {
		t.Errorf("Expected %d balls, got %d", constants.BallCount, n)
	}
	if loop.Phase() != PhaseRunning {
		t.Errorf("Expected running phase, got %v", loop.Phase())
	}
}

func TestNewLoopRejectsMissingDeps(t *testing.T) {
	cases := map[string]Deps{
		"canvas":    {Clock: NewMonotonicTimeProvider(), Scheduler: NewFrameScheduler()},
		"clock":     {Canvas: NopCanvas{Width: 800, Height: 600}, Scheduler: NewFrameScheduler()},
		"scheduler": {Canvas: NopCanvas{Width: 800, Height: 600}, Clock: NewMonotonicTimeProvider()},
	}
	for name, deps := range cases {
		if _, err := NewLoop(DefaultConfig(), deps); err == nil {
			t.Errorf("missing %s: expected error", name)
		}
	}
}

// TestLoopFullGameTerminates drives a seeded game to completion with a sweeping hunter
func TestLoopFullGameTerminates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 2024
	sched := NewFrameScheduler()
	keys := NewKeyState()
	display := &RecordingDisplay{}
	loop, err := NewLoop(cfg, Deps{
		Canvas:    NopCanvas{Width: 320, Height: 240},
		Input:     keys,
		Clock:     NewMockTimeProvider(testEpoch),
		Display:   display,
		Scheduler: sched,
	})
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}

	loop.Start()
	for i := 0; i < 100000 && sched.Pending(); i++ {
		keys.ReleaseAll()
		// Zig-zag across the canvas so the growing hunter sweeps it
		if (i/60)%2 == 0 {
			keys.Press(DirRight)
		} else {
			keys.Press(DirLeft)
		}
		if (i/47)%2 == 0 {
			keys.Press(DirDown)
		} else {
			keys.Press(DirUp)
		}
		sched.RunPending()
	}

	if loop.Phase() != PhaseEnded {
		t.Fatalf("Game did not end, score %d", loop.Score())
	}
	if loop.Score() != constants.BallCount {
		t.Errorf("Expected score %d, got %d", constants.BallCount, loop.Score())
	}
	for i := 1; i < len(display.Scores); i++ {
		if display.Scores[i] < display.Scores[i-1] {
			t.Fatalf("Displayed score decreased: %v", display.Scores)
		}
	}
}
