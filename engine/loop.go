package engine

import (
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ball-hunt/vmath"
)

// Deps are the collaborators the loop drives. Sound and Display may be nil.
type Deps struct {
	Canvas    Canvas
	Input     Input
	Clock     Clock
	Display   Display
	Scheduler Scheduler
	Sound     SoundPlayer
}

// Loop runs the Running -> Ended state machine one scheduled frame at a time.
// All methods except Done must be called from the goroutine that runs the scheduler.
type Loop struct {
	cfg   *Config
	state *State
	rng   *vmath.Rand

	canvas    Canvas
	input     Input
	clock     Clock
	display   Display
	scheduler Scheduler
	sound     SoundPlayer

	started  bool
	done     chan struct{}
	doneOnce sync.Once
}

// NewLoop spawns a fresh state sized to the canvas
func NewLoop(cfg *Config, deps Deps) (*Loop, error) {
	if err := checkDeps(deps); err != nil {
		return nil, err
	}
	rng := vmath.NewRand(cfg.Seed)
	w, h := deps.Canvas.Size()
	state, err := NewState(cfg, w, h, rng)
	if err != nil {
		return nil, errors.Wrap(err, "spawn")
	}
	return newLoop(cfg, deps, state, rng), nil
}

// NewLoopWithState drives a caller-built state
func NewLoopWithState(cfg *Config, deps Deps, state *State) (*Loop, error) {
	if err := checkDeps(deps); err != nil {
		return nil, err
	}
	if state == nil || state.Hunter == nil {
		return nil, errors.New("state needs a hunter")
	}
	return newLoop(cfg, deps, state, vmath.NewRand(cfg.Seed)), nil
}

func checkDeps(deps Deps) error {
	switch {
	case deps.Canvas == nil:
		return errors.New("nil canvas")
	case deps.Clock == nil:
		return errors.New("nil clock")
	case deps.Scheduler == nil:
		return errors.New("nil scheduler")
	}
	return nil
}

func newLoop(cfg *Config, deps Deps, state *State, rng *vmath.Rand) *Loop {
	l := &Loop{
		cfg:       cfg,
		state:     state,
		rng:       rng,
		canvas:    deps.Canvas,
		input:     deps.Input,
		clock:     deps.Clock,
		display:   deps.Display,
		scheduler: deps.Scheduler,
		sound:     deps.Sound,
		done:      make(chan struct{}),
	}
	if l.display == nil {
		l.display = NopDisplay{}
	}
	if l.sound == nil {
		l.sound = NopSound{}
	}
	return l
}

// Start shows the initial score and schedules the first frame. Idempotent.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true
	l.display.SetScore(l.state.Score)
	log.Printf("loop: start balls=%d clear=%s clock=%s", len(l.state.Balls), l.cfg.ClearMode, l.cfg.ClockPolicy)
	l.scheduler.ScheduleNext(l.frame)
}

// StartClock starts elapsed-time tracking under ClockManual.
// Under ClockOnFirstFrame it only matters before the first frame.
func (l *Loop) StartClock() {
	if l.state.Phase == PhaseEnded {
		return
	}
	l.state.StartClock(l.clock.Now())
}

// Resize re-reads the canvas size and clamps every entity into it
func (l *Loop) Resize() {
	w, h := l.canvas.Size()
	l.state.ClampAll(Bounds{Width: w, Height: h})
}

func (l *Loop) frame() {
	if l.state.Phase == PhaseEnded {
		return
	}

	now := l.clock.Now()
	if l.cfg.ClockPolicy == ClockOnFirstFrame {
		l.state.StartClock(now)
	}

	scoreBefore := l.state.Score
	res := Step(l.state, Frame{
		Canvas:     l.canvas,
		Input:      l.input,
		Now:        now,
		Rand:       l.rng,
		ClearAlpha: l.cfg.ClearMode.Alpha(),
	})

	for i, idx := range res.Eliminated {
		l.display.SetScore(scoreBefore + i + 1)
		l.sound.PlayEliminate()
		log.Printf("loop: frame %d ball %d eliminated, hunter radius %.0f", l.state.Frames, idx, l.state.Hunter.Radius)
	}

	if res.Ended {
		l.display.SetTime(l.state.Elapsed, true)
		l.sound.PlayFinish()
		log.Printf("loop: ended after %d frames, score %d, time %.2fs", l.state.Frames, l.state.Score, l.state.Elapsed.Seconds())
		l.doneOnce.Do(func() { close(l.done) })
		return
	}

	if l.state.ClockStarted() {
		l.display.SetTime(l.state.Elapsed, false)
	}
	l.scheduler.ScheduleNext(l.frame)
}

// Done is closed when the loop reaches the ended phase
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// State exposes the simulation state for frontends and tests
func (l *Loop) State() *State {
	return l.state
}

// Phase returns the state machine position
func (l *Loop) Phase() Phase {
	return l.state.Phase
}

// Score returns the number of eliminated balls
func (l *Loop) Score() int {
	return l.state.Score
}

// Elapsed returns the last computed elapsed time, frozen once ended
func (l *Loop) Elapsed() time.Duration {
	return l.state.Elapsed
}

// Frames returns the number of frames stepped
func (l *Loop) Frames() uint64 {
	return l.state.Frames
}
