package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/vmath"
)

// ErrCanvasTooSmall is returned when the canvas cannot fit the largest spawnable circle
var ErrCanvasTooSmall = errors.New("canvas too small")

// Phase is the loop state machine position
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "running"
}

// State is everything one run mutates, owned by the frame goroutine
type State struct {
	Balls  []*Ball
	Hunter *Hunter
	Score  int

	Phase   Phase
	Elapsed time.Duration
	Frames  uint64

	clockStarted bool
	startTime    time.Time
}

// NewState spawns cfg.BallCount random balls and a hunter inside width x height
func NewState(cfg *Config, width, height float64, rng *vmath.Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := int(width), int(height)
	if w < 2*cfg.BallMaxRadius || h < 2*cfg.BallMaxRadius ||
		w < 2*constants.HunterSpawnMargin || h < 2*constants.HunterSpawnMargin {
		return nil, errors.Wrapf(ErrCanvasTooSmall, "%dx%d", w, h)
	}

	balls := make([]*Ball, 0, cfg.BallCount)
	for len(balls) < cfg.BallCount {
		radius := rng.IntRange(cfg.BallMinRadius, cfg.BallMaxRadius)
		balls = append(balls, NewBall(
			float64(rng.IntRange(radius, w-radius)),
			float64(rng.IntRange(radius, h-radius)),
			float64(rng.IntRange(cfg.BallMinSpeed, cfg.BallMaxSpeed)),
			float64(rng.IntRange(cfg.BallMinSpeed, cfg.BallMaxSpeed)),
			rng.Color(),
			float64(radius),
		))
	}

	hunter := NewHunter(
		float64(rng.IntRange(constants.HunterSpawnMargin, w-constants.HunterSpawnMargin)),
		float64(rng.IntRange(constants.HunterSpawnMargin, h-constants.HunterSpawnMargin)),
	)

	return &State{Balls: balls, Hunter: hunter}, nil
}

// StartClock starts elapsed-time tracking, later calls are ignored
func (s *State) StartClock(now time.Time) {
	if s.clockStarted {
		return
	}
	s.clockStarted = true
	s.startTime = now
}

// ClockStarted reports whether elapsed time is being tracked
func (s *State) ClockStarted() bool {
	return s.clockStarted
}

// AliveCount returns the number of live balls
func (s *State) AliveCount() int {
	n := 0
	for _, b := range s.Balls {
		if b.Alive {
			n++
		}
	}
	return n
}

// ClampAll pulls every ball and the hunter back inside the bounds
func (s *State) ClampAll(b Bounds) {
	for _, ball := range s.Balls {
		ball.Clamp(b)
	}
	if s.Hunter != nil {
		s.Hunter.Clamp(b)
	}
}
