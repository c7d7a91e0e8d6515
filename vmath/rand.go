package vmath

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ball-hunt/core"
)

// ErrInvalidRange is returned when a range sampler is called with min > max
var ErrInvalidRange = errors.New("invalid range")

// Rand is a xorshift64 generator, not safe for concurrent use.
// The simulation owns one instance and only touches it from the frame goroutine.
type Rand struct {
	state uint64
}

// NewRand creates a generator. Seed 0 picks a time-based seed.
func NewRand(seed int64) *Rand {
	s := uint64(seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	if s == 0 {
		s = 1
	}
	return &Rand{state: s}
}

// Next returns the next raw 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// CheckedIntRange returns an integer uniformly sampled from the closed interval [min, max]
func (r *Rand) CheckedIntRange(min, max int) (int, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "min %d > max %d", min, max)
	}
	return min + r.Intn(max-min+1), nil
}

// IntRange is CheckedIntRange for ranges known to be valid; it panics otherwise
func (r *Rand) IntRange(min, max int) int {
	v, err := r.CheckedIntRange(min, max)
	if err != nil {
		panic(err)
	}
	return v
}

// Color returns an RGB triple with each channel uniform over [0, 255]
func (r *Rand) Color() core.RGB {
	return core.RGB{
		R: uint8(r.IntRange(0, 255)),
		G: uint8(r.IntRange(0, 255)),
		B: uint8(r.IntRange(0, 255)),
	}
}
