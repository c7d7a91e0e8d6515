package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ball-hunt/constants"
)

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a Clock that only moves when told to.
// Time is kept as an offset from a fixed epoch so readers never lock.
type MockTimeProvider struct {
	epoch  time.Time
	offset atomic.Int64
}

// NewMockTimeProvider creates a mock clock reading startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may be before the start time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.epoch)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceFrames moves the clock forward by n terminal frame intervals
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * constants.FrameUpdateInterval)
}
