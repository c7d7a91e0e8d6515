package engine

import "sync/atomic"

// FrameScheduler holds at most one pending frame callback.
// The host drives it by calling RunPending once per refresh: the terminal
// binary on its frame ticker, the window frontend inside ebiten's Update,
// and tests by hand for deterministic frame-by-frame stepping.
type FrameScheduler struct {
	pending func()
	runs    atomic.Uint64
}

// NewFrameScheduler creates an idle scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// ScheduleNext replaces the pending callback
func (s *FrameScheduler) ScheduleNext(fn func()) {
	s.pending = fn
}

// Pending reports whether a callback waits for the next refresh
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// RunPending invokes the pending callback, returning false when there was none.
// The callback may schedule the next one.
func (s *FrameScheduler) RunPending() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	s.runs.Add(1)
	fn()
	return true
}

// Runs returns the number of callbacks executed so far
func (s *FrameScheduler) Runs() uint64 {
	return s.runs.Load()
}
