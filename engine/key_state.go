package engine

import (
	"sync/atomic"
	"time"
)

// KeyState is the shared Input implementation.
// Writers are the frontend event handlers, the frame loop only reads.
//
// With zero hold windows Press/Release behave as key-down/key-up.
// With hold windows a press keeps the direction held until a deadline,
// which suits terminals that only report key repeats and never releases.
// The first press of a hold gets the longer window so it spans the
// terminal's auto-repeat delay; each repeat then extends by the short one.
type KeyState struct {
	held     [directionCount]atomic.Bool
	deadline [directionCount]atomic.Int64 // nanoseconds since epoch

	clock     Clock
	epoch     time.Time
	firstHold time.Duration
	hold      time.Duration
}

// NewKeyState creates a key state with explicit release semantics
func NewKeyState() *KeyState {
	return &KeyState{}
}

// NewLatchedKeyState creates a key state where an initial press lasts for
// firstHold and every repeat while held lasts for hold
func NewLatchedKeyState(clock Clock, firstHold, hold time.Duration) *KeyState {
	return &KeyState{
		clock:     clock,
		epoch:     clock.Now(),
		firstHold: max(firstHold, hold),
		hold:      hold,
	}
}

func (k *KeyState) latched() bool {
	return k.hold > 0
}

func (k *KeyState) now() int64 {
	return int64(k.clock.Now().Sub(k.epoch))
}

// Press marks the direction held
func (k *KeyState) Press(d Direction) {
	if d < 0 || d >= directionCount {
		return
	}
	if k.latched() {
		window := k.hold
		if !k.Held(d) {
			window = k.firstHold
		}
		k.deadline[d].Store(k.now() + int64(window))
	}
	k.held[d].Store(true)
}

// Release marks the direction released
func (k *KeyState) Release(d Direction) {
	if d < 0 || d >= directionCount {
		return
	}
	k.held[d].Store(false)
}

// ReleaseAll clears every direction
func (k *KeyState) ReleaseAll() {
	for d := Direction(0); d < directionCount; d++ {
		k.Release(d)
	}
}

// Held reports whether the direction is currently held
func (k *KeyState) Held(d Direction) bool {
	if d < 0 || d >= directionCount || !k.held[d].Load() {
		return false
	}
	if !k.latched() {
		return true
	}
	return k.now() < k.deadline[d].Load()
}

// AnyHeld reports whether at least one direction is held
func (k *KeyState) AnyHeld() bool {
	for d := Direction(0); d < directionCount; d++ {
		if k.Held(d) {
			return true
		}
	}
	return false
}
