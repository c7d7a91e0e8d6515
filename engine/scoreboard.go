package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/ball-hunt/constants"
)

// Scoreboard is a Display that keeps the formatted HUD texts.
// Frontends embed it and draw Texts() their own way.
type Scoreboard struct {
	mu    sync.RWMutex
	score string
	time  string
	final bool
}

var _ Display = (*Scoreboard)(nil)

// SetScore formats the score text
func (s *Scoreboard) SetScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = fmt.Sprintf(constants.ScoreFormat, score)
}

// SetTime formats the running or final time text
func (s *Scoreboard) SetTime(elapsed time.Duration, final bool) {
	format := constants.TimeFormat
	if final {
		format = constants.FinalTimeFormat
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.time = fmt.Sprintf(format, elapsed.Seconds())
	s.final = final
}

// Texts returns the current score and time texts
func (s *Scoreboard) Texts() (score, elapsed string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score, s.time
}

// Final reports whether the time text is the frozen final time
func (s *Scoreboard) Final() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.final
}
