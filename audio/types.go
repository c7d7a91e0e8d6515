package audio

import "github.com/pkg/errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEliminate SoundType = iota // Hunter caught a ball
	SoundFinish                     // Last ball caught
	soundTypeCount
)

// ErrNotInitialized is returned when playback is requested before Initialize
var ErrNotInitialized = errors.New("audio not initialized")
