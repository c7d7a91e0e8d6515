package constants

import "time"

// Audio device
const (
	AudioSampleRate = 48000
	AudioBufferSize = 100 * time.Millisecond
)

// Eliminate Sound Timing
const (
	EliminateSoundDuration = 250 * time.Millisecond
	EliminateSoundAttack   = 5 * time.Millisecond
	EliminateSoundRelease  = 200 * time.Millisecond
)

// Finish Sound Timing
const (
	FinishSoundNote1Duration = 120 * time.Millisecond
	FinishSoundNote2Duration = 400 * time.Millisecond
	FinishSoundAttack        = 5 * time.Millisecond
	FinishSoundNote1Release  = 60 * time.Millisecond
	FinishSoundNote2Release  = 300 * time.Millisecond
)
