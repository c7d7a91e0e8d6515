package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/engine"
)

// SoundManager plays gameplay cues through the speaker.
// Every Play method is a silent no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

var _ engine.SoundPlayer = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; disabled configs stay silent without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferSize)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayEliminate plays the catch bell
func (sm *SoundManager) PlayEliminate() {
	_ = sm.Play(SoundEliminate)
}

// PlayFinish plays the end-of-game chime
func (sm *SoundManager) PlayFinish() {
	_ = sm.Play(SoundFinish)
}

// Play queues a sound on the mixer
func (sm *SoundManager) Play(t SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		log.Printf("audio: no effect for sound type %d", t)
		return errors.Errorf("unknown sound type %d", t)
	}
	sm.played[t]++
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Played returns how many times the sound type was queued
func (sm *SoundManager) Played(t SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return sm.played[t]
}
