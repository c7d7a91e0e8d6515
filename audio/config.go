package audio

import "github.com/lixenwraith/ball-hunt/constants"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundEliminate: 0.6,
			SoundFinish:    0.8,
		},
	}
}

// NewAudioConfig builds a config from the run settings
func NewAudioConfig(enabled bool, masterVolume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(max(masterVolume, 0), 1)
	return cfg
}
