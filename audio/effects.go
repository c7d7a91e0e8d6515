package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ball-hunt/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// at returns the wave value for a phase in [0, 1)
func (w WaveType) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator streams a fixed-length tone
type oscillator struct {
	wave      WaveType
	step      float64 // phase increment per sample
	phase     float64
	remaining int
}

// NewOscillator creates a tone of the given frequency and length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for n = range samples {
		if o.remaining == 0 {
			return n, n > 0
		}
		v := o.wave.at(o.phase)
		samples[n] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain is the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with a linear volume; math.Log2(0) is -Inf so 0 means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEliminateSound generates a short bell with an octave overtone
func CreateEliminateSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(880.0, constants.EliminateSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.EliminateSoundDuration, constants.EliminateSoundAttack, constants.EliminateSoundRelease, rate)

	over := NewOscillator(1760.0, constants.EliminateSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.EliminateSoundDuration, constants.EliminateSoundAttack, constants.EliminateSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundEliminate]*cfg.MasterVolume)
}

// CreateFinishSound generates a rising two-note chime
func CreateFinishSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then B5
	n1 := NewOscillator(659.25, constants.FinishSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.FinishSoundNote1Duration, constants.FinishSoundAttack, constants.FinishSoundNote1Release, rate)

	n2 := NewOscillator(987.77, constants.FinishSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.FinishSoundNote2Duration, constants.FinishSoundAttack, constants.FinishSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[SoundFinish]*cfg.MasterVolume)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEliminate:
		return CreateEliminateSound(cfg)
	case SoundFinish:
		return CreateFinishSound(cfg)
	default:
		return nil
	}
}
