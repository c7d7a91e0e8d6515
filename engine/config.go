package engine

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/ball-hunt/constants"
)

// ClearMode selects how each frame erases the previous one
type ClearMode int

const (
	// ClearOpaque paints the background fully every frame
	ClearOpaque ClearMode = iota
	// ClearTrail paints a translucent background, leaving fading motion trails
	ClearTrail
)

// Alpha returns the background fill opacity for the mode
func (m ClearMode) Alpha() float64 {
	if m == ClearTrail {
		return constants.ClearAlphaTrail
	}
	return constants.ClearAlphaOpaque
}

func (m ClearMode) String() string {
	if m == ClearTrail {
		return "trail"
	}
	return "opaque"
}

// ParseClearMode accepts "opaque" or "trail"
func ParseClearMode(s string) (ClearMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "opaque", "":
		return ClearOpaque, nil
	case "trail", "trails":
		return ClearTrail, nil
	default:
		return ClearOpaque, errors.Errorf("unknown clear mode %q", s)
	}
}

// ClockPolicy selects when the elapsed-time clock starts
type ClockPolicy int

const (
	// ClockOnFirstFrame starts the clock on the first scheduled frame
	ClockOnFirstFrame ClockPolicy = iota
	// ClockManual leaves the clock unstarted until Loop.StartClock
	ClockManual
)

func (p ClockPolicy) String() string {
	if p == ClockManual {
		return "manual"
	}
	return "first-frame"
}

// ParseClockPolicy accepts "first-frame" or "manual"
func ParseClockPolicy(s string) (ClockPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-frame", "first", "":
		return ClockOnFirstFrame, nil
	case "manual":
		return ClockManual, nil
	default:
		return ClockOnFirstFrame, errors.Errorf("unknown clock policy %q", s)
	}
}

// Config holds the tunables for one run
type Config struct {
	BallCount     int
	BallMinRadius int
	BallMaxRadius int
	BallMinSpeed  int
	BallMaxSpeed  int

	ClearMode   ClearMode
	ClockPolicy ClockPolicy

	// Seed 0 means time-based
	Seed int64

	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		BallCount:     constants.BallCount,
		BallMinRadius: constants.BallMinRadius,
		BallMaxRadius: constants.BallMaxRadius,
		BallMinSpeed:  constants.BallMinSpeed,
		BallMaxSpeed:  constants.BallMaxSpeed,
		ClearMode:     ClearOpaque,
		ClockPolicy:   ClockOnFirstFrame,
		AudioEnabled:  true,
		MasterVolume:  0.5,
	}
}

// Environment variable names read by LoadConfig
const (
	EnvClearMode = "BALL_HUNT_CLEAR_MODE"
	EnvClock     = "BALL_HUNT_CLOCK"
	EnvSeed      = "BALL_HUNT_SEED"
	EnvAudio     = "BALL_HUNT_AUDIO"
	EnvVolume    = "BALL_HUNT_VOLUME"
)

// LoadConfig overlays environment variables on the defaults
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvClearMode); v != "" {
		mode, err := ParseClearMode(v)
		if err != nil {
			return nil, errors.Wrap(err, EnvClearMode)
		}
		cfg.ClearMode = mode
	}

	if v := os.Getenv(EnvClock); v != "" {
		policy, err := ParseClockPolicy(v)
		if err != nil {
			return nil, errors.Wrap(err, EnvClock)
		}
		cfg.ClockPolicy = policy
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s=%q", EnvSeed, v)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvAudio); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s=%q", EnvAudio, v)
		}
		cfg.AudioEnabled = enabled
	}

	// Master volume is given as 0-100
	if v := os.Getenv(EnvVolume); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "%s=%q", EnvVolume, v)
		}
		cfg.MasterVolume = float64(min(max(vol, 0), 100)) / 100.0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges used to spawn balls
func (c *Config) Validate() error {
	if c.BallCount <= 0 {
		return errors.Errorf("ball count must be positive, got %d", c.BallCount)
	}
	if c.BallMinRadius <= 0 || c.BallMinRadius > c.BallMaxRadius {
		return errors.Errorf("invalid ball radius range [%d, %d]", c.BallMinRadius, c.BallMaxRadius)
	}
	if c.BallMinSpeed > c.BallMaxSpeed {
		return errors.Errorf("invalid ball speed range [%d, %d]", c.BallMinSpeed, c.BallMaxSpeed)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return errors.Errorf("master volume %.2f outside [0, 1]", c.MasterVolume)
	}
	return nil
}
