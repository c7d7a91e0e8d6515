package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ball-hunt/audio"
	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/engine"
	"github.com/lixenwraith/ball-hunt/window"
)

var (
	widthFlag  = flag.Int("width", 960, "Window width in pixels")
	heightFlag = flag.Int("height", 640, "Window height in pixels")
	trailFlag  = flag.Bool("trail", false, "Leave fading motion trails instead of clearing each frame")
	clockFlag  = flag.String("clock", "", "Clock policy: first-frame, manual (start on first movement key)")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 for time-based")
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ball-hunt-window: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*engine.Config, error) {
	cfg, err := engine.LoadConfig()
	if err != nil {
		return nil, err
	}
	if *trailFlag {
		cfg.ClearMode = engine.ClearTrail
	}
	if *clockFlag != "" {
		policy, err := engine.ParseClockPolicy(*clockFlag)
		if err != nil {
			return nil, err
		}
		cfg.ClockPolicy = policy
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.AudioEnabled = false
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.AudioEnabled, cfg.MasterVolume))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: init failed, continuing without sound: %v", err)
	}
	defer sound.Cleanup()

	game, err := window.NewGame(cfg, sound, *widthFlag, *heightFlag)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Ball Hunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constants.WindowTPS)

	// Esc returns ebiten.Termination, which RunGame reports as nil
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	log.Printf("window closed: phase=%s score=%d", game.Loop().Phase(), game.Loop().Score())
	return nil
}
