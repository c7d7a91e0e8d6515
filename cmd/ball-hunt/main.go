package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/ball-hunt/audio"
	"github.com/lixenwraith/ball-hunt/constants"
	"github.com/lixenwraith/ball-hunt/core"
	"github.com/lixenwraith/ball-hunt/engine"
	"github.com/lixenwraith/ball-hunt/render"
)

var (
	trailFlag = flag.Bool("trail", false, "Leave fading motion trails instead of clearing each frame")
	clockFlag = flag.String("clock", "", "Clock policy: first-frame, manual (start on first movement key)")
	seedFlag  = flag.Int64("seed", 0, "Random seed, 0 for time-based")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/")
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
		fmt.Fprintf(os.Stderr, "ball-hunt: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies command-line overrides on top of the environment
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

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	// Audio is optional, the hunt runs silent when the device is unavailable
	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.AudioEnabled, cfg.MasterVolume))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: init failed, continuing without sound: %v", err)
	}
	defer sound.Cleanup()

	clock := engine.NewMonotonicTimeProvider()
	keys := engine.NewLatchedKeyState(clock, constants.KeyFirstHoldWindow, constants.KeyHoldWindow)
	status := render.NewStatusDisplay()
	cols, rows := screen.Size()
	canvas := render.NewTerminalCanvas(cols, rows, status)
	sched := engine.NewFrameScheduler()

	loop, err := engine.NewLoop(cfg, engine.Deps{
		Canvas:    canvas,
		Input:     keys,
		Clock:     clock,
		Display:   status,
		Scheduler: sched,
		Sound:     sound,
	})
	if err != nil {
		return err
	}
	loop.Start()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	done := loop.Done()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if render.IsQuitKey(ev) {
					log.Printf("quit: phase=%s score=%d frames=%d", loop.Phase(), loop.Score(), loop.Frames())
					return nil
				}
				if dir, ok := render.DirectionForKey(ev); ok {
					keys.Press(dir)
					if cfg.ClockPolicy == engine.ClockManual {
						loop.StartClock()
					}
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				canvas.Resize(cols, rows)
				loop.Resize()
				screen.Sync()
			}

		case <-ticker.C:
			sched.RunPending()
			canvas.Flush(screen)

		case <-done:
			// Final frame stays on screen until a quit key
			log.Printf("hunt finished in %s", loop.Elapsed())
			done = nil
		}
	}
}
