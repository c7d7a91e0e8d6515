package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/ball-hunt/core"
)

const (
	logDir      = "logs"
	logFileName = "ball-hunt-window.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging sends the std logger to logs/ in debug mode and discards it otherwise.
// Keeps the console quiet unless debugging.
func setupLogging(debug bool) *os.File {
	if !debug {
		core.DiscardLog()
		return nil
	}
	f, err := core.OpenLog(logDir, logFileName, maxLogSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		core.DiscardLog()
		return nil
	}
	return f
}
