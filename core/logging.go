package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OpenLog routes the std logger into dir/name, rotating the existing file
// aside once it grows past maxSize. Each run gets a short id prefix so
// interleaved runs can be told apart.
func OpenLog(dir, name string, maxSize int64) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		ext := filepath.Ext(name)
		rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(name, ext), time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, filepath.Join(dir, rotated)); err != nil {
			return nil, errors.Wrap(err, "rotate log file")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))
	return f, nil
}

// DiscardLog silences the std logger
func DiscardLog() {
	log.SetOutput(io.Discard)
	log.SetPrefix("")
}
