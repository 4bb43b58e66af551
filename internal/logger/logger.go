// Package logger writes structured JSON logs to a file. The terminal belongs
// to the TUI, so nothing is ever logged to stdout or stderr.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const FileName = "luckywheel.log"

type Config struct {
	// Dir is the directory the log file is created in.
	Dir   string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup opens the log file and installs the logger as both L() and the slog
// default. The returned cleanup closes the file and restores discarding.
func Setup(cfg Config) (func() error, error) {
	dir := filepath.Clean(cfg.Dir)
	if cfg.Dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	l := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()
	slog.SetDefault(l)

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		mu.Unlock()
		setDiscard()
		return cerr
	}
	return cleanup, nil
}

// Discard routes all logging, including the slog default, to io.Discard.
func Discard() {
	setDiscard()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the open log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setDiscard() {
	d := discard()
	mu.Lock()
	global = d
	logFile = nil
	logPath = ""
	mu.Unlock()
	slog.SetDefault(d)
}
