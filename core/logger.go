package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls logger construction
// The terminal owns stdout and stderr while running, so logs only ever go to a file
type LogOptions struct {
	Level string // debug|info|warn|error
	File  string // empty disables logging
}

// NewLogger builds a file-backed zerolog logger
// Returns a Nop logger and nil closer when no file is configured
func NewLogger(opts LogOptions) (zerolog.Logger, io.Closer, error) {
	if strings.TrimSpace(opts.File) == "" {
		return zerolog.Nop(), nil, nil
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir %s: %w", dir, err)
		}
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(w).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("app", "vi-console").
		Logger()

	return logger, w, nil
}

// ParseLevel converts a level name, unknown names map to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component derives a sub-logger tagged with a component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
