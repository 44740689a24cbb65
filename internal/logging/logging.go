// Package logging builds the zerolog loggers used by the CLI and the viewer.
// The viewer owns the terminal, so it logs to a file; plain commands log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configures logger construction.
type Options struct {
	Level   string    // zerolog level name; unparseable values fall back to info.
	File    string    // When set, log lines are appended to this file as JSON.
	Console io.Writer // When set (and File is empty), human-readable output goes here.
}

// nopCloser is returned when no file was opened.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from opts. The returned Closer releases the log file,
// if one was opened. With neither File nor Console set, logs are discarded.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("logging: creating directory for %s: %w", opts.File, err)
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("logging: opening %s: %w", opts.File, err)
		}
		out, closer = f, f
	case opts.Console != nil:
		out = zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// DefaultFile returns the viewer's default log path under the user's state
// directory, falling back to the temp directory when HOME is unknown.
func DefaultFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "tpsearch", "tpsearch.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tpsearch.log")
	}
	return filepath.Join(home, ".local", "state", "tpsearch", "tpsearch.log")
}
