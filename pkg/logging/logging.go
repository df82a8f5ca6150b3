// Package logging sets up the file-backed structured logger. The TUI owns
// stdout/stderr while it runs, so all diagnostics go to a log file under
// the config directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Options for logger construction.
type Options struct {
	Level  string // debug, info, warn, error
	Path   string // log file path; empty discards output
	Pretty bool   // console-style formatting instead of JSON
}

// New creates a logger writing to the configured file. The returned close
// function flushes and closes the file and is safe to call once at exit.
func New(opts Options) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}

// OverlayLogger adapts a zerolog.Logger to the overlay coordinator's
// diagnostic interface.
type OverlayLogger struct {
	L zerolog.Logger
}

func (o OverlayLogger) Debugf(format string, args ...any) {
	o.L.Debug().Msgf(format, args...)
}
