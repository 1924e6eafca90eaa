// Package logging builds the zerolog logger shared by the command line drivers.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"spiders/internal/config"
)

// New returns a logger writing to w at the configured level and format.
// An unknown level falls back to warn.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Component scopes a logger to one part of the tool.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
