// Package logging builds the zerolog logger used by the pathgraph CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pathgraph/internal/config"
)

// New returns a logger writing to w at the configured level, either as
// JSON lines or in zerolog's human-readable console format.
func New(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
