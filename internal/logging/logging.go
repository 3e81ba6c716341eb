// Package logging configures the process logger. Diagnostics go to stderr
// through zerolog's console writer; user-facing output is owned by
// internal/display and never routed through the logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns the run logger writing human-readable lines to out.
// Verbose lowers the level to debug.
func Setup(verbose bool, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
