// Package logging builds the diagnostic logger used by notesexport.
//
// Diagnostics are separate from command output: results and user-facing
// errors go through output.Printer, while the logger only traces what the
// tool did (scripts run, files written) and stays quiet unless --verbose
// or NOTESEXPORT_DEBUG is set.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Debug enables debug level;
// otherwise only warnings and errors are emitted.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// WithContext attaches logger to ctx for retrieval with FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx. When none is stored it
// returns a disabled logger, so callers never need a nil check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
