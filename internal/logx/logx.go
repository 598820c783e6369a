// Package logx configures the shared zerolog logger for command-line tools.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog logger writing console output to stderr.
// Verbosity 0 logs warnings and above, 1 adds info, 2 adds debug.
func NewLogger(verbosity int) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}
