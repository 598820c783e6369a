// Package config provides configuration state for the san-lint tool.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration for a san-lint run.
type Config struct {
	// Verbosity: 0=errors only, 1=summary, 2=running commentary.
	Verbosity int

	// Canonicalize re-emits every valid token in canonical form.
	Canonicalize bool

	// Strict makes any invalid token fail the whole run.
	Strict bool

	// Workers is the number of parallel decode workers.
	Workers int

	// LineWidth is the maximum output line length for canonical output.
	LineWidth int

	// OutputFile receives canonical output.
	OutputFile io.Writer
}

// NewConfig returns a Config with default settings.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		LineWidth:  80,
		OutputFile: os.Stdout,
	}
}
