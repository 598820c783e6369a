// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/unchess/sanmove/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file for canonical tokens (default: stdout)")
	canonical  = flag.Bool("c", false, "Emit the canonical form of every valid token")
	lineWidth  = flag.Int("w", 80, "Maximum output line length")

	// Processing options
	strict  = flag.Bool("strict", false, "Stop at the first invalid token and exit non-zero")
	workers = flag.Int("workers", 1, "Number of parallel decode workers")

	// Reporting options
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors only, 1=summary, 2=per-token")
	quiet     = flag.Bool("q", false, "Suppress the summary (same as -v 0)")

	help    = flag.Bool("help", false, "Show usage information")
	version = flag.Bool("version", false, "Show version information")
)

// applyFlags copies parsed flag values into the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Canonicalize = *canonical
	cfg.Strict = *strict
	cfg.Workers = *workers
	cfg.LineWidth = *lineWidth
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}
