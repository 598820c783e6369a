// san-lint validates and canonicalizes SAN move tokens from movetext
// streams. It reads whitespace-separated tokens from files or stdin,
// skips move numbers and game results, and decodes each remaining token
// as a SAN move.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/unchess/sanmove/internal/config"
	"github.com/unchess/sanmove/internal/logx"
	"github.com/unchess/sanmove/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("san-lint version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	log := logx.NewLogger(cfg.Verbosity)

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *outputFile).Msg("cannot create output file")
		}
		defer file.Close()
		cfg.OutputFile = file
	}

	var tw *output.TokenWriter
	if cfg.Canonicalize {
		tw = output.NewTokenWriter(cfg.OutputFile, cfg.LineWidth)
	}

	stats := &Stats{}
	failed := false

	inputs := flag.Args()
	if len(inputs) == 0 {
		if err := processReader(os.Stdin, "stdin", cfg, log, tw, stats); err != nil {
			failed = true
		}
	}
	for _, path := range inputs {
		if failed && cfg.Strict {
			break
		}
		if err := processInput(path, cfg, log, tw, stats); err != nil {
			failed = true
		}
	}

	if tw != nil {
		if err := tw.Close(); err != nil {
			log.Fatal().Err(err).Msg("cannot flush output")
		}
	}

	if cfg.Verbosity >= 1 {
		log.Info().
			Int("tokens", stats.Tokens).
			Int("moves", stats.Moves).
			Int("skipped", stats.Skipped).
			Int("invalid", stats.Invalid).
			Msg("done")
	}

	if failed || (cfg.Strict && stats.Invalid > 0) {
		os.Exit(1)
	}
}

// processInput opens one input path and runs the token processor on it.
func processInput(path string, cfg *config.Config, log zerolog.Logger, tw *output.TokenWriter, stats *Stats) error {
	in, err := openInput(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("cannot open input")
		return err
	}
	defer in.Close()
	return processReader(in, path, cfg, log, tw, stats)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: san-lint [options] [file ...]\n\n")
	fmt.Fprintf(os.Stderr, "Validates SAN move tokens from files (optionally gzipped) or stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
