package config

import (
	"os"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.LineWidth != 80 {
		t.Errorf("LineWidth = %d, want 80", cfg.LineWidth)
	}
	if cfg.Canonicalize || cfg.Strict {
		t.Error("Canonicalize and Strict should default to false")
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
}
