package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 120 || cfg.Grid.Height != 80 {
		t.Errorf("expected 120x80 reference grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Timing.StepsPerSecond != 3 {
		t.Errorf("expected 3 steps/s, got %d", cfg.Timing.StepsPerSecond)
	}
	if cfg.Defaults.TreeDensity != 0.6 {
		t.Errorf("expected default density 0.6, got %v", cfg.Defaults.TreeDensity)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	custom := []byte("grid:\n  width: 40\n  height: 30\ntiming:\n  steps_per_second: 10\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 30 {
		t.Errorf("expected 40x30 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	// Unset sections normalize to defaults.
	if cfg.Timing.IgniteCells != 3 {
		t.Errorf("expected ignite_cells to normalize to 3, got %d", cfg.Timing.IgniteCells)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing path should error")
	}
}

func TestNormalizeRejectsDegenerateValues(t *testing.T) {
	cfg := Config{}
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.Grid != def.Grid || cfg.Timing != def.Timing {
		t.Errorf("zero config should normalize to defaults, got %+v", cfg)
	}
}
