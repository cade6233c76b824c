package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Bodies) != 2 {
		t.Errorf("default bodies = %d, want 2", len(cfg.Bodies))
	}
	if cfg.Step().Milliseconds() != DefaultStepMillis {
		t.Errorf("step = %v, want %dms", cfg.Step(), DefaultStepMillis)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero step", func(c *Config) { c.StepMillis = 0 }, true},
		{"negative warp", func(c *Config) { c.TimeWarp = -2 }, true},
		{"no bodies", func(c *Config) { c.Bodies = nil }, true},
		{"zero mass", func(c *Config) { c.Bodies[0].Mass = "0" }, true},
		{"negative mass", func(c *Config) { c.Bodies[0].Mass = "-7.35e22" }, true},
		{"unparseable mass", func(c *Config) { c.Bodies[0].Mass = "heavy" }, true},
		{"unparseable velocity", func(c *Config) { c.Bodies[1].Velocity[0] = "fast" }, true},
		{"bad scale base", func(c *Config) { c.ScaleBase = "x" }, true},
		{"high warp ok", func(c *Config) { c.TimeWarp = 1024 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	orig := DefaultConfig()
	orig.Scenario = "roundtrip"
	orig.TimeWarp = 16
	orig.Bodies[1].Mass = "7.349e22"

	if err := Save(path, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Scenario != "roundtrip" {
		t.Errorf("scenario = %q, want %q", loaded.Scenario, "roundtrip")
	}
	if loaded.TimeWarp != 16 {
		t.Errorf("time_warp = %g, want 16", loaded.TimeWarp)
	}
	if len(loaded.Bodies) != 2 || loaded.Bodies[1].Mass != "7.349e22" {
		t.Errorf("bodies did not round-trip: %+v", loaded.Bodies)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}
