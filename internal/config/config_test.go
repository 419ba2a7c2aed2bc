package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("expected frame rate %d, got %d", DefaultFrameRate, cfg.FrameRate)
	}
	if cfg.Pendulums != 1 {
		t.Errorf("expected 1 initial pendulum, got %d", cfg.Pendulums)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"zero substeps", func(c *Config) { c.Substeps = 0 }},
		{"negative trail capacity", func(c *Config) { c.TrailCapacity = -1 }},
		{"negative max pendulums", func(c *Config) { c.MaxPendulums = -1 }},
		{"zero initial pendulums", func(c *Config) { c.Pendulums = 0 }},
		{"initial count above cap", func(c *Config) { c.MaxPendulums = 2; c.Pendulums = 3 }},
		{"zero length", func(c *Config) { c.Physics.Length1 = 0 }},
		{"negative mass", func(c *Config) { c.Physics.Mass2 = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pendulab.yaml")

	cfg := DefaultConfig()
	cfg.Pendulums = 3
	cfg.Physics.Gravity = 1.62
	cfg.Theme = "magenta"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Pendulums != 3 {
		t.Errorf("expected 3 pendulums, got %d", loaded.Pendulums)
	}
	if loaded.Physics.Gravity != 1.62 {
		t.Errorf("expected gravity 1.62, got %g", loaded.Physics.Gravity)
	}
	if loaded.Theme != "magenta" {
		t.Errorf("expected theme magenta, got %s", loaded.Theme)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	// Only override one key; everything else keeps its default.
	if err := os.WriteFile(path, []byte("trail_capacity: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TrailCapacity != 42 {
		t.Errorf("expected trail capacity 42, got %d", cfg.TrailCapacity)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("expected default frame rate, got %d", cfg.FrameRate)
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestPresets(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}

	if GetPreset("moon") == nil {
		t.Error("expected moon preset")
	}
	if GetPreset("nope") != nil {
		t.Error("expected nil for unknown preset")
	}
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets length mismatch")
	}
}
