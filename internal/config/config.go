// Package config holds the startup configuration: frame pacing,
// integrator subdivision, trail capacity, physical parameters, and
// presentation options. It is read once at startup and passed into
// simulation construction; nothing reloads it at runtime.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate     = 60
	DefaultSubsteps      = 4
	DefaultTrailCapacity = 100
	DefaultMaxPendulums  = 64
)

type Config struct {
	FrameRate     int     `yaml:"frame_rate"`
	Substeps      int     `yaml:"substeps"`
	TrailCapacity int     `yaml:"trail_capacity"`
	MaxPendulums  int     `yaml:"max_pendulums"` // 0 = unlimited
	Pendulums     int     `yaml:"pendulums"`     // initial count
	ShowTrails    bool    `yaml:"show_trails"`
	Seed          int64   `yaml:"seed"` // 0 = time-based
	Theme         string  `yaml:"theme"`
	Physics       Physics `yaml:"physics"`
}

type Physics struct {
	Length1 float64 `yaml:"length1"`
	Length2 float64 `yaml:"length2"`
	Mass1   float64 `yaml:"mass1"`
	Mass2   float64 `yaml:"mass2"`
	Gravity float64 `yaml:"gravity"`
}

func DefaultConfig() *Config {
	return &Config{
		FrameRate:     DefaultFrameRate,
		Substeps:      DefaultSubsteps,
		TrailCapacity: DefaultTrailCapacity,
		MaxPendulums:  DefaultMaxPendulums,
		Pendulums:     1,
		ShowTrails:    true,
		Theme:         "cyan",
		Physics: Physics{
			Length1: 1.0,
			Length2: 1.0,
			Mass1:   1.0,
			Mass2:   1.0,
			Gravity: 9.81,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FrameRate < 1 {
		return fmt.Errorf("frame_rate must be >= 1, got %d", c.FrameRate)
	}
	if c.Substeps < 1 {
		return fmt.Errorf("substeps must be >= 1, got %d", c.Substeps)
	}
	if c.TrailCapacity < 0 {
		return fmt.Errorf("trail_capacity must be >= 0, got %d", c.TrailCapacity)
	}
	if c.MaxPendulums < 0 {
		return fmt.Errorf("max_pendulums must be >= 0, got %d", c.MaxPendulums)
	}
	if c.Pendulums < 1 {
		return fmt.Errorf("pendulums must be >= 1, got %d", c.Pendulums)
	}
	if c.MaxPendulums > 0 && c.Pendulums > c.MaxPendulums {
		return fmt.Errorf("pendulums (%d) exceeds max_pendulums (%d)", c.Pendulums, c.MaxPendulums)
	}
	p := c.Physics
	if p.Length1 <= 0 || p.Length2 <= 0 {
		return fmt.Errorf("lengths must be positive (length1=%g, length2=%g)", p.Length1, p.Length2)
	}
	if p.Mass1 <= 0 || p.Mass2 <= 0 {
		return fmt.Errorf("masses must be positive (mass1=%g, mass2=%g)", p.Mass1, p.Mass2)
	}
	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("gravity must be finite")
	}
	return nil
}
