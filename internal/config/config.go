// Package config provides YAML-based simulation configuration loading
// with embedded defaults and silent fallback.
package config

import (
	"github.com/vovakirdan/forestfire/internal/sim"
)

// Default values, used whenever a setting is missing or unusable.
const (
	DefaultWidth       = 30
	DefaultHeight      = 30
	DefaultProbability = 0.5
	DefaultFireStart   = "15,15"
)

// Config contains all simulation parameters.
type Config struct {
	Width       int     `yaml:"width"`       // grid column count
	Height      int     `yaml:"height"`      // grid row count
	Probability float64 `yaml:"probability"` // per-neighbour ignition chance in [0,1]
	FireStart   string  `yaml:"fire_start"`  // "row,col;row,col;..." ignition points
}

// Normalize replaces out-of-range values with defaults.
// A config problem never reaches the engine as an error.
func (c *Config) Normalize() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Probability < 0 || c.Probability > 1 {
		c.Probability = DefaultProbability
	}
	if c.FireStart == "" {
		c.FireStart = DefaultFireStart
	}
}

// SimConfig converts the loaded settings into an engine config.
// Malformed fire_start entries are dropped by the parser; out-of-range
// ones are left for the engine to skip.
func (c Config) SimConfig() sim.Config {
	return sim.Config{
		Width:         c.Width,
		Height:        c.Height,
		Probability:   c.Probability,
		FirePositions: sim.ParsePositions(c.FireStart),
	}
}
