package config

import (
	_ "embed"
)

//go:embed defaults/forestfire.yaml
var defaultYAML []byte

// DefaultConfig returns the default simulation configuration.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Probability: DefaultProbability,
		FireStart:   DefaultFireStart,
	}
}
