package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.forestfire/config.yaml -> ./configs/forestfire.yaml -> embedded default.
// Any missing or unreadable source falls through to the next; the result
// is always a fully-populated config, never an error. Even an explicit
// customPath that cannot be read degrades to defaults — the engine has
// no config failure surface.
func Load(customPath string) Config {
	var cfg Config

	if customPath != "" {
		if data, err := os.ReadFile(customPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg
			}
		}
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg
			}
		}
	}

	if data, err := os.ReadFile("configs/forestfire.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".forestfire", filename)
}
