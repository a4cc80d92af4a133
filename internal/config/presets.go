package config

// Preset names a canned propagation-probability setting.
type Preset string

const (
	PresetNone    Preset = ""
	PresetDamp    Preset = "damp"
	PresetNormal  Preset = "normal"
	PresetDry     Preset = "dry"
	PresetInferno Preset = "inferno"
)

// ParsePreset maps a CLI string to a preset. Unknown values mean no preset.
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetDamp, PresetNormal, PresetDry, PresetInferno:
		return Preset(s)
	default:
		return PresetNone
	}
}

// ApplyPreset overrides the propagation probability for the given preset.
// PresetNone leaves the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetDamp:
		cfg.Probability = 0.3
	case PresetNormal:
		cfg.Probability = 0.5
	case PresetDry:
		cfg.Probability = 0.7
	case PresetInferno:
		cfg.Probability = 1.0
	}
}
