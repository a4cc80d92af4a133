package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fire.yaml")
	data := []byte("width: 10\nheight: 12\nprobability: 0.75\nfire_start: \"0,0;5,5\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load(path)
	if cfg.Width != 10 || cfg.Height != 12 {
		t.Errorf("Dimensions = %dx%d, want 12x10", cfg.Height, cfg.Width)
	}
	if cfg.Probability != 0.75 {
		t.Errorf("Probability = %v, want 0.75", cfg.Probability)
	}
	if cfg.FireStart != "0,0;5,5" {
		t.Errorf("FireStart = %q, want \"0,0;5,5\"", cfg.FireStart)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.forestfire out of the search path

	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	want := DefaultConfig()
	if cfg != want {
		t.Errorf("Load with missing file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadUnparsableFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load(path)
	if cfg != DefaultConfig() {
		t.Errorf("Load with broken file = %+v, want defaults", cfg)
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cases := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero dimensions",
			in:   Config{Width: 0, Height: -3, Probability: 0.4, FireStart: "1,1"},
			want: Config{Width: DefaultWidth, Height: DefaultHeight, Probability: 0.4, FireStart: "1,1"},
		},
		{
			name: "probability above one",
			in:   Config{Width: 5, Height: 5, Probability: 1.5, FireStart: "1,1"},
			want: Config{Width: 5, Height: 5, Probability: DefaultProbability, FireStart: "1,1"},
		},
		{
			name: "negative probability",
			in:   Config{Width: 5, Height: 5, Probability: -0.1, FireStart: "1,1"},
			want: Config{Width: 5, Height: 5, Probability: DefaultProbability, FireStart: "1,1"},
		},
		{
			name: "empty fire_start",
			in:   Config{Width: 5, Height: 5, Probability: 0.5},
			want: Config{Width: 5, Height: 5, Probability: 0.5, FireStart: DefaultFireStart},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.in.Normalize()
			if c.in != c.want {
				t.Errorf("Normalize() = %+v, want %+v", c.in, c.want)
			}
		})
	}
}

func TestSimConfigDropsMalformedPositions(t *testing.T) {
	cfg := Config{Width: 8, Height: 8, Probability: 0.5, FireStart: "1,1;bad;2"}

	sc := cfg.SimConfig()
	if len(sc.FirePositions) != 1 {
		t.Fatalf("FirePositions = %v, want one entry", sc.FirePositions)
	}
	if sc.FirePositions[0].Row != 1 || sc.FirePositions[0].Col != 1 {
		t.Errorf("FirePositions[0] = %v, want (1,1)", sc.FirePositions[0])
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset Preset
		want   float64
	}{
		{PresetDamp, 0.3},
		{PresetNormal, 0.5},
		{PresetDry, 0.7},
		{PresetInferno, 1.0},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		cfg.Probability = 0.123
		ApplyPreset(&cfg, c.preset)
		if cfg.Probability != c.want {
			t.Errorf("ApplyPreset(%q) probability = %v, want %v", c.preset, cfg.Probability, c.want)
		}
	}

	cfg := DefaultConfig()
	cfg.Probability = 0.123
	ApplyPreset(&cfg, PresetNone)
	if cfg.Probability != 0.123 {
		t.Error("PresetNone should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("dry") != PresetDry {
		t.Error("ParsePreset(\"dry\") should return PresetDry")
	}
	if ParsePreset("bogus") != PresetNone {
		t.Error("Unknown preset strings should map to PresetNone")
	}
}
