package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pacing.SecondsPerMinute != 12 {
		t.Errorf("SecondsPerMinute = %d, want 12", cfg.Pacing.SecondsPerMinute)
	}
	if !cfg.UI.ShowLattice {
		t.Error("ShowLattice should default to true")
	}
	if cfg.UI.WarnUnderMinutes != 5 {
		t.Errorf("WarnUnderMinutes = %d, want 5", cfg.UI.WarnUnderMinutes)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	cfg.Normalize()

	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultConfig())
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := Config{
		Pacing: PacingConfig{SecondsPerMinute: 0},
		UI:     UIConfig{WarnUnderMinutes: -3},
	}
	cfg.Normalize()

	if cfg.Pacing.SecondsPerMinute != 12 {
		t.Errorf("SecondsPerMinute not clamped: %d", cfg.Pacing.SecondsPerMinute)
	}
	if cfg.UI.WarnUnderMinutes != 0 {
		t.Errorf("WarnUnderMinutes not clamped: %d", cfg.UI.WarnUnderMinutes)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party.yaml")
	data := []byte("pacing:\n  seconds_per_minute: 3\nui:\n  show_lattice: false\n  warn_under_minutes: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pacing.SecondsPerMinute != 3 {
		t.Errorf("SecondsPerMinute = %d, want 3", cfg.Pacing.SecondsPerMinute)
	}
	if cfg.UI.ShowLattice {
		t.Error("ShowLattice should be false from the custom file")
	}
	if cfg.UI.WarnUnderMinutes != 2 {
		t.Errorf("WarnUnderMinutes = %d, want 2", cfg.UI.WarnUnderMinutes)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil {
		t.Error("Load() with an explicit missing path should fail")
	}
}

func TestLoadPartialCustomConfigNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "party.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  show_lattice: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	// Unset pacing falls back to the default rather than zero.
	if cfg.Pacing.SecondsPerMinute != 12 {
		t.Errorf("SecondsPerMinute = %d, want normalized default 12", cfg.Pacing.SecondsPerMinute)
	}
}
