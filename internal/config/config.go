// Package config provides YAML-based configuration loading for the
// party platform.
package config

// Config holds all platform configuration.
type Config struct {
	Pacing PacingConfig `yaml:"pacing"`
	UI     UIConfig     `yaml:"ui"`
}

// PacingConfig controls how fast the in-world clock runs.
type PacingConfig struct {
	// SecondsPerMinute is how many real seconds one in-world minute
	// takes. The original experience runs at 12.
	SecondsPerMinute int `yaml:"seconds_per_minute"`
}

// UIConfig controls optional presentation features.
type UIConfig struct {
	// ShowLattice renders the frequency star chart in the status
	// area for stories that collect frequencies.
	ShowLattice bool `yaml:"show_lattice"`

	// WarnUnderMinutes is the remaining-time threshold below which
	// the clock display turns urgent and the hero's time warnings
	// start to fire.
	WarnUnderMinutes int `yaml:"warn_under_minutes"`
}

// Normalize clamps nonsensical values back to the defaults.
func (c *Config) Normalize() {
	if c.Pacing.SecondsPerMinute <= 0 {
		c.Pacing.SecondsPerMinute = DefaultConfig().Pacing.SecondsPerMinute
	}
	if c.UI.WarnUnderMinutes < 0 {
		c.UI.WarnUnderMinutes = 0
	}
}
