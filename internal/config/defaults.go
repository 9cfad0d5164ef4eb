package config

import (
	_ "embed"
)

//go:embed defaults/party.yaml
var defaultPartyYAML []byte

// DefaultConfig returns the hardcoded default configuration, used
// when even the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Pacing: PacingConfig{
			SecondsPerMinute: 12,
		},
		UI: UIConfig{
			ShowLattice:      true,
			WarnUnderMinutes: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, useful for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultPartyYAML
}
