package config

import (
	_ "embed"
)

//go:embed defaults/wildfire.yaml
var defaultWildfireYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last fallback when no YAML source is available.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  120,
			Height: 80,
		},
		Timing: TimingConfig{
			StepsPerSecond: 3,
			IgniteCells:    3,
		},
		Defaults: DefaultsConfig{
			TreeDensity: 0.6,
			WindDir:     0,
			WindStr:     0.5,
			Moisture:    0.2,
			Temperature: 25,
		},
	}
}
