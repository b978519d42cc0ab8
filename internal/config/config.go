// Package config provides YAML-based configuration loading for the wildfire
// simulator: grid dimensions, simulation cadence, and default environment
// parameters.
package config

// Config contains all tunables read at startup.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Timing   TimingConfig   `yaml:"timing"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// GridConfig defines the landscape dimensions used for headless runs.
// The interactive driver sizes the grid to the terminal instead.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines simulation cadence and ignition behavior.
type TimingConfig struct {
	StepsPerSecond int `yaml:"steps_per_second"` // auto-play speed
	IgniteCells    int `yaml:"ignite_cells"`     // trees lit per lightning strike
}

// DefaultsConfig holds the initial environment parameters.
type DefaultsConfig struct {
	TreeDensity float64 `yaml:"tree_density"`
	WindDir     float64 `yaml:"wind_dir"`
	WindStr     float64 `yaml:"wind_str"`
	Moisture    float64 `yaml:"moisture"`
	Temperature float64 `yaml:"temperature"`
}

// Normalize replaces structurally invalid values with defaults instead of
// erroring; parameter ranges are enforced by the simulation's setters.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Grid.Width < 1 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height < 1 {
		c.Grid.Height = def.Grid.Height
	}
	if c.Timing.StepsPerSecond < 1 {
		c.Timing.StepsPerSecond = def.Timing.StepsPerSecond
	}
	if c.Timing.IgniteCells < 1 {
		c.Timing.IgniteCells = def.Timing.IgniteCells
	}
}
