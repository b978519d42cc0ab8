// wildfire is a terminal wildfire-spread simulator: a probabilistic cellular
// automaton over a forest grid, driven by adjustable environment parameters.
//
// Usage:
//
//	wildfire run               - Interactive simulator in the terminal
//	wildfire sim               - Headless batch simulations with statistics
//	wildfire scenarios         - Manage saved parameter presets
//	wildfire serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>     - Simulation steps per second (default from config)
//	--seed <value>   - RNG seed for reproducible runs (0 = time-based)
//	--config <path>  - Path to custom config YAML
//	--db <path>      - Scenario database path (default: ~/.wildfire/scenarios.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wildfire",
	Short: "Wildfire - probabilistic forest fire simulator for your terminal",
	Long: `Wildfire simulates fire spreading through a forest as a cellular
automaton. Tune tree density, wind, moisture and temperature, strike
lightning, and watch the fire spread step by step.

Available commands:
  run        - Interactive simulator
  sim        - Headless batch runs with burn statistics
  scenarios  - List, save and delete parameter presets
  serve      - SSH server for remote sessions

Examples:
  wildfire run
  wildfire run --fps 10 --seed 42
  wildfire sim --runs 50
  wildfire scenarios list
  wildfire serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation steps per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wildfire/scenarios.db", "Path to scenario database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.StepsPerSecond = flagFPS
	}
	return cfg, nil
}
