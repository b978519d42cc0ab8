package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wildfire/internal/platform/tui"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var flagScenario string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive simulator",
	Long: `Start the wildfire simulator in the current terminal.

Controls:
  Up/Down      - Select parameter
  Left/Right   - Adjust parameter
  F / click    - Strike lightning / ignite a cell
  Space        - Play/pause
  N            - Step once
  R            - Reset forest
  X            - Randomize scenario
  S            - Save scenario
  O            - Browse saved scenarios
  Q/Ctrl+C     - Quit

Examples:
  wildfire run
  wildfire run --fps 10
  wildfire run --seed 42 --scenario dry-summer`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScenario, "scenario", "", "Start from a saved scenario preset")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scenario database: %v\n", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	if flagScenario != "" {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --scenario requires a scenario database")
			os.Exit(1)
		}
		sc, scErr := store.Scenario(flagScenario)
		if scErr != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", scErr)
			os.Exit(1)
		}
		if sc == nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", flagScenario)
			fmt.Fprintln(os.Stderr, "Run 'wildfire scenarios list' to see saved scenarios.")
			os.Exit(1)
		}
		cfg.Defaults.TreeDensity = sc.Params.TreeDensity
		cfg.Defaults.WindDir = sc.Params.WindDir
		cfg.Defaults.WindStr = sc.Params.WindStr
		cfg.Defaults.Moisture = sc.Params.Moisture
		cfg.Defaults.Temperature = sc.Params.Temperature
	}

	runErr := tui.Run(cfg, store, width, height, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
