package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/sim"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var (
	flagSimRuns     int
	flagSimMaxSteps int
	flagSimScenario string
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless batch simulations",
	Long: `Run a series of simulations without a UI and report burn statistics:
mean steps until the fire burned out and the mean fraction of the forest
consumed. Parameters come from the config defaults or a saved scenario.

Examples:
  wildfire sim --runs 50
  wildfire sim --runs 100 --max-steps 1000 --seed 42
  wildfire sim --scenario dry-summer --verbose`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 20, "Number of simulation runs")
	simCmd.Flags().IntVar(&flagSimMaxSteps, "max-steps", 2000, "Step cap per run")
	simCmd.Flags().StringVar(&flagSimScenario, "scenario", "", "Use a saved scenario preset")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log each run as it completes")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wildfire-sim",
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	params := sim.DefaultParams()
	params.Set(sim.ParamTreeDensity, cfg.Defaults.TreeDensity)
	params.Set(sim.ParamWindDir, cfg.Defaults.WindDir)
	params.Set(sim.ParamWindStr, cfg.Defaults.WindStr)
	params.Set(sim.ParamMoisture, cfg.Defaults.Moisture)
	params.Set(sim.ParamTemperature, cfg.Defaults.Temperature)

	if flagSimScenario != "" {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			logger.Fatal("cannot open scenario database", "error", storeErr)
		}
		sc, scErr := store.Scenario(flagSimScenario)
		store.Close()
		if scErr != nil {
			logger.Fatal("cannot load scenario", "error", scErr)
		}
		if sc == nil {
			logger.Fatal("unknown scenario", "name", flagSimScenario)
		}
		params = sc.Params
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if flagSimRuns < 1 {
		logger.Fatal("runs must be at least 1", "runs", flagSimRuns)
	}

	logger.Info("starting batch",
		"runs", flagSimRuns,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"fire_prob", fmt.Sprintf("%.2f", params.FireProbability()),
		"seed", seed,
	)

	var progress func(run int, r sim.RunResult)
	if flagSimVerbose {
		progress = func(run int, r sim.RunResult) {
			logger.Info("run complete",
				"run", run,
				"steps", r.Steps,
				"burned", fmt.Sprintf("%.1f%%", r.BurnedFrac*100),
			)
		}
	}

	start := time.Now()
	batch := sim.RunBatch(
		cfg.Grid.Width, cfg.Grid.Height,
		params,
		flagSimRuns, flagSimMaxSteps, cfg.Timing.IgniteCells,
		seed,
		progress,
	)
	elapsed := time.Since(start)

	logger.Info("batch complete",
		"runs", len(batch.Runs),
		"elapsed", elapsed.Round(time.Millisecond),
	)

	fmt.Printf("Runs:              %d\n", len(batch.Runs))
	fmt.Printf("Grid:              %dx%d\n", cfg.Grid.Width, cfg.Grid.Height)
	fmt.Printf("Fire probability:  %.2f\n", params.FireProbability())
	fmt.Printf("Mean steps:        %.1f\n", batch.MeanSteps)
	fmt.Printf("Max steps:         %d\n", batch.MaxSteps)
	fmt.Printf("Mean burned:       %.1f%%\n", batch.MeanBurnedFrac*100)
}
