package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/sim"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Manage saved scenario presets",
	Long: `List, save, delete and rename named parameter presets.

Examples:
  wildfire scenarios list
  wildfire scenarios save dry-summer --temperature 42 --moisture 0.05
  wildfire scenarios delete dry-summer
  wildfire scenarios rename dry-summer heatwave`,
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	Run:   runScenariosList,
}

var (
	flagSaveDensity  string
	flagSaveWindDir  string
	flagSaveWindStr  string
	flagSaveMoisture string
	flagSaveTemp     string
)

var scenariosSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a scenario preset",
	Long: `Save a named parameter preset. Unset parameters keep their defaults;
out-of-range values are clamped to the valid range.

Examples:
  wildfire scenarios save calm
  wildfire scenarios save dry-summer --temperature 42 --moisture 0.05 --wind-str 0.7`,
	Args: cobra.ExactArgs(1),
	Run:  runScenariosSave,
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	Run:   runScenariosDelete,
}

var scenariosRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a saved scenario",
	Args:  cobra.ExactArgs(2),
	Run:   runScenariosRename,
}

func init() {
	scenariosSaveCmd.Flags().StringVar(&flagSaveDensity, "density", "", "Tree density (0.1-0.9)")
	scenariosSaveCmd.Flags().StringVar(&flagSaveWindDir, "wind-dir", "", "Wind direction in degrees (0-360)")
	scenariosSaveCmd.Flags().StringVar(&flagSaveWindStr, "wind-str", "", "Wind strength (0-1)")
	scenariosSaveCmd.Flags().StringVar(&flagSaveMoisture, "moisture", "", "Moisture (0-0.5)")
	scenariosSaveCmd.Flags().StringVar(&flagSaveTemp, "temperature", "", "Temperature in Celsius (0-50)")

	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosSaveCmd)
	scenariosCmd.AddCommand(scenariosDeleteCmd)
	scenariosCmd.AddCommand(scenariosRenameCmd)
}

// openStore opens the scenario database or exits with an error.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scenario database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScenariosList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	scenarios, err := store.ListScenarios()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing scenarios: %v\n", err)
		os.Exit(1)
	}

	if len(scenarios) == 0 {
		fmt.Println("No scenarios saved yet.")
		fmt.Println()
		fmt.Println("Save one with 'wildfire scenarios save <name>' or press S in the simulator.")
		return
	}

	fmt.Printf("  %-24s  %-8s  %-12s  %-8s  %-6s  %s\n",
		"Name", "Density", "Wind", "Moisture", "Temp", "Saved")
	fmt.Printf("  %-24s  %-8s  %-12s  %-8s  %-6s  %s\n",
		"----", "-------", "----", "--------", "----", "-----")

	for _, sc := range scenarios {
		fmt.Printf("  %-24s  %-8.2f  %4.0f° @%3.0f%%  %-8.2f  %4.0f°  %s\n",
			sc.Name,
			sc.Params.TreeDensity,
			sc.Params.WindDir, sc.Params.WindStr*100,
			sc.Params.Moisture,
			sc.Params.Temperature,
			sc.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func runScenariosSave(cmd *cobra.Command, args []string) {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	params := sim.DefaultParams()
	params.Set(sim.ParamTreeDensity, cfg.Defaults.TreeDensity)
	params.Set(sim.ParamWindDir, cfg.Defaults.WindDir)
	params.Set(sim.ParamWindStr, cfg.Defaults.WindStr)
	params.Set(sim.ParamMoisture, cfg.Defaults.Moisture)
	params.Set(sim.ParamTemperature, cfg.Defaults.Temperature)

	overrides := []struct {
		flag string
		key  sim.ParamKey
	}{
		{flagSaveDensity, sim.ParamTreeDensity},
		{flagSaveWindDir, sim.ParamWindDir},
		{flagSaveWindStr, sim.ParamWindStr},
		{flagSaveMoisture, sim.ParamMoisture},
		{flagSaveTemp, sim.ParamTemperature},
	}
	for _, o := range overrides {
		if o.flag == "" {
			continue
		}
		v, parseErr := strconv.ParseFloat(o.flag, 64)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid value %q for %s\n", o.flag, o.key)
			os.Exit(1)
		}
		params.Set(o.key, v)
	}

	store := openStore()
	defer store.Close()

	if _, err := store.SaveScenario(name, params); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving scenario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved scenario %q (fire probability %.2f)\n", name, params.FireProbability())
}

func runScenariosDelete(_ *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	deleted, err := store.DeleteScenario(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting scenario: %v\n", err)
		os.Exit(1)
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "No scenario named %q\n", name)
		os.Exit(1)
	}
	fmt.Printf("Deleted scenario %q\n", name)
}

func runScenariosRename(_ *cobra.Command, args []string) {
	oldName, newName := args[0], args[1]

	store := openStore()
	defer store.Close()

	renamed, err := store.RenameScenario(oldName, newName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming scenario: %v\n", err)
		os.Exit(1)
	}
	if !renamed {
		fmt.Fprintf(os.Stderr, "No scenario named %q\n", oldName)
		os.Exit(1)
	}
	fmt.Printf("Renamed scenario %q to %q\n", oldName, newName)
}
