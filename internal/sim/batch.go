package sim

// RunResult summarizes a single headless simulation run.
type RunResult struct {
	Steps        int     // steps until the fire burned out (or the cap)
	InitialTrees int     // trees seeded before ignition
	Burnt        int     // cells consumed by the end of the run
	BurnedFrac   float64 // Burnt / InitialTrees, 0 when no trees were seeded
}

// BatchResult aggregates a series of runs with identical parameters.
type BatchResult struct {
	Runs           []RunResult
	MeanSteps      float64
	MeanBurnedFrac float64
	MaxSteps       int
}

// RunBatch executes runs independent simulations on a w x h grid and
// aggregates the outcomes. Each run reseeds the forest, strikes igniteCells
// trees and steps until the fire burns out or maxSteps is reached. progress
// may be nil; otherwise it is called after each run completes.
func RunBatch(w, h int, p Params, runs, maxSteps, igniteCells int, seed int64, progress func(run int, r RunResult)) BatchResult {
	engine := NewEngine(w, h, seed)

	batch := BatchResult{Runs: make([]RunResult, 0, runs)}
	var totalSteps, totalRunsWithTrees int
	var totalFrac float64

	for i := 0; i < runs; i++ {
		engine.Reset(p.TreeDensity)

		trees, _, _ := engine.Counts()
		r := RunResult{InitialTrees: trees}

		if engine.Ignite(igniteCells) {
			for r.Steps < maxSteps && engine.Step(p) {
				r.Steps++
			}
			if r.Steps < maxSteps {
				r.Steps++ // final step that extinguished the fire
			}
		}

		_, _, r.Burnt = engine.Counts()
		if trees > 0 {
			r.BurnedFrac = float64(r.Burnt) / float64(trees)
			totalFrac += r.BurnedFrac
			totalRunsWithTrees++
		}

		totalSteps += r.Steps
		if r.Steps > batch.MaxSteps {
			batch.MaxSteps = r.Steps
		}
		batch.Runs = append(batch.Runs, r)

		if progress != nil {
			progress(i+1, r)
		}
	}

	if len(batch.Runs) > 0 {
		batch.MeanSteps = float64(totalSteps) / float64(len(batch.Runs))
	}
	if totalRunsWithTrees > 0 {
		batch.MeanBurnedFrac = totalFrac / float64(totalRunsWithTrees)
	}
	return batch
}
