package sim

import (
	"math"
	"math/rand"
)

// DefaultIgniteCells is how many trees a lightning strike sets on fire.
const DefaultIgniteCells = 3

// Engine owns the fire grid and applies the per-step transition rule.
// It is single-threaded; callers decide when to advance the simulation.
type Engine struct {
	grid *Grid
	rng  *rand.Rand
}

// NewEngine creates an engine with an empty grid of the given dimensions.
// A seed of 0 is replaced by a fixed default so the zero-config path is
// still usable; drivers pass time-based seeds for varied runs.
func NewEngine(w, h int, seed int64) *Engine {
	if seed == 0 {
		seed = 1
	}
	return &Engine{
		grid: NewGrid(w, h),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Grid exposes the current grid for display. Callers must not mutate it.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Resize replaces the grid with a fresh empty one of the given dimensions.
func (e *Engine) Resize(w, h int) {
	e.grid = NewGrid(w, h)
}

// Reset replaces the grid with an independent Bernoulli draw per cell:
// tree with probability density, empty otherwise. No burning or burnt cells
// exist afterwards.
func (e *Engine) Reset(density float64) {
	g := NewGrid(e.grid.W, e.grid.H)
	for i := range g.Cells {
		if e.rng.Float64() < density {
			g.Cells[i] = CellTree
		}
	}
	e.grid = g
}

// Ignite sets up to maxCells distinct random trees on fire and returns true
// if at least one cell ignited. With zero trees present the grid is left
// unchanged and false is returned.
func (e *Engine) Ignite(maxCells int) bool {
	trees := make([]int, 0, len(e.grid.Cells))
	for i, c := range e.grid.Cells {
		if c == CellTree {
			trees = append(trees, i)
		}
	}
	if len(trees) == 0 {
		return false
	}

	n := maxCells
	if n > len(trees) {
		n = len(trees)
	}
	// Partial Fisher-Yates: draw n distinct indices without replacement.
	for i := 0; i < n; i++ {
		j := i + e.rng.Intn(len(trees)-i)
		trees[i], trees[j] = trees[j], trees[i]
		e.grid.Cells[trees[i]] = CellBurning
	}
	return true
}

// IgniteAt sets the cell at (row, col) on fire only if it currently holds a
// tree. Anything else, including out-of-bounds coordinates, is a no-op.
// Returns true if the cell ignited.
func (e *Engine) IgniteAt(row, col int) bool {
	if e.grid.At(row, col) != CellTree {
		return false
	}
	e.grid.Set(row, col, CellBurning)
	return true
}

// Step applies one synchronous transition to the whole grid and returns true
// if any cell is still burning afterwards.
//
// Every cell transitions based on the previous step's grid: burning cells
// burn out to burnt, and each tree adjacent to a burning cell runs one
// Bernoulli trial per burning neighbor with probability
// fireProb * windBias(dy, dx) * (1 - moisture). Empty and burnt cells are
// fixed points. The next state is computed into a fresh buffer so no cell
// ever observes a partially updated neighborhood.
func (e *Engine) Step(p Params) bool {
	return e.step(p, p.FireProbability())
}

// step runs one transition with an explicit spread probability so the rule
// can be exercised at exact probabilities in tests.
func (e *Engine) step(p Params, fireProb float64) bool {
	prev := e.grid
	next := prev.Clone()

	stillBurning := false

	for row := 0; row < prev.H; row++ {
		for col := 0; col < prev.W; col++ {
			if prev.At(row, col) != CellBurning {
				continue
			}
			next.Set(row, col, CellBurnt)

			for _, d := range mooreOffsets {
				dy, dx := d[0], d[1]
				nr, nc := row+dy, col+dx
				if !prev.InBounds(nr, nc) || prev.At(nr, nc) != CellTree {
					continue
				}
				if next.At(nr, nc) == CellBurning {
					// Already ignited by an earlier burning neighbor this
					// step; another success would write the same value.
					stillBurning = true
					continue
				}
				// (dy, dx) points from the burning cell to the tree,
				// i.e. the direction the fire would spread.
				prob := fireProb * WindBias(p.WindDir, p.WindStr, dy, dx) * (1 - p.Moisture)
				if e.rng.Float64() < prob {
					next.Set(nr, nc, CellBurning)
					stillBurning = true
				}
			}
		}
	}

	e.grid = next
	return stillBurning
}

// Burning reports whether any cell is currently on fire. Drivers use it to
// clear their running flag once the fire self-extinguishes.
func (e *Engine) Burning() bool {
	return e.grid.Any(CellBurning)
}

// Counts returns the current tree, burning and burnt cell tallies.
func (e *Engine) Counts() (trees, burning, burnt int) {
	for _, c := range e.grid.Cells {
		switch c {
		case CellTree:
			trees++
		case CellBurning:
			burning++
		case CellBurnt:
			burnt++
		}
	}
	return trees, burning, burnt
}

// WindBias returns the directional multiplier on ignition probability for a
// neighbor at offset (dy, dx) from a burning cell. Neighbors downwind of the
// fire get a multiplier above 1, upwind neighbors approach 1 - windStr,
// floored at 0.1 so ignition is never impossible. With no wind every
// direction is weighted equally.
func WindBias(windDir, windStr float64, dy, dx int) float64 {
	if windStr == 0 {
		return 1.0
	}
	// Compass bearing of the offset: 0 = N (negative dy), 90 = E.
	angle := math.Atan2(float64(dx), float64(-dy)) * 180 / math.Pi
	diff := math.Abs(angle - windDir)
	if diff > 180 {
		diff = 360 - diff
	}
	bias := 1.0 + windStr*math.Cos(diff*math.Pi/180)
	if bias < 0.1 {
		return 0.1
	}
	return bias
}
