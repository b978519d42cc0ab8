// Package sim implements the wildfire cellular automaton: the cell-state
// grid, the stochastic wind-biased transition rule, and the parameter model
// that derives the fire-spread probability. The package is UI-agnostic and
// deterministic for a given seed.
package sim

// CellState is the state of a single grid cell.
type CellState uint8

const (
	CellEmpty CellState = iota // bare ground, never ignites
	CellTree                   // fuel, may ignite
	CellBurning                // on fire this step, burns out next step
	CellBurnt                  // consumed, terminal
)

// String returns a human-readable name for the cell state.
func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellTree:
		return "tree"
	case CellBurning:
		return "burning"
	case CellBurnt:
		return "burnt"
	default:
		return "unknown"
	}
}

// mooreOffsets are the 8 neighbor offsets (dy, dx) of the Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}
