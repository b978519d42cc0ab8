package sim

// Grid is a rectangular field of cell states stored in row-major order:
// index = row*W + col. There is no out-of-grid cell; edge cells simply have
// fewer than 8 neighbors.
type Grid struct {
	W     int // Width in cells
	H     int // Height in cells
	Cells []CellState
}

// NewGrid creates a grid of the given dimensions with all cells empty.
func NewGrid(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]CellState, w*h),
	}
}

// index converts (row, col) to a flat slice index.
func (g *Grid) index(row, col int) int {
	return row*g.W + col
}

// InBounds returns true if (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the state at (row, col).
// Returns CellEmpty for out-of-bounds coordinates.
func (g *Grid) At(row, col int) CellState {
	if !g.InBounds(row, col) {
		return CellEmpty
	}
	return g.Cells[g.index(row, col)]
}

// Set writes the state at (row, col).
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(row, col int, s CellState) {
	if g.InBounds(row, col) {
		g.Cells[g.index(row, col)] = s
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.Cells {
		if c == s {
			n++
		}
	}
	return n
}

// Any returns true if at least one cell is in the given state.
func (g *Grid) Any(s CellState) bool {
	for _, c := range g.Cells {
		if c == s {
			return true
		}
	}
	return false
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Fill sets every cell to the given state.
func (g *Grid) Fill(s CellState) {
	for i := range g.Cells {
		g.Cells[i] = s
	}
}
