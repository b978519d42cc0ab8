package sim

import "testing"

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(10, 8)

	if g.At(-1, 0) != CellEmpty || g.At(0, -1) != CellEmpty {
		t.Error("negative coordinates should read as empty")
	}
	if g.At(8, 0) != CellEmpty || g.At(0, 10) != CellEmpty {
		t.Error("past-the-edge coordinates should read as empty")
	}

	// Out-of-bounds writes are no-ops, not panics.
	g.Set(-1, -1, CellBurning)
	g.Set(100, 100, CellBurning)
	if g.Any(CellBurning) {
		t.Error("out-of-bounds Set should not modify the grid")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 2, CellTree)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal source")
	}

	c.Set(2, 2, CellBurning)
	if g.At(2, 2) != CellTree {
		t.Error("mutating the clone must not affect the source")
	}
	if g.Equal(c) {
		t.Error("grids should differ after clone mutation")
	}
}

func TestGridCounts(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(CellTree)
	g.Set(0, 0, CellBurning)
	g.Set(1, 1, CellBurnt)
	g.Set(2, 2, CellEmpty)

	if got := g.Count(CellTree); got != 13 {
		t.Errorf("Count(tree) = %d, want 13", got)
	}
	if got := g.Count(CellBurning); got != 1 {
		t.Errorf("Count(burning) = %d, want 1", got)
	}
	if got := g.Count(CellBurnt); got != 1 {
		t.Errorf("Count(burnt) = %d, want 1", got)
	}
	if got := g.Count(CellEmpty); got != 1 {
		t.Errorf("Count(empty) = %d, want 1", got)
	}
}

func TestGridMinimumSize(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Errorf("degenerate dimensions should clamp to 1x1, got %dx%d", g.W, g.H)
	}
}
