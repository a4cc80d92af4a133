package sim

import "testing"

func TestNewGridAllTrees(t *testing.T) {
	g := NewGrid(4, 6)

	if g.Height() != 4 || g.Width() != 6 {
		t.Fatalf("Expected 4x6 grid, got %dx%d", g.Height(), g.Width())
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) != Tree {
				t.Errorf("Cell (%d,%d) = %v, want tree", row, col, g.At(row, col))
			}
		}
	}
	if g.Count(Tree) != 24 {
		t.Errorf("Count(Tree) = %d, want 24", g.Count(Tree))
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 5)

	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 4, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 5, false},
		{3, 5, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.row, c.col); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	g := NewGrid(3, 3)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on out-of-bounds At")
		}
	}()
	g.At(3, 0)
}

func TestOutOfBoundsSetPanics(t *testing.T) {
	g := NewGrid(3, 3)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on out-of-bounds Set")
		}
	}()
	g.Set(0, -1, Fire)
}

func TestCloneIndependence(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Fire)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("Clone should equal original")
	}

	clone.Set(0, 0, Ash)
	if g.At(0, 0) != Tree {
		t.Error("Writing to clone mutated the original")
	}
	if g.Equal(clone) {
		t.Error("Grids should differ after clone mutation")
	}
}

func TestCountByState(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Fire)
	g.Set(0, 1, Ash)
	g.Set(1, 0, Ash)

	if got := g.Count(Fire); got != 1 {
		t.Errorf("Count(Fire) = %d, want 1", got)
	}
	if got := g.Count(Ash); got != 2 {
		t.Errorf("Count(Ash) = %d, want 2", got)
	}
	if got := g.Count(Tree); got != 1 {
		t.Errorf("Count(Tree) = %d, want 1", got)
	}
}

func TestEqualDimensionMismatch(t *testing.T) {
	if NewGrid(2, 3).Equal(NewGrid(3, 2)) {
		t.Error("Grids with different dimensions should not be equal")
	}
}
