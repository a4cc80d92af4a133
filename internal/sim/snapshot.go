package sim

// Snapshot is an immutable copy of the simulation state for renderers.
// The platform layer reads snapshots instead of touching the live grid,
// so the engine is free to replace its storage on the next step.
type Snapshot struct {
	Width  int
	Height int
	Cells  []CellState // row-major, length Width*Height
	Steps  int
	Done   bool
}

// At returns the cell state at (row, col).
// Out-of-bounds coordinates return Ash as a neutral value.
func (s Snapshot) At(row, col int) CellState {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return Ash
	}
	return s.Cells[row*s.Width+col]
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]CellState, len(e.grid.cells))
	copy(cells, e.grid.cells)
	return Snapshot{
		Width:  e.grid.Width(),
		Height: e.grid.Height(),
		Cells:  cells,
		Steps:  e.steps,
		Done:   e.NoFireRemaining(),
	}
}
