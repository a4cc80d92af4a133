package sim

import "fmt"

// Grid is a fixed-size rectangular board of cell states.
// Cells are stored in row-major order: index = row*width + col.
// Dimensions are set at construction and never change.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid creates a grid with every cell set to Tree.
func NewGrid(height, width int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if (row, col) is a valid cell coordinate.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// At returns the state of the cell at (row, col).
// Out-of-bounds access is a programming error and panics; callers
// must check InBounds first.
func (g *Grid) At(row, col int) CellState {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("sim: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.height, g.width))
	}
	return g.cells[g.index(row, col)]
}

// Set writes the state of the cell at (row, col).
// Same bounds contract as At.
func (g *Grid) Set(row, col int, s CellState) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("sim: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.height, g.width))
	}
	g.cells[g.index(row, col)] = s
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(s CellState) int {
	count := 0
	for _, c := range g.cells {
		if c == s {
			count++
		}
	}
	return count
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
