// Package sim implements the forest-fire cellular automaton.
// The engine contains pure simulation logic with no external dependencies;
// the platform layer handles timing, input, and rendering.
package sim

// CellState is the state of a single grid cell.
type CellState uint8

const (
	Tree CellState = iota
	Fire
	Ash
)

// String returns a human-readable name for the cell state.
func (c CellState) String() string {
	switch c {
	case Tree:
		return "tree"
	case Fire:
		return "fire"
	case Ash:
		return "ash"
	default:
		return "unknown"
	}
}
