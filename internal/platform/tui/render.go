package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/forestfire/internal/sim"
)

// cellGlyphs maps each cell state to its display rune.
var cellGlyphs = map[sim.CellState]rune{
	sim.Tree: '#',
	sim.Fire: '*',
	sim.Ash:  '.',
}

// cellStyles maps each cell state to its colour: trees green, fire red, ash gray.
var cellStyles = map[sim.CellState]lipgloss.Style{
	sim.Tree: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	sim.Fire: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	sim.Ash:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Glyph returns the display rune for a cell state.
func Glyph(s sim.CellState) rune {
	if g, ok := cellGlyphs[s]; ok {
		return g
	}
	return '?'
}

// RenderSnapshot converts a grid snapshot to a styled string.
// Adjacent cells in the same state are grouped into a single styled run
// to minimize ANSI escape sequences.
func RenderSnapshot(snap sim.Snapshot) string {
	var sb strings.Builder
	sb.Grow(snap.Width*snap.Height*2 + snap.Height)

	for row := 0; row < snap.Height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < snap.Width {
			state := snap.At(row, col)

			var run strings.Builder
			for col < snap.Width && snap.At(row, col) == state {
				run.WriteRune(Glyph(state))
				col++
			}

			sb.WriteString(cellStyles[state].Render(run.String()))
		}
	}
	return sb.String()
}

// RenderPlain converts a snapshot to an unstyled string, one rune per cell.
// Used by tests and for plain-text dumps.
func RenderPlain(snap sim.Snapshot) string {
	var sb strings.Builder
	sb.Grow(snap.Width*snap.Height + snap.Height)

	for row := 0; row < snap.Height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < snap.Width; col++ {
			sb.WriteRune(Glyph(snap.At(row, col)))
		}
	}
	return sb.String()
}
