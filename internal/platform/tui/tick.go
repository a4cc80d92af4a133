// Package tui provides the Bubble Tea integration for the simulator.
// It drives the engine at a fixed wall-clock cadence and renders grid
// snapshots; the engine itself stays presentation-agnostic.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is the reference cadence between simulation steps.
const DefaultTickInterval = 500 * time.Millisecond

// Interval bounds for the speed-up/slow-down keys.
const (
	minTickInterval = 50 * time.Millisecond
	maxTickInterval = 2 * time.Second
	tickIntervalInc = 50 * time.Millisecond
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after the interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
