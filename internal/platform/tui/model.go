package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/forestfire/internal/config"
	"github.com/vovakirdan/forestfire/internal/sim"
	"github.com/vovakirdan/forestfire/internal/storage"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// Model is the Bubble Tea model driving one simulation.
// It owns the engine exclusively: steps happen only on tick messages,
// and the view reads snapshots, never the live grid.
type Model struct {
	engine   *sim.Engine
	cfg      config.Config
	seed     int64
	store    *storage.Store
	keys     KeyMap
	help     help.Model
	interval time.Duration
	paused   bool
	done     bool
	saved    bool // whether this run has been persisted
	quitting bool
}

// NewModel creates a model for the given configuration and seed.
// A zero seed is replaced with the current time.
func NewModel(cfg config.Config, seed int64, store *storage.Store, interval time.Duration) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return Model{
		engine:   sim.New(cfg.SimConfig(), seed),
		cfg:      cfg,
		seed:     seed,
		store:    store,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: interval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if !m.done {
			m.paused = !m.paused
		}

	case key.Matches(msg, m.keys.Restart):
		// New seed, fresh engine. The tick loop stopped on termination,
		// so restart it.
		m.seed = time.Now().UnixNano()
		m.engine = sim.New(m.cfg.SimConfig(), m.seed)
		wasDone := m.done
		m.done = false
		m.saved = false
		m.paused = false
		if wasDone {
			return m, tickCmd(m.interval)
		}

	case key.Matches(msg, m.keys.Faster):
		m.interval = max(minTickInterval, m.interval-tickIntervalInc)

	case key.Matches(msg, m.keys.Slower):
		m.interval = min(maxTickInterval, m.interval+tickIntervalInc)
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		// Stray tick after termination; scheduling stopped already.
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.interval)
	}

	m.engine.Step()

	if m.engine.NoFireRemaining() {
		m.done = true
		m.saveRun()
		// Stop scheduling further steps.
		return m, nil
	}

	return m, tickCmd(m.interval)
}

// saveRun persists the finished run once. Best-effort: a storage failure
// never disturbs the session.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		Width:       m.cfg.Width,
		Height:      m.cfg.Height,
		Probability: m.cfg.Probability,
		Seed:        m.seed,
		Steps:       m.engine.StepsElapsed(),
		AshCells:    m.engine.AshCells(),
		TreeCells:   m.engine.TreeCells(),
	})
	m.saved = true
}

// View renders the grid, a status line, and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()

	var sb strings.Builder
	sb.WriteString(RenderSnapshot(snap))
	sb.WriteRune('\n')

	switch {
	case m.done:
		sb.WriteString(summaryStyle.Render(fmt.Sprintf(
			"Simulation ended. Steps elapsed: %d  Cells turned to ash: %d", snap.Steps, m.engine.AshCells())))
		sb.WriteRune('\n')
		sb.WriteString(statusStyle.Render("Press r to run again, q to quit"))
	case m.paused:
		sb.WriteString(statusStyle.Render(fmt.Sprintf("Paused at step %d", snap.Steps)))
	default:
		sb.WriteString(statusStyle.Render(fmt.Sprintf(
			"Step %d  p=%.2f  interval %s", snap.Steps, m.cfg.Probability, m.interval)))
	}

	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for a single simulation.
func Run(cfg config.Config, seed int64, store *storage.Store, interval time.Duration) error {
	p := tea.NewProgram(
		NewModel(cfg, seed, store, interval),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
