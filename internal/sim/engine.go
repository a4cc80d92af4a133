package sim

import "math/rand"

// Config holds the parameters needed to start a simulation.
type Config struct {
	Width         int
	Height        int
	Probability   float64    // per-neighbour ignition chance in [0,1]
	FirePositions []Position // initial ignition points; invalid entries are skipped
}

// Engine owns the simulation lifecycle: the current grid, the step
// transition rule, termination detection, and run statistics.
// It is single-threaded; callers must not invoke Step concurrently
// with itself or with grid reads.
type Engine struct {
	grid        *Grid
	rng         *rand.Rand
	probability float64
	steps       int
}

// neighbour offsets: north, south, west, east. Diagonals never burn.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New creates an engine from the given config and RNG seed.
// The grid starts all Tree, then each valid fire position is ignited.
// Out-of-range seed positions are dropped silently. An empty or fully
// out-of-range seed list yields an immediately-terminal simulation.
func New(cfg Config, seed int64) *Engine {
	grid := NewGrid(cfg.Height, cfg.Width)
	for _, pos := range cfg.FirePositions {
		if grid.InBounds(pos.Row, pos.Col) {
			grid.Set(pos.Row, pos.Col, Fire)
		}
	}
	return &Engine{
		grid:        grid,
		rng:         rand.New(rand.NewSource(seed)),
		probability: cfg.Probability,
	}
}

// Step advances the simulation by one tick.
//
// Every burning cell becomes ash, and each of its four orthogonal
// neighbours that is a tree ignites with the configured probability.
// Neighbour checks read the pre-step grid throughout, so the fire
// advances exactly one wavefront per tick: a cell ignited during this
// step cannot spread until the next one. Calling Step when no fire
// remains only advances the counter.
func (e *Engine) Step() {
	next := e.grid.Clone()
	for row := 0; row < e.grid.Height(); row++ {
		for col := 0; col < e.grid.Width(); col++ {
			if e.grid.At(row, col) != Fire {
				continue
			}
			next.Set(row, col, Ash)
			for _, dir := range directions {
				nr, nc := row+dir[0], col+dir[1]
				if !e.grid.InBounds(nr, nc) || e.grid.At(nr, nc) != Tree {
					continue
				}
				if e.rng.Float64() < e.probability {
					next.Set(nr, nc, Fire)
				}
			}
		}
	}
	e.grid = next
	e.steps++
}

// NoFireRemaining returns true if no cell is currently burning.
// Irreversible once reached: ash never reignites.
func (e *Engine) NoFireRemaining() bool {
	return e.grid.Count(Fire) == 0
}

// AshCells returns the number of cells that have burned down.
func (e *Engine) AshCells() int {
	return e.grid.Count(Ash)
}

// TreeCells returns the number of cells still holding trees.
func (e *Engine) TreeCells() int {
	return e.grid.Count(Tree)
}

// StepsElapsed returns the number of completed steps.
func (e *Engine) StepsElapsed() int {
	return e.steps
}
