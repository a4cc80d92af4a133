package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/forestfire/internal/config"
	"github.com/vovakirdan/forestfire/internal/platform/tui"
	"github.com/vovakirdan/forestfire/internal/storage"
)

var (
	flagConfig      string
	flagWidth       int
	flagHeight      int
	flagProbability float64
	flagFireStart   string
	flagPreset      string
	flagNoSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch a simulation live in the terminal",
	Long: `Start a simulation and render it in the terminal at a fixed cadence.

Controls:
  P/Space    - Pause
  R          - Restart with a new seed
  +/-        - Speed up / slow down
  Q/Ctrl+C   - Quit

Cells: green # tree, red * fire, gray . ash.

Presets override the configured probability:
  damp     - 0.3 (fire usually dies early)
  normal   - 0.5
  dry      - 0.7
  inferno  - 1.0 (everything reachable burns)

Examples:
  forestfire run
  forestfire run --preset dry
  forestfire run --width 50 --height 40 --fire-start "0,0;39,49"
  forestfire run --config ./my-forest.yaml --tick 200`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

// addConfigFlags registers the simulation parameter flags shared by run and sim.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid column count (overrides config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid row count (overrides config)")
	cmd.Flags().Float64Var(&flagProbability, "probability", -1, "Per-neighbour ignition chance in [0,1] (overrides config)")
	cmd.Flags().StringVar(&flagFireStart, "fire-start", "", "Initial fire positions \"row,col;row,col\" (overrides config)")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Probability preset: damp, normal, dry, inferno")
}

func init() {
	addConfigFlags(runCmd)
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record this run in the history database")
}

// loadRunConfig builds the effective config from file, presets, and flags.
func loadRunConfig() config.Config {
	cfg := config.Load(flagConfig)

	config.ApplyPreset(&cfg, config.ParsePreset(flagPreset))

	if flagWidth > 0 {
		cfg.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Height = flagHeight
	}
	if flagProbability >= 0 && flagProbability <= 1 {
		cfg.Probability = flagProbability
	}
	if flagFireStart != "" {
		cfg.FireStart = flagFireStart
	}

	return cfg
}

func runRun(_ *cobra.Command, _ []string) {
	cfg := loadRunConfig()

	// Warn when the grid will not fit the terminal; the simulation is
	// unaffected, only the rendering clips.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if cfg.Width > w || cfg.Height+3 > h {
			fmt.Fprintf(os.Stderr, "Warning: %dx%d grid exceeds the %dx%d terminal; display will clip\n",
				cfg.Height, cfg.Width, h, w)
		}
	}

	var store *storage.Store
	if !flagNoSave {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
			// Continue without storage - the simulation still works
			store = nil
		}
	}

	interval := time.Duration(flagTickMS) * time.Millisecond
	runErr := tui.Run(cfg, flagSeed, store, interval)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
