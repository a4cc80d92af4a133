// forestfire simulates fire spreading through a forest as a cellular
// automaton, rendered live in the terminal.
//
// Usage:
//
//	forestfire run               - Watch a simulation in the terminal
//	forestfire sim               - Run simulations headless and print stats
//	forestfire history           - Show past run summaries
//	forestfire serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--tick <ms>     - Milliseconds between steps (default: 500)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Run database path (default: ~/.forestfire/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTickMS int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forestfire",
	Short: "Forest fire simulator for your terminal",
	Long: `forestfire runs a stochastic forest-fire cellular automaton:
every cell is a tree, on fire, or ash. Each tick, burning cells turn to
ash and may ignite their four neighbours with a configurable probability,
until no fire remains.

Available commands:
  run      - Watch a simulation live in the terminal
  sim      - Run simulations headless and report statistics
  history  - View summaries of past runs
  serve    - Start an SSH server for remote viewing

Examples:
  forestfire run
  forestfire run --probability 0.7 --fire-start "0,0;29,29"
  forestfire sim --runs 100
  forestfire history --largest
  forestfire serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 500, "Milliseconds between simulation steps")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.forestfire/runs.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
