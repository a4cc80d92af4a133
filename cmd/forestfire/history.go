package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forestfire/internal/storage"
)

var (
	flagLimit   int
	flagLargest bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show summaries of past runs",
	Long: `Display summaries of recorded simulation runs: grid size,
propagation probability, seed, steps elapsed, and how much of the
forest burned.

Examples:
  forestfire history
  forestfire history --limit 25
  forestfire history --largest`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagLargest, "largest", false, "Order by burned cells instead of recency")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunRecord
	if flagLargest {
		runs, err = store.LargestBurns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagLargest {
		fmt.Println("Largest burns")
	} else {
		fmt.Println("Recent runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'forestfire run' or 'forestfire sim --save' to record one.")
		return
	}

	fmt.Printf("  %-7s  %-6s  %-6s  %-8s  %-6s  %s\n", "Grid", "Prob", "Steps", "Burned", "Trees", "Date")
	fmt.Printf("  %-7s  %-6s  %-6s  %-8s  %-6s  %s\n", "----", "----", "-----", "------", "-----", "----")

	for _, r := range runs {
		grid := fmt.Sprintf("%dx%d", r.Height, r.Width)
		burned := fmt.Sprintf("%d (%.0f%%)", r.AshCells, r.BurnFraction()*100)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-7s  %-6.2f  %-6d  %-8s  %-6d  %s\n", grid, r.Probability, r.Steps, burned, r.TreeCells, dateStr)
	}
}
