package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

var (
	flagRunsTUI   bool
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs <level>",
	Short: "Show stored runs for a level",
	Long: `Display the best stored runs for a level, highest bonus first.

Examples:
  blockdrop runs lines
  blockdrop runs classic --limit 25
  blockdrop runs classic --tui
  blockdrop runs lines --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs in an interactive table")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all stored runs for the level")
}

func runRuns(_ *cobra.Command, args []string) {
	levelID := args[0]

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		n, err := store.ClearRuns(levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Deleted %d runs for %s\n", n, levelID)
		return
	}

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRunsTable(store, levelID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(levelID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Runs - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'blockdrop run %s --save' to record one.\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-4s  %-3s  %-12s  %s\n", "Rank", "Bonus", "Locks", "Rows", "G/O", "Source", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-4s  %-3s  %-12s  %s\n", "----", "-----", "-----", "----", "---", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-4d  %-3d  %-12s  %s\n",
			i+1, r.Bonus, r.Locks, r.RowsCleared, r.GameOvers, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(levelID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Avg: %.1f  Runs: %d\n", stats.BestBonus, stats.AvgBonus, stats.RunsCount)
	}
}
