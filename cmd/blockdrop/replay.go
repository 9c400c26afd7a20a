package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

var (
	flagReplayDir  string
	flagReplayRate int
	flagPaused     bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <level|file>",
	Short: "Watch a level in the replay viewer",
	Long: `Step through a level's commands in the terminal.

Controls:
  Space/P    - Play/pause
  N/Right    - Single step (pauses)
  +/-        - Faster/slower
  R          - Restart from the first command
  Q/Ctrl+C   - Quit

Finished runs are stored in the runs database.

Examples:
  blockdrop replay classic
  blockdrop replay lines --rate 2
  blockdrop replay ./levels/example.json --paused`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayDir, "dir", "", "Directory to search for level files")
	replayCmd.Flags().IntVar(&flagReplayRate, "rate", 0, "Commands per second (overrides config)")
	replayCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused")
}

func runReplay(_ *cobra.Command, args []string) {
	lvl, err := resolveLevel(args[0], flagReplayDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blockdrop list' to see available levels.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rate := appConfig.Replay.StepsPerSecond
	if flagReplayRate > 0 {
		rate = flagReplayRate
	}

	// Continue without storage - the replay still works
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	status, runErr := tui.RunReplay(tui.ReplayOptions{
		Level:  lvl,
		Store:  store,
		Source: "replay",
		Config: core.RuntimeConfig{
			ScreenW:        width,
			ScreenH:        height,
			StepsPerSecond: rate,
			Autoplay:       appConfig.Replay.Autoplay && !flagPaused,
		},
		Glyphs:  appConfig.Glyphs(),
		Scoring: appConfig.EngineScoring(),
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", runErr)
		os.Exit(1)
	}
	if status.Err != nil {
		fmt.Fprintf(os.Stderr, "Replay aborted: %v\n", status.Err)
		os.Exit(1)
	}
	fmt.Printf("%s: bonus %d after %d/%d commands\n", status.LevelID, status.Bonus, status.Cursor, status.Total)
}
