package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/level"
	"github.com/vovakirdan/blockdrop/internal/storage"
	"github.com/vovakirdan/blockdrop/internal/tetris"
)

var (
	flagLevelDir string
	flagSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run <level|file>",
	Short: "Run a level headless",
	Long: `Run every command of a level without a UI.

For each lock the command index and the running bonus are printed as
"<index> <bonus>". For each P command the field is printed one row per
line, with the active piece drawn using the "current" glyph.

Examples:
  blockdrop run lines
  blockdrop run ./levels/example.json
  blockdrop run mylevel --dir ./levels --save`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagLevelDir, "dir", "", "Directory to search for level files")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Store the finished run in the runs database")
}

func runRun(cmd *cobra.Command, args []string) {
	lvl, err := resolveLevel(args[0], flagLevelDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blockdrop list' to see available levels.")
		os.Exit(1)
	}

	res, err := simulate(cmd.OutOrStdout(), lvl, appConfig.EngineScoring(), appConfig.Glyphs(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("run finished",
		"level", lvl.ID,
		"bonus", res.Bonus,
		"locks", res.Locks,
		"rows", res.RowsCleared,
		"game_overs", res.GameOvers,
	)

	if !flagSave {
		return
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.NewRun(lvl.ID, "cli", res))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	logger.Info("run saved", "id", id)
}

// simulate runs lvl to completion, writing lock lines and rendered frames
// to w.
func simulate(w io.Writer, lvl level.Level, scoring tetris.Scoring, glyphs tetris.Glyphs, l *log.Logger) (tetris.Result, error) {
	engine, err := lvl.Build()
	if err != nil {
		return tetris.Result{}, err
	}
	engine.SetScoring(scoring)

	var writeErr error
	write := func(s string) {
		if writeErr == nil {
			_, writeErr = io.WriteString(w, s)
		}
	}

	engine.SetHooks(tetris.Hooks{
		OnRender: func(_ int, snap tetris.Snapshot) {
			write(tetris.RenderASCII(snap, glyphs))
		},
		OnLock: func(ev tetris.LockEvent) {
			write(fmt.Sprintf("%d %d\n", ev.CommandIndex, ev.Bonus))
			l.Debug("lock", "index", ev.CommandIndex, "bonus", ev.Bonus, "cleared", ev.Cleared)
		},
		OnGameOver: func(ev tetris.GameOverEvent) {
			l.Info("game over", "index", ev.CommandIndex, "bonus", ev.Bonus)
		},
	})

	if err := engine.Start(); err != nil {
		return engine.Result(), err
	}
	for {
		step, err := engine.Step()
		if errors.Is(err, tetris.ErrFinished) {
			break
		}
		if err != nil {
			return engine.Result(), err
		}
		l.Debug("step",
			"index", step.Index,
			"command", step.Command,
			"outcome", step.Outcome,
			"bonus", step.Bonus,
		)
		if writeErr != nil {
			return engine.Result(), fmt.Errorf("write output: %w", writeErr)
		}
	}
	return engine.Result(), writeErr
}
