// blockdrop replays scripted falling-block levels in the terminal.
//
// Usage:
//
//	blockdrop list               - List available levels
//	blockdrop run <level>        - Run a level headless and print its output
//	blockdrop replay <level>     - Watch a level in the replay viewer
//	blockdrop runs <level>       - Show stored runs for a level
//	blockdrop serve              - Start SSH server for remote replays
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.blockdrop, ./configs)
//	--db <path>         - Runs database path
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/config"

	// Import built-in levels to register them
	_ "github.com/vovakirdan/blockdrop/internal/level/builtin"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdrop",
	Short: "Blockdrop - deterministic falling-block replays",
	Long: `Blockdrop runs scripted falling-block levels. A level is a field size,
a list of piece shapes and a command string (A/D move, S drop, Q/E rotate,
P render). Every run of a level produces the same result.

Available commands:
  list     - Show built-in levels and levels found in a directory
  run      - Run a level headless, printing locks and rendered frames
  replay   - Watch a level step by step in the terminal
  runs     - View stored runs
  serve    - Start SSH server for remote replays

Examples:
  blockdrop list
  blockdrop run lines
  blockdrop run ./levels/example.json --save
  blockdrop replay classic
  blockdrop serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	l, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	logger.Debug("config loaded", "source", cfg.Source, "command", cmd.Name())
	return nil
}

func newLogger(level string) (*log.Logger, error) {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockdrop",
	})
	if level == "" {
		return l, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	return l, nil
}
