package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  time.Duration
	flagDefaultLevel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blockdrop SSH server",
	Long: `Start an SSH server that replays levels to connecting users.

The SSH command selects the level; without one the first built-in level
is replayed. Finished runs are stored with source "ssh:<user>".

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockdrop/host_key

Examples:
  blockdrop serve                           # Listen on :23235 with auto-generated key
  blockdrop serve --ssh :2222               # Listen on port 2222
  blockdrop serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23235 lines`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
	serveCmd.Flags().StringVar(&flagDefaultLevel, "level", "", "Level replayed when the client gives none")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:        appConfig.Server.Address,
		HostKeyPath:    appConfig.Server.HostKeyPath,
		DBPath:         appConfig.Storage.DBPath,
		IdleTimeout:    appConfig.Server.IdleTimeout,
		DefaultLevel:   flagDefaultLevel,
		StepsPerSecond: appConfig.Replay.StepsPerSecond,
		Glyphs:         appConfig.Glyphs(),
		Scoring:        appConfig.EngineScoring(),
		Logger:         logger.WithPrefix("blockdrop-ssh"),
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if cfg.Address == "" {
		cfg.Address = tui.DefaultSSHServerConfig().Address
	}
	cfg.StepsPerSecond = core.Clamp(cfg.StepsPerSecond, core.MinStepsPerSecond, core.MaxStepsPerSecond)

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting blockdrop SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
