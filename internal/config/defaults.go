package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockdrop.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration. It matches the embedded
// defaults/blockdrop.yaml.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			DBPath: "~/.blockdrop/runs.db",
		},
		Replay: ReplayConfig{
			StepsPerSecond: 8,
			Autoplay:       true,
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Render: RenderConfig{
			Free:     ".",
			Occupied: "#",
			Current:  "*",
		},
		Scoring: ScoringConfig{
			RowBonus:        1,
			GameOverPenalty: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "default",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
