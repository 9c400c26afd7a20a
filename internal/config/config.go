// Package config loads blockdrop settings from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

// Config is the complete application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Replay  ReplayConfig  `yaml:"replay"`
	Server  ServerConfig  `yaml:"server"`
	Render  RenderConfig  `yaml:"render"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the config was read from, or "embedded"/"default".
	Source string `yaml:"-"`
}

// StorageConfig locates the runs database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"BLOCKDROP_DB"`
}

// ReplayConfig controls the interactive viewer.
type ReplayConfig struct {
	StepsPerSecond int  `yaml:"steps_per_second" env:"BLOCKDROP_REPLAY_RATE"`
	Autoplay       bool `yaml:"autoplay" env:"BLOCKDROP_AUTOPLAY"`
}

// ServerConfig controls the SSH replay server.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"BLOCKDROP_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key_path" env:"BLOCKDROP_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"BLOCKDROP_IDLE_TIMEOUT"`
}

// RenderConfig holds the single-character glyphs for each cell state.
type RenderConfig struct {
	Free     string `yaml:"free"`
	Occupied string `yaml:"occupied"`
	Current  string `yaml:"current"`
}

// ScoringConfig holds the bonus adjustments.
type ScoringConfig struct {
	RowBonus        int `yaml:"row_bonus" env:"BLOCKDROP_ROW_BONUS"`
	GameOverPenalty int `yaml:"game_over_penalty" env:"BLOCKDROP_GAMEOVER_PENALTY"`
}

// LogConfig holds the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level" env:"BLOCKDROP_LOG_LEVEL"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Replay.StepsPerSecond <= 0 {
		return fmt.Errorf("config: replay.steps_per_second must be positive, got %d", c.Replay.StepsPerSecond)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if c.Scoring.RowBonus < 0 || c.Scoring.GameOverPenalty < 0 {
		return fmt.Errorf("config: scoring values must not be negative")
	}
	for name, g := range map[string]string{
		"render.free":     c.Render.Free,
		"render.occupied": c.Render.Occupied,
		"render.current":  c.Render.Current,
	} {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: %s must be exactly one character, got %q", name, g)
		}
	}
	return nil
}

// Glyphs converts the render section into engine glyphs.
// Call only on a validated config.
func (c Config) Glyphs() tetris.Glyphs {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return tetris.Glyphs{
		Free:     first(c.Render.Free),
		Occupied: first(c.Render.Occupied),
		Current:  first(c.Render.Current),
	}
}

// EngineScoring converts the scoring section into engine scoring.
func (c Config) EngineScoring() tetris.Scoring {
	return tetris.Scoring{
		RowBonus:        c.Scoring.RowBonus,
		GameOverPenalty: c.Scoring.GameOverPenalty,
	}
}
