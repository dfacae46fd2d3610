// Package config loads the game settings from a YAML file and lets
// environment variables override individual keys.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/lucky-ladder/domain/game"
)

// PathEnvName names the variable that points at the config file.
const PathEnvName = "LADDER_CONFIG"

// DefaultPath is used when PathEnvName is unset.
const DefaultPath = "ladder.yaml"

type Config struct {
	PlayerName  string `yaml:"player_name" env:"LADDER_PLAYER_NAME"`
	InitialGold int    `yaml:"initial_gold" env:"LADDER_INITIAL_GOLD"`
	Height      int    `yaml:"height" env:"LADDER_HEIGHT"`
	Bet         int    `yaml:"bet" env:"LADDER_BET"`
	Multiplier  int    `yaml:"multiplier" env:"LADDER_MULTIPLIER"`
	// Seed fixes the server seed of every round. Empty means a fresh random
	// seed per round.
	Seed     string `yaml:"seed" env:"LADDER_SEED"`
	LogLevel string `yaml:"log_level" env:"LADDER_LOG_LEVEL"`
}

// Default returns the settings of the classic game: five rungs, a bet of 100
// and a purse of 10000.
func Default() Config {
	return Config{
		PlayerName:  "somebody",
		InitialGold: 10000,
		Height:      game.MaxHeight,
		Bet:         100,
		Multiplier:  1,
		LogLevel:    "info",
	}
}

// Path returns the config file location from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnvName); p != "" {
		return p
	}
	return DefaultPath
}

// Load starts from Default, applies the YAML file at path if it exists, then
// the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Height < 1 || c.Height > game.MaxHeight {
		errs = append(errs, fmt.Errorf("height: %w, got %d", game.ErrInvalidHeight, c.Height))
	}
	if c.Bet <= 0 {
		errs = append(errs, fmt.Errorf("bet: %w, got %d", game.ErrInvalidBet, c.Bet))
	}
	if c.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("multiplier: %w, got %d", game.ErrInvalidMultiplier, c.Multiplier))
	}
	if err := game.CheckPayoutRange(c.Bet, c.Multiplier); err != nil {
		errs = append(errs, fmt.Errorf("bet: %w", err))
	}
	if c.InitialGold < 0 {
		errs = append(errs, fmt.Errorf("initial gold must not be negative, got %d", c.InitialGold))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured slog level, defaulting to info.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
