package config

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luca-patrignani/lucky-ladder/domain/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ladder.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "player_name: Bob\nheight: 3\nbet: 50\nmultiplier: 2\nseed: abc\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PlayerName != "Bob" || cfg.Height != 3 || cfg.Bet != 50 || cfg.Multiplier != 2 || cfg.Seed != "abc" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.InitialGold != 10000 {
		t.Fatalf("unset key should keep its default, got %d", cfg.InitialGold)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "height: 3\nbet: 50\n")
	t.Setenv("LADDER_HEIGHT", "4")
	t.Setenv("LADDER_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Height != 4 {
		t.Fatalf("expected env height 4, got %d", cfg.Height)
	}
	if cfg.Bet != 50 {
		t.Fatalf("expected file bet 50, got %d", cfg.Bet)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %s", cfg.Level())
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("LADDER_BET", "not-an-int")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "height: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Height = 6
	cfg.Bet = 0
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	if !errors.Is(err, game.ErrInvalidHeight) {
		t.Fatalf("expected ErrInvalidHeight, got %v", err)
	}
	if !errors.Is(err, game.ErrInvalidBet) {
		t.Fatalf("expected ErrInvalidBet, got %v", err)
	}
	if !strings.Contains(err.Error(), "log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestValidateRejectsOverflowingStake(t *testing.T) {
	cfg := Default()
	cfg.Bet = math.MaxInt / 2

	if err := cfg.Validate(); !errors.Is(err, game.ErrStakeTooLarge) {
		t.Fatalf("expected ErrStakeTooLarge, got %v", err)
	}
}

func TestPath(t *testing.T) {
	t.Setenv(PathEnvName, "")
	if Path() != DefaultPath {
		t.Fatalf("expected %s, got %s", DefaultPath, Path())
	}
	t.Setenv(PathEnvName, "/etc/ladder.yaml")
	if Path() != "/etc/ladder.yaml" {
		t.Fatalf("expected env path, got %s", Path())
	}
}
