package main

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/lucky-ladder/application"
	"github.com/luca-patrignani/lucky-ladder/domain/game"
	"github.com/luca-patrignani/lucky-ladder/domain/ladder"
)

type fixedShuffler []int

func (f fixedShuffler) Perm(n int) []int { return f }

func TestParseChoice(t *testing.T) {
	tests := []struct {
		choice   string
		expected int
	}{
		{choice: "Open packet 1", expected: 1},
		{choice: "Open packet 3", expected: 3},
		{choice: "Open packet 4", expected: 0},
		{choice: "Open packet x", expected: 0},
		{choice: "Leave", expected: 0},
		{choice: "Take 170 gold and leave", expected: 0},
	}

	for _, tt := range tests {
		if got := parseChoice(tt.choice); got != tt.expected {
			t.Errorf("parseChoice(%q) = %d, want %d", tt.choice, got, tt.expected)
		}
	}
}

func TestRoundOptions(t *testing.T) {
	g, err := game.NewGame(game.NewPlayer("Alice", 0), 3, 100, 1, game.WithShuffler(fixedShuffler{0, 1, 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	options := roundOptions(g)
	if len(options) != 4 || options[3] != "Leave" {
		t.Fatalf("unexpected options before climbing: %v", options)
	}
	for i, o := range options[:3] {
		if parseChoice(o) != i+1 {
			t.Fatalf("option %q does not parse to slot %d", o, i+1)
		}
	}

	g.Open(1)
	options = roundOptions(g)
	if options[3] != "Take 170 gold and leave" {
		t.Fatalf("unexpected walk-away option: %q", options[3])
	}
	if !strings.Contains(promptText(g), "170") {
		t.Fatalf("prompt should mention the prize: %q", promptText(g))
	}
}

func TestLaddersTable(t *testing.T) {
	ladders, err := ladder.Build(3, fixedShuffler{2, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := laddersTable(ladders)
	if len(data) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(data))
	}
	if data[1][0] != "3" || data[3][0] != "1" {
		t.Fatalf("expected top rung first, got %v", data)
	}
	expected := []string{"1", "Dead", "Gold", "Stop"}
	for i, cell := range data[3] {
		if cell != expected[i] {
			t.Fatalf("bottom row: expected %v, got %v", expected, data[3])
		}
	}
}

func TestReportPanel(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	panel := reportPanel(application.Report{
		Player:      "Alice",
		Games:       2,
		InitialGold: 10000,
		FinalGold:   9800,
		Earned:      -200,
	})
	for _, want := range []string{"Alice", "Games played: 2", "End gold: 9800", "-200"} {
		if !strings.Contains(panel, want) {
			t.Errorf("report panel is missing %q:\n%s", want, panel)
		}
	}
}

func TestPtermLevel(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected pterm.LogLevel
	}{
		{level: slog.LevelDebug, expected: pterm.LogLevelDebug},
		{level: slog.LevelInfo, expected: pterm.LogLevelInfo},
		{level: slog.LevelWarn, expected: pterm.LogLevelWarn},
		{level: slog.LevelError, expected: pterm.LogLevelError},
	}

	for _, tt := range tests {
		if got := ptermLevel(tt.level); got != tt.expected {
			t.Errorf("ptermLevel(%s) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}
