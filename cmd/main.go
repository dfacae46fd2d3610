package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/lucky-ladder/application"
	"github.com/luca-patrignani/lucky-ladder/config"
	"github.com/luca-patrignani/lucky-ladder/domain/game"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.Level())))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Lucky ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Ladder", pterm.FgYellow.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("What's your name?").WithDefaultValue(cfg.PlayerName).Show()
	name = strings.TrimSpace(name)
	if name == "" {
		name = cfg.PlayerName
	}
	pterm.Println()
	pterm.Info.Printfln("Welcome %s, you hold %d gold. Every game costs %d.", pterm.LightCyan(name), cfg.InitialGold, cfg.Bet)

	player := game.NewPlayer(name, cfg.InitialGold)
	session, err := application.NewSession(player, cfg, logger)
	if err != nil {
		logger.Error("failed to start session", "error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := session.Play(ctx, &terminalDriver{})
	if report.OutOfGold {
		pterm.Warning.Println("You don't have enough gold!")
	}
	pterm.Println(reportPanel(report))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session aborted", "error", err.Error())
		os.Exit(1)
	}
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
