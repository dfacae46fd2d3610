package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/lucky-ladder/application"
	"github.com/luca-patrignani/lucky-ladder/domain/game"
	"github.com/luca-patrignani/lucky-ladder/domain/ladder"
)

const openOptionPrefix = "Open packet "

func promptText(g *game.Game) string {
	text := fmt.Sprintf("Current ladder height is %d, choose a packet", g.CurrentHeight())
	if g.CurrentHeight() > 1 {
		text += fmt.Sprintf(" or take the prize of %d", g.CurrentPrize())
	}
	return text
}

// roundOptions lists one option per packet slot followed by the walk-away option.
func roundOptions(g *game.Game) []string {
	options := make([]string, 0, ladder.PacketsPerRung+1)
	for slot := 1; slot <= ladder.PacketsPerRung; slot++ {
		options = append(options, openOptionPrefix+strconv.Itoa(slot))
	}
	if g.CurrentPrize() > 0 {
		options = append(options, fmt.Sprintf("Take %d gold and leave", g.CurrentPrize()))
	} else {
		options = append(options, "Leave")
	}
	return options
}

// parseChoice returns the slot picked in the select prompt, or 0 when the
// player chose to leave.
func parseChoice(choice string) int {
	if !strings.HasPrefix(choice, openOptionPrefix) {
		return 0
	}
	slot, err := strconv.Atoi(strings.TrimPrefix(choice, openOptionPrefix))
	if err != nil || slot < 1 || slot > ladder.PacketsPerRung {
		return 0
	}
	return slot
}

func openedLine(height, slot int, p ladder.Packet) string {
	return fmt.Sprintf("Opened packet %d on height %d: %s", slot, height, p.Kind().Colored())
}

func roundPanel(g *game.Game) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	prize := pterm.LightRed(strconv.Itoa(g.CurrentPrize()))
	if g.CurrentPrize() > 0 {
		prize = pterm.LightGreen(strconv.Itoa(g.CurrentPrize()))
	}
	return pbox.WithTitle(pterm.LightYellow("|GAME OVER|")).WithTitleTopCenter().Sprintf(
		"%s cleared %d of %d ladders\nPrize: %s\nBalance: %d",
		pterm.LightCyan(g.Player().Name()), g.Cleared(), g.TargetHeight(), prize, g.Player().Balance())
}

// laddersTable renders the layout top rung first, the way the ladder is climbed.
func laddersTable(ladders []ladder.Ladder) pterm.TableData {
	data := pterm.TableData{{"Height", "Packet 1", "Packet 2", "Packet 3"}}
	for i := len(ladders) - 1; i >= 0; i-- {
		row := []string{strconv.Itoa(ladders[i].Height())}
		for _, p := range ladders[i].Packets() {
			row = append(row, p.Kind().String())
		}
		data = append(data, row)
	}
	return data
}

func seedsLines(s ladder.Seeds) string {
	return fmt.Sprintf("Server seed: %s\nClient seed: %s\nNonce: %d", s.Server, s.Client, s.Nonce)
}

func reportPanel(r application.Report) string {
	pbox := pterm.DefaultBox.WithLeftPadding(10).WithRightPadding(10).WithTopPadding(1).WithBottomPadding(1)
	earned := pterm.LightGreen(strconv.Itoa(r.Earned))
	if r.Earned < 0 {
		earned = pterm.LightRed(strconv.Itoa(r.Earned))
	}
	return pbox.WithTitle(r.Player).WithTitleTopLeft().Sprintf(
		"Games played: %d\nInitial gold: %d\nEnd gold: %d\nTotal earned: %s",
		r.Games, r.InitialGold, r.FinalGold, earned)
}
