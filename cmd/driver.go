package main

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/lucky-ladder/application"
	"github.com/luca-patrignani/lucky-ladder/domain/game"
)

// terminalDriver plays rounds through interactive pterm prompts.
type terminalDriver struct{}

func (d *terminalDriver) PlayRound(ctx context.Context, g *game.Game) error {
	pterm.DefaultSection.Println("Game start!")
	pterm.Info.Printfln("There are %d ladders, each ladder has 3 packets. Open one per rung, or walk away with your prize.", g.TargetHeight())
	if seeds, ok := g.Seeds(); ok {
		pterm.Info.Printfln("Server seed commitment: %s", seeds.Commitment())
	}

	for g.IsActive() {
		if err := ctx.Err(); err != nil {
			return err
		}
		height := g.CurrentHeight()
		choice, err := pterm.DefaultInteractiveSelect.WithDefaultText(promptText(g)).WithOptions(roundOptions(g)).Show()
		if err != nil {
			return err
		}
		slot := parseChoice(choice)
		if slot == 0 {
			pterm.Info.Println("Ending game...")
			g.End()
			break
		}
		packet, ok := g.Open(slot)
		if !ok {
			g.End()
			break
		}
		pterm.Println(openedLine(height, slot, packet))
	}

	pterm.Println(roundPanel(g))

	if show, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Show all ladders?").WithDefaultValue(true).Show(); show {
		ladders, err := g.Ladders()
		if err != nil {
			return err
		}
		if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(laddersTable(ladders)).Render(); err != nil {
			return err
		}
		if seeds, ok := g.Seeds(); ok {
			pterm.Println(seedsLines(seeds))
		}
	}
	return nil
}

func (d *terminalDriver) Continue(ctx context.Context, last application.RoundResult) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	again, err := pterm.DefaultInteractiveConfirm.WithDefaultText("Retry?").WithDefaultValue(true).Show()
	if err != nil {
		return false, err
	}
	return again, nil
}
