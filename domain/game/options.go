package game

import (
	"log/slog"

	"github.com/luca-patrignani/lucky-ladder/domain/ladder"
)

type gameOption func(Game) Game

// WithShuffler sets the permutation source used to lay out the ladders.
func WithShuffler(s ladder.Shuffler) gameOption {
	return func(g Game) Game {
		g.shuffler = s
		return g
	}
}

// WithSeeds lays out the ladders from verifiable seeds.
func WithSeeds(seeds ladder.Seeds) gameOption {
	return func(g Game) Game {
		g.seeds = &seeds
		g.shuffler = seeds.Shuffler()
		return g
	}
}

func WithLogger(logger *slog.Logger) gameOption {
	return func(g Game) Game {
		if logger != nil {
			g.logger = logger
		}
		return g
	}
}
