// Package application runs a session of consecutive ladder climbs for a single
// player: it charges the stake, hands each round to a Driver and keeps the
// results for the end-of-session report.
package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/lucky-ladder/config"
	"github.com/luca-patrignani/lucky-ladder/domain/game"
	"github.com/luca-patrignani/lucky-ladder/domain/ladder"
)

// Driver is the interactive side of a session. PlayRound returns once the
// round has ended or the driver gave up on it; the session ends a round that
// is still active.
type Driver interface {
	PlayRound(ctx context.Context, g *game.Game) error
	Continue(ctx context.Context, last RoundResult) (bool, error)
}

type RoundResult struct {
	GameID  string
	Seeds   ladder.Seeds
	Cleared int
	Prize   int
	// Last is the kind of the last opened packet, zero if the player walked
	// away without opening one.
	Last ladder.Kind
}

type Report struct {
	Player      string
	Games       int
	InitialGold int
	FinalGold   int
	Earned      int
	// OutOfGold is set when the session stopped because the stake could no
	// longer be covered.
	OutOfGold bool
	Rounds    []RoundResult
}

type Session struct {
	player *game.Player
	cfg    config.Config
	logger *slog.Logger
	rounds []RoundResult
	// outOfGold is set once a stake could not be covered.
	outOfGold bool
}

func NewSession(player *game.Player, cfg config.Config, logger *slog.Logger) (*Session, error) {
	if player == nil {
		return nil, game.ErrNilPlayer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{player: player, cfg: cfg, logger: logger}, nil
}

// Play runs rounds until the driver declines to continue, the player cannot
// cover the bet, or ctx is done.
func (s *Session) Play(ctx context.Context, d Driver) (Report, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.Report(), err
		}

		if err := s.player.Stake(s.cfg.Bet); err != nil {
			if errors.Is(err, game.ErrInsufficientGold) {
				s.logger.Info("not enough gold to play", "balance", s.player.Balance(), "bet", s.cfg.Bet)
				s.outOfGold = true
				return s.Report(), nil
			}
			return s.Report(), err
		}

		result, err := s.playRound(ctx, d)
		if err != nil {
			return s.Report(), err
		}

		again, err := d.Continue(ctx, result)
		if err != nil {
			return s.Report(), err
		}
		if !again {
			return s.Report(), nil
		}
	}
}

func (s *Session) playRound(ctx context.Context, d Driver) (RoundResult, error) {
	seeds, err := s.seeds()
	if err != nil {
		s.player.Gain(s.cfg.Bet)
		return RoundResult{}, err
	}
	g, err := game.NewGame(s.player, s.cfg.Height, s.cfg.Bet, s.cfg.Multiplier,
		game.WithSeeds(seeds),
		game.WithLogger(s.logger),
	)
	if err != nil {
		s.player.Gain(s.cfg.Bet)
		return RoundResult{}, fmt.Errorf("new game: %w", err)
	}
	s.logger.Info("round started", "game", g.ID.String(), "commitment", seeds.Commitment())

	playErr := d.PlayRound(ctx, g)
	g.End()

	result := RoundResult{
		GameID:  g.ID.String(),
		Seeds:   seeds,
		Cleared: g.Cleared(),
		Prize:   g.CurrentPrize(),
	}
	if p, ok := g.LastPacket(); ok {
		result.Last = p.Kind()
	}
	s.rounds = append(s.rounds, result)
	s.logger.Info("round ended", "game", result.GameID, "cleared", result.Cleared, "prize", result.Prize)

	if playErr != nil {
		return result, fmt.Errorf("play round: %w", playErr)
	}
	return result, nil
}

// seeds uses the configured server seed when there is one, a fresh one
// otherwise. The nonce is the round number.
func (s *Session) seeds() (ladder.Seeds, error) {
	nonce := uint64(len(s.rounds) + 1)
	if s.cfg.Seed != "" {
		return ladder.Seeds{Server: s.cfg.Seed, Client: s.player.Name(), Nonce: nonce}, nil
	}
	return ladder.NewSeeds(s.player.Name(), nonce)
}

// Report summarises the rounds played so far.
func (s *Session) Report() Report {
	final := s.player.Balance()
	rounds := make([]RoundResult, len(s.rounds))
	copy(rounds, s.rounds)
	return Report{
		Player:      s.player.Name(),
		Games:       len(s.rounds),
		InitialGold: s.player.InitialGold(),
		FinalGold:   final,
		Earned:      final - s.player.InitialGold(),
		OutOfGold:   s.outOfGold,
		Rounds:      rounds,
	}
}
