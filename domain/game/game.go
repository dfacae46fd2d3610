package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/luca-patrignani/lucky-ladder/domain/ladder"
)

var (
	ErrInvalidHeight     = errors.New("height must be between 1 and 5")
	ErrInvalidBet        = errors.New("bet must be positive")
	ErrInvalidMultiplier = errors.New("multiplier must be positive")
	ErrNilPlayer         = errors.New("nil player")
	ErrGameActive        = errors.New("game is still active")
)

// Game is a single round of the ladder climb. It is meant to be driven by one
// goroutine; only the player's wallet is shared with the caller.
type Game struct {
	ID uuid.UUID

	player        *Player
	targetHeight  int
	bet           int
	multiplier    int
	ladders       []ladder.Ladder
	currentHeight int
	cleared       int
	active        bool
	prize         int
	last          ladder.Packet

	shuffler ladder.Shuffler
	seeds    *ladder.Seeds
	logger   *slog.Logger
}

// NewGame validates the round parameters and lays out targetHeight ladders.
// The player is credited when the round ends.
func NewGame(player *Player, targetHeight, bet, multiplier int, opts ...gameOption) (*Game, error) {
	if player == nil {
		return nil, ErrNilPlayer
	}
	if targetHeight < 1 || targetHeight > MaxHeight {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHeight, targetHeight)
	}
	if bet <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidBet, bet)
	}
	if multiplier <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMultiplier, multiplier)
	}
	if err := CheckPayoutRange(bet, multiplier); err != nil {
		return nil, err
	}

	g := Game{
		ID:            uuid.New(),
		player:        player,
		targetHeight:  targetHeight,
		bet:           bet,
		multiplier:    multiplier,
		currentHeight: 1,
		active:        true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		g = opt(g)
	}
	if g.shuffler == nil {
		g.shuffler = ladder.NewShuffler()
	}

	ladders, err := ladder.Build(targetHeight, g.shuffler)
	if err != nil {
		return nil, fmt.Errorf("build ladders: %w", err)
	}
	g.ladders = ladders
	g.logger = g.logger.With("game", g.ID.String())
	g.logger.Debug("game created", "height", targetHeight, "bet", bet, "multiplier", multiplier)

	return &g, nil
}

func (g *Game) TargetHeight() int { return g.targetHeight }
func (g *Game) Bet() int          { return g.bet }
func (g *Game) Multiplier() int   { return g.multiplier }
func (g *Game) Player() *Player   { return g.player }

// CurrentHeight returns the 1-based rung the player is standing on.
func (g *Game) CurrentHeight() int { return g.currentHeight }

// IsActive reports whether packets can still be opened.
func (g *Game) IsActive() bool { return g.active }

// CurrentPrize returns the prize that would be settled if the round ended now.
func (g *Game) CurrentPrize() int { return g.prize }

// Cleared returns how many rungs were cleared by opening a Gold packet.
func (g *Game) Cleared() int { return g.cleared }

// LastPacket returns the most recently opened packet, if any.
func (g *Game) LastPacket() (ladder.Packet, bool) {
	return g.last, g.last.Kind() != 0
}

// Seeds returns the seeds the ladders were laid out from, if the game was
// created WithSeeds.
func (g *Game) Seeds() (ladder.Seeds, bool) {
	if g.seeds == nil {
		return ladder.Seeds{}, false
	}
	return *g.seeds, true
}

// Open opens the packet in the given 1-based slot of the current rung. The
// second result is false, and nothing changes, when the game has ended or the
// slot is outside 1..3.
func (g *Game) Open(slot int) (ladder.Packet, bool) {
	if !g.active {
		return ladder.Packet{}, false
	}
	packet, ok := g.ladders[g.currentHeight-1].Packet(slot)
	if !ok {
		return ladder.Packet{}, false
	}
	g.last = packet
	g.logger.Debug("packet opened", "height", g.currentHeight, "slot", slot, "kind", packet.Kind().String())

	switch packet.Kind() {
	case ladder.Gold:
		g.prize = Payout(g.currentHeight, g.bet, g.multiplier)
		g.cleared++
		if g.currentHeight == g.targetHeight {
			g.End()
		} else {
			g.currentHeight++
		}
	case ladder.Stop:
		g.prize = g.bet
		g.End()
	case ladder.Dead:
		g.prize = 0
		g.End()
	}
	return packet, true
}

// End finishes the round and credits the prize, if any, to the player. Calling
// End on a finished game does nothing.
func (g *Game) End() {
	if !g.active {
		return
	}
	g.active = false
	if g.prize > 0 {
		g.player.Gain(g.prize)
	}
	g.logger.Debug("game ended", "height", g.currentHeight, "prize", g.prize)
}

// Ladders returns a copy of the layout. It is only available once the round
// has ended.
func (g *Game) Ladders() ([]ladder.Ladder, error) {
	if g.active {
		return nil, ErrGameActive
	}
	return slices.Clone(g.ladders), nil
}
