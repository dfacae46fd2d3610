package game

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrInvalidStake     = errors.New("stake must be positive")
)

// Player is the wallet of a single player. It is safe for concurrent use.
type Player struct {
	mu          sync.Mutex
	name        string
	initialGold int
	gold        int
}

// NewPlayer creates a player holding initialGold.
func NewPlayer(name string, initialGold int) *Player {
	return &Player{
		name:        name,
		initialGold: initialGold,
		gold:        initialGold,
	}
}

func (p *Player) Name() string {
	return p.name
}

// InitialGold returns the balance the player started the session with.
func (p *Player) InitialGold() int {
	return p.initialGold
}

// Balance returns the current gold balance.
func (p *Player) Balance() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gold
}

// Gain credits amount. Non-positive amounts are ignored.
func (p *Player) Gain(amount int) {
	if amount <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gold += amount
}

// Lose debits amount. Non-positive amounts are ignored and the balance is
// allowed to go negative.
func (p *Player) Lose(amount int) {
	if amount <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gold -= amount
}

// Stake debits amount only if the balance covers it.
func (p *Player) Stake(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStake, amount)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gold < amount {
		return fmt.Errorf("%w: balance %d, stake %d", ErrInsufficientGold, p.gold, amount)
	}
	p.gold -= amount
	return nil
}

func (p *Player) String() string {
	return p.name
}
