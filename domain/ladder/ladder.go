package ladder

import (
	"errors"
	"fmt"
)

// ErrInvalidPermutation is returned when a shuffler produces something that is
// not a permutation of the packet slots.
var ErrInvalidPermutation = errors.New("invalid permutation")

// Ladder is a single rung of the climb. Its height is derived from its position
// in the climb rather than from a link to the rung below.
type Ladder struct {
	index   int
	packets [PacketsPerRung]Packet
}

// Height returns the 1-based height of the rung, counted from the bottom.
func (l Ladder) Height() int {
	return l.index + 1
}

// Packets returns the packets of the rung in presentation order.
func (l Ladder) Packets() [PacketsPerRung]Packet {
	return l.packets
}

// Packet returns the packet in the given 1-based slot. The second result is
// false when the slot is outside 1..PacketsPerRung.
func (l Ladder) Packet(slot int) (Packet, bool) {
	if slot < 1 || slot > PacketsPerRung {
		return Packet{}, false
	}
	return l.packets[slot-1], true
}

// Build lays out height rungs, bottom to top. Each rung receives one packet of
// every kind in the order given by a fresh permutation drawn from s.
func Build(height int, s Shuffler) ([]Ladder, error) {
	if height < 1 {
		return nil, fmt.Errorf("ladder height must be positive, got %d", height)
	}
	if s == nil {
		return nil, errors.New("nil shuffler")
	}

	ladders := make([]Ladder, height)
	for i := range ladders {
		l, err := newLadder(i, s.Perm(PacketsPerRung))
		if err != nil {
			return nil, fmt.Errorf("rung %d: %w", i+1, err)
		}
		ladders[i] = l
	}
	return ladders, nil
}

// newLadder converts a permutation of 0..PacketsPerRung-1 into a rung. Value v
// at position i places the packet with code v+1 in slot i+1.
func newLadder(index int, perm []int) (Ladder, error) {
	if len(perm) != PacketsPerRung {
		return Ladder{}, fmt.Errorf("%w: expected %d entries, got %d", ErrInvalidPermutation, PacketsPerRung, len(perm))
	}

	var seen [PacketsPerRung]bool
	l := Ladder{index: index}
	for i, v := range perm {
		if v < 0 || v >= PacketsPerRung || seen[v] {
			return Ladder{}, fmt.Errorf("%w: %v", ErrInvalidPermutation, perm)
		}
		seen[v] = true
		l.packets[i] = NewPacket(KindFromCode(v + 1))
	}
	return l, nil
}

// Equal reports whether both rungs sit at the same height with the same layout.
func (l Ladder) Equal(other Ladder) bool {
	return l.index == other.index && l.packets == other.packets
}
