package game

import (
	"errors"
	"fmt"
	"math"
)

var ErrStakeTooLarge = errors.New("top payout overflows")

// MaxHeight is the tallest climb the payout schedule covers.
const MaxHeight = 5

// payoutTenths holds the payout multiple of the bet for each height, in tenths.
var payoutTenths = [MaxHeight + 1]int{
	0,
	17,  // 1.7x
	40,  // 4x
	112, // 11.2x
	328, // 32.8x
	976, // 97.6x
}

// Payout returns the prize for clearing the rung at height: the bet times the
// rung's multiple, truncated to whole gold, times multiplier. Heights outside
// 1..MaxHeight pay nothing.
func Payout(height, bet, multiplier int) int {
	if height < 1 || height > MaxHeight {
		return 0
	}
	return bet * payoutTenths[height] / 10 * multiplier
}

// CheckPayoutRange returns ErrStakeTooLarge when the top rung's payout for bet
// and multiplier does not fit in an int. Non-positive values are left to the
// bet and multiplier checks.
func CheckPayoutRange(bet, multiplier int) error {
	if bet <= 0 || multiplier <= 0 {
		return nil
	}
	top := payoutTenths[MaxHeight]
	if bet > math.MaxInt/top || bet*top/10 > math.MaxInt/multiplier {
		return fmt.Errorf("%w: bet %d, multiplier %d", ErrStakeTooLarge, bet, multiplier)
	}
	return nil
}
