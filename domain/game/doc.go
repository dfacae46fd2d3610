// Package game implements the ladder climb state machine: a player stakes a
// bet, then opens one packet per rung until a Dead or Stop packet ends the
// round, the top rung is cleared, or the player walks away.
//
// # Core Types
//
// Game: the round. It owns the ladders, the current height, the running prize
// and the continuation flag, and it settles the prize into the player's wallet
// exactly once when the round ends.
//
// Player: a wallet that outlives rounds. Gain, Lose and Stake are the only ways
// its balance changes.
//
// # Round Flow
//
// Opening a Gold packet sets the prize to the payout of the current rung and
// climbs one rung, or ends the round when it was the top rung. Stop ends the
// round with the bet as prize, Dead ends it with nothing. End forces the round
// to finish with whatever prize was last recorded.
package game
