// Package ladder implements the randomized reward structure of a ladder climb:
// packets, rungs and the permutation sources used to lay them out.
//
// # Core Types
//
// Packet: an immutable outcome marker of kind Gold, Stop or Dead.
//
// Ladder: one rung of the climb holding exactly three packets, one of each
// kind, in a shuffled presentation order.
//
// Shuffler: the only source of non-determinism. The default shuffler draws from
// a cryptographic stream; a seeded shuffler replays the same layout for the same
// seed so a round can be verified after it has been played.
//
// # Verifiable Rounds
//
// Seeds bundles a server seed, a client seed and a nonce. The commitment of the
// server seed can be shown before the round starts; once the round is over the
// seeds are revealed and VerifyLayout rebuilds the exact ladders.
package ladder
