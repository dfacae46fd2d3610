package ladder

import (
	crand "crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Seeds determine the layout of a verifiable round.
type Seeds struct {
	Server string
	Client string
	Nonce  uint64
}

// NewSeeds draws a fresh server seed from crypto/rand.
func NewSeeds(client string, nonce uint64) (Seeds, error) {
	var b [32]byte
	if _, err := crand.Read(b[:]); err != nil {
		return Seeds{}, fmt.Errorf("read server seed: %w", err)
	}
	return Seeds{
		Server: hex.EncodeToString(b[:]),
		Client: client,
		Nonce:  nonce,
	}, nil
}

// Commitment is the hex BLAKE2b-256 digest of the server seed. It can be
// published before the round without revealing the layout.
func (s Seeds) Commitment() string {
	sum := blake2b.Sum256([]byte(s.Server))
	return hex.EncodeToString(sum[:])
}

// Shuffler returns the deterministic shuffler for these seeds.
func (s Seeds) Shuffler() Shuffler {
	return NewSeededShuffler([]byte(fmt.Sprintf("%s:%s:%d", s.Server, s.Client, s.Nonce)))
}

// VerifyCommitment reports whether server hashes to commitment.
func VerifyCommitment(server, commitment string) bool {
	sum := blake2b.Sum256([]byte(server))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(commitment)) == 1
}

// VerifyLayout rebuilds the ladders from the seeds and compares them with the
// ladders that were actually played.
func VerifyLayout(s Seeds, ladders []Ladder) error {
	if len(ladders) == 0 {
		return fmt.Errorf("no ladders to verify")
	}
	expected, err := Build(len(ladders), s.Shuffler())
	if err != nil {
		return err
	}
	for i := range expected {
		if !expected[i].Equal(ladders[i]) {
			return fmt.Errorf("rung %d does not match the seeds", i+1)
		}
	}
	return nil
}
