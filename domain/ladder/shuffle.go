package ladder

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
	"go.dedis.ch/kyber/v4/xof/blake2xb"
	"golang.org/x/crypto/blake2b"
)

// Shuffler produces uniformly random permutations of 0..n-1.
// *math/rand.Rand satisfies it as well.
type Shuffler interface {
	Perm(n int) []int
}

var suite suites.Suite = suites.MustFind("Ed25519")

// streamShuffler runs a Fisher-Yates shuffle over a cipher stream. It is not
// safe for concurrent use.
type streamShuffler struct {
	stream cipher.Stream
}

// NewShuffler returns a shuffler backed by the suite's cryptographic random
// stream.
func NewShuffler() Shuffler {
	return &streamShuffler{stream: suite.RandomStream()}
}

// NewSeededShuffler returns a deterministic shuffler: the same seed always
// yields the same sequence of permutations.
func NewSeededShuffler(seed []byte) Shuffler {
	key := blake2b.Sum256(seed)
	return &streamShuffler{stream: blake2xb.New(key[:])}
}

func (s *streamShuffler) Perm(n int) []int {
	if n <= 0 {
		return []int{}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		// random.Int draws from 1..mod-1, so shift a draw over 1..i+1 down to 0..i.
		j := int(random.Int(big.NewInt(int64(i+2)), s.stream).Int64()) - 1
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
