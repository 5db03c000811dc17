package walk

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG provides deterministic random number generation for one stream of the
// exploration loop. Each stream derives its own seed from a master seed so
// that runs are reproducible and independent streams (random-fill tails,
// fixture hidden-graph construction) don't perturb each other. Derivation:
//
//	seed_stream = H(masterSeed, streamName, salt)
//
// where H is SHA-256 and the first 8 bytes are used as the int64 seed.
type RNG struct {
	seed       uint64
	streamName string
	source     *rand.Rand
}

// NewRNG derives a stream-specific RNG from a master seed, a stream name
// (e.g. "random-fill", "fixture-graph"), and an arbitrary salt (e.g. the
// problem instance name) so different configurations diverge.
func NewRNG(masterSeed uint64, streamName string, salt []byte) *RNG {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(streamName))
	h.Write(salt)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:       derivedSeed,
		streamName: streamName,
		source:     rand.New(rand.NewSource(int64(derivedSeed))),
	}
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("walk: RNG.Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// IntRange returns a pseudo-random integer in [min, max]. It panics if min > max.
func (r *RNG) IntRange(min, max int) int {
	if min > max {
		panic("walk: RNG.IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Seed returns the derived seed for this stream, useful for diagnostics.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StreamName returns the stream name this RNG was created for.
func (r *RNG) StreamName() string {
	return r.streamName
}
