// internal/rng/rng.go
//
// Random source abstraction for board sampling.
//
// Two implementations:
//   - Default(): crypto-backed, used for ad-hoc boards.
//   - NewSeeded(seed): deterministic PCG, used for daily puzzles so that the
//     same seed always replays the same board.
//
// Every sampling call in the generator takes a Source explicitly; there is no
// package-global generator state to override.

package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields uniform random values.
// Float64 returns values in [0, 1); IntN returns values in [0, n).
type Source interface {
	Float64() float64
	IntN(n int) int
}

// cryptoSource draws entropy from crypto/rand per call.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand exhaustion is effectively fatal elsewhere; degrade
		// to the runtime-seeded generator rather than failing a draw.
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (c cryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(c.Float64() * float64(n))
}

// Default returns the crypto-backed source.
func Default() Source { return cryptoSource{} }

// NewSeeded returns a deterministic source for the given seed.
// Equal seeds produce equal draw sequences.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
