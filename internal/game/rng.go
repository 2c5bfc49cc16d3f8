package game

import (
	"math/bits"
	"math/rand/v2"
)

// chachaSeed expands a 64-bit run seed into the 32-byte ChaCha8 seed buffer.
// Each byte is taken from a rotated/XOR-mixed view of the seed rather than a
// straight byte-cast so low-entropy seeds (0, 1, small days) still fill the
// whole buffer.
func chachaSeed(seed int64) [32]byte {
	var buf [32]byte
	u := uint64(seed)
	for i := range buf {
		rotated := bits.RotateLeft64(u, (i*13)%64)
		mixed := rotated ^ (u >> uint((i*7)%64)) ^ (0x9E3779B97F4A7C15 >> uint((i*3)%64))
		buf[i] = byte(mixed>>uint((i%8)*8)) ^ byte(i*0x5D)
	}
	return buf
}

// seededRNG builds the single deterministic stream every engine draw flows
// through. Non-cryptographic use is intentional; ChaCha8 is chosen for its
// counter-based stream, which makes the draw sequence stable across
// platforms for a given seed.
// #nosec G404
func seededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewChaCha8(chachaSeed(seed)))
}

// rngSource is the draw surface subsystems use; *rand.Rand satisfies it and
// tests substitute scripted rolls.
type rngSource interface {
	IntN(n int) int
	Float64() float64
}

// rollRange returns a uniform draw in the inclusive range [min, max].
func rollRange(rng rngSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}
