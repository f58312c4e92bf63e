// Package entropy supplies random sources for the pattern generators.
// Generators take an explicit *rand.Rand; this package decides how it is
// seeded. A zero seed draws a fresh one from crypto/rand.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	mrand "math/rand"
)

// Seed returns a non-zero seed from crypto/rand.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen; fall back to a fixed seed so generation still works.
		slog.Warn("crypto/rand unavailable, using fixed seed", "error", err)
		return 1
	}
	// Clear the sign bit so seeds print as positive numbers.
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Resolve returns seed unchanged, or a fresh one when seed is 0.
func Resolve(seed int64) int64 {
	if seed == 0 {
		return Seed()
	}
	return seed
}

// NewRand returns a deterministic source for seed. A zero seed is replaced
// with a fresh one.
func NewRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(Resolve(seed)))
}

// Source hands out generator sources. With a fixed base seed every call
// returns the next source in a reproducible sequence; with base 0 each
// call is independently seeded.
type Source struct {
	base int64
	n    int64
}

// NewSource creates a Source from a configured seed.
func NewSource(base int64) *Source {
	return &Source{base: base}
}

// Next returns the seed for the next generation and a source built from it.
func (s *Source) Next() (int64, *mrand.Rand) {
	var seed int64
	if s.base == 0 {
		seed = Seed()
	} else {
		seed = s.base + s.n
		s.n++
	}
	return seed, mrand.New(mrand.NewSource(seed))
}
