package core

import "math/rand/v2"

// NewRNG returns a deterministic PCG generator for the given seed, so
// random soups are reproducible across runs.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
