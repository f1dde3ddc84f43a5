package prng

import (
	"math/rand"
	"time"
)

// Source wraps a seeded math/rand generator so every random draw of the
// effect can be reproduced from a single seed.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a source with the given seed. A zero seed uses the current time.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually in use.
func (s *Source) Seed() int64 { return s.seed }

// Intn returns a uniform integer in [0, n). n <= 0 yields 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 returns a uniform float in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}
