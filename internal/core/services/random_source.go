package services

import (
	"math/rand/v2"
	"sync"
)

// RandomSource draws uniform integers in [0, n). Implementations must be
// safe for concurrent use.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

// NewGlobalSource returns a source backed by the runtime-seeded top-level generator.
func NewGlobalSource() RandomSource {
	return globalSource{}
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// lockedSource serialises access to a seeded generator so workers can share it.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedSource returns a reproducible source for the given seed.
func NewLockedSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
