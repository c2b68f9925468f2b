// RNG utilities for the optimiser.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Leiden run owns its RNG.
package community

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns an RNG seeded from the wall clock.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// permRange returns a permutation of 0..n-1 drawn from rng (Fisher–Yates).
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
