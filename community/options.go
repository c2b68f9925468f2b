package community

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultResolution is the bipartite CPM resolution γ.
	DefaultResolution = 0.5
	// DefaultIterations caps the number of optimiser passes.
	DefaultIterations = 100
)

type config struct {
	seed       int64
	seeded     bool
	iterations int
	resolution float64
	weighted   bool
}

// Option configures the optimiser.
type Option func(*config)

// WithSeed makes runs reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithIterations caps the number of Leiden passes. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("community: WithIterations(%d): must be >= 1", n))
	}
	return func(c *config) { c.iterations = n }
}

// WithResolution sets γ for the bipartite CPM. It is validated when the
// partitioner runs (ErrBadResolution).
func WithResolution(gamma float64) Option {
	return func(c *config) { c.resolution = gamma }
}

// WithEdgeWeights makes the optimiser use edge weights instead of counting
// every edge as 1.
func WithEdgeWeights() Option {
	return func(c *config) { c.weighted = true }
}

func newConfig(opts ...Option) config {
	cfg := config{iterations: DefaultIterations, resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) rng() *rand.Rand {
	if c.seeded {
		return rngFromSeed(c.seed)
	}
	return rngFromClock()
}
