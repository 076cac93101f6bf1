package octree

import "math/rand"

// Rand is the source of randomness for tree generation and material
// sampling. Generation draws from it in a fixed order, so a seeded
// implementation reproduces the exact same tree and materials on every run.
type Rand interface {
	// Float32 returns a uniform draw in [0, 1).
	Float32() float32

	// Gauss returns a draw from a normal distribution with the given mean
	// and standard deviation. The support is unbounded; callers tolerate
	// physically implausible values.
	Gauss(mean, stdev float32) float32
}

type seededRand struct {
	*rand.Rand
}

// NewRand creates the default math/rand backed source for a seed.
func NewRand(seed int64) Rand {
	return &seededRand{rand.New(rand.NewSource(seed))}
}

func (r *seededRand) Gauss(mean, stdev float32) float32 {
	return mean + stdev*float32(r.NormFloat64())
}
