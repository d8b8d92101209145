package generator

import "math/rand"

// Option customizes Generate. Option constructors panic on meaningless
// values; Generate itself never panics.
type Option func(*config)

// WithSeed seeds a fresh RNG. Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxWeight sets the inclusive upper bound for weights. Panics if limit < 1.
func WithMaxWeight(limit int) Option {
	if limit < 1 {
		panic("generator: WithMaxWeight(max<1)")
	}
	return func(c *config) {
		c.maxWeight = limit
	}
}

// WithMaxValue sets the inclusive upper bound for values. Panics if limit < 1.
func WithMaxValue(limit int) Option {
	if limit < 1 {
		panic("generator: WithMaxValue(max<1)")
	}
	return func(c *config) {
		c.maxValue = limit
	}
}

// WithCapacityRatio scales the derived capacity ratio·n·70.
// Panics if ratio is negative.
func WithCapacityRatio(ratio float64) Option {
	if ratio < 0 {
		panic("generator: WithCapacityRatio(ratio<0)")
	}
	return func(c *config) {
		c.capacityRatio = ratio
	}
}

// WithCapacity fixes the capacity regardless of n. Panics if capacity < 0.
func WithCapacity(capacity int) Option {
	if capacity < 0 {
		panic("generator: WithCapacity(capacity<0)")
	}
	return func(c *config) {
		c.capacity = capacity
	}
}
