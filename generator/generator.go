package generator

import (
	"fmt"
	"math"
)

// Instance is one generated knapsack problem.
type Instance struct {
	Weights  []int
	Values   []int
	Capacity int
}

// Len returns the number of items.
func (in Instance) Len() int { return len(in.Weights) }

// Generate draws an instance of n items.
//
// Errors: ErrBadSize if n < 0; ErrCapacityOverflow if the derived capacity
// does not fit in int.
//
// Complexity: O(n).
func Generate(n int, opts ...Option) (Instance, error) {
	if n < 0 {
		return Instance{}, fmt.Errorf("Generate: n=%d: %w", n, ErrBadSize)
	}
	cfg := newConfig(opts...)

	capacity := cfg.capacity
	if capacity < 0 {
		c := cfg.capacityRatio * float64(n) * defaultCapacityUnit
		if c >= math.MaxInt {
			return Instance{}, fmt.Errorf("Generate: n=%d ratio=%g: %w", n, cfg.capacityRatio, ErrCapacityOverflow)
		}
		capacity = int(c)
	}

	in := Instance{
		Weights:  make([]int, n),
		Values:   make([]int, n),
		Capacity: capacity,
	}
	for i := 0; i < n; i++ {
		in.Weights[i] = 1 + cfg.rng.Intn(cfg.maxWeight)
		in.Values[i] = 1 + cfg.rng.Intn(cfg.maxValue)
	}

	return in, nil
}
