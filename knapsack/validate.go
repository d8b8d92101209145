package knapsack

import (
	"fmt"
	"math"
)

// validateInput checks the Compute preconditions in a fixed priority order:
// shape, then weights, values, capacity, value overflow and table size.
// It returns the number of DP cells on success.
//
// Complexity: O(N).
func validateInput(weights, values []int, capacity, maxCells int) (int, error) {
	if len(weights) != len(values) {
		return 0, fmt.Errorf("%s: len(weights)=%d, len(values)=%d: %w",
			methodCompute, len(weights), len(values), ErrDimensionMismatch)
	}

	var (
		i     int   // item index
		total int64 // running sum of values
	)
	for i = range weights {
		if weights[i] < 0 {
			return 0, fmt.Errorf("%s: item %d weight %d: %w", methodCompute, i, weights[i], ErrNegativeWeight)
		}
	}
	for i = range values {
		if values[i] < 0 {
			return 0, fmt.Errorf("%s: item %d value %d: %w", methodCompute, i, values[i], ErrNegativeValue)
		}
		if int64(values[i]) > math.MaxInt64-total {
			return 0, fmt.Errorf("%s: at item %d: %w", methodCompute, i, ErrValueOverflow)
		}
		total += int64(values[i])
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%s: capacity %d: %w", methodCompute, capacity, ErrNegativeCapacity)
	}

	cells, ok := cellCount(len(weights), capacity)
	if !ok {
		return 0, fmt.Errorf("%s: %d items × capacity %d: %w", methodCompute, len(weights), capacity, ErrTableTooLarge)
	}
	if maxCells > 0 && cells > maxCells {
		return 0, fmt.Errorf("%s: %d cells exceed limit %d: %w", methodCompute, cells, maxCells, ErrTableTooLarge)
	}

	return cells, nil
}

// cellCount returns (n+1)·(capacity+1) and false if the product overflows int.
func cellCount(n, capacity int) (int, bool) {
	if n < 0 || capacity < 0 || n == math.MaxInt || capacity == math.MaxInt {
		return 0, false
	}
	rows, cols := n+1, capacity+1
	if rows > math.MaxInt/cols {
		return 0, false
	}

	return rows * cols, true
}
