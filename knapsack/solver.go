package knapsack

import (
	"fmt"
	"slices"
)

// Solver computes optimal 0/1 knapsack solutions and keeps the tables of the
// last successful Compute for reconstruction.
//
// The zero value is ready to use and behaves like NewSolver() without options.
// A Solver is not safe for concurrent use.
type Solver struct {
	maxCells int // 0 ⇒ unlimited

	dp       []int64 // flat (n+1)×(capacity+1) arena, offset i*cols+w
	decision bitset  // decision[i][w] at the same offset
	weights  []int   // retained copy of the weights of the last Compute
	n        int     // number of items of the last Compute
	capacity int     // capacity of the last Compute
	cols     int     // capacity+1
	ready    bool    // tables hold a complete computation
}

// NewSolver returns a Solver configured by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Compute fills the DP and decision tables for the given items and capacity
// and returns the optimal total value dp[N][capacity].
//
// Algorithm Outline:
//  1. Validate inputs; on failure the previous computation is discarded.
//  2. Row 0 is all zeros with no decisions.
//  3. For i = 1..N, w = 0..capacity:
//     if weights[i-1] > w: dp[i][w] = dp[i-1][w]
//     else: with = values[i-1] + dp[i-1][w-weights[i-1]], without = dp[i-1][w];
//     take with only when with > without and mark decision[i][w].
//  4. Retain a copy of weights for SelectedItems.
//
// Ties favor exclusion: an item is recorded only when it strictly improves
// the value, which fixes which subset SelectedItems reports among several
// optimal ones.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrNegativeValue,
// ErrNegativeCapacity, ErrValueOverflow, ErrTableTooLarge.
//
// Complexity: O(N·C) time, O(N·C) memory.
func (s *Solver) Compute(weights, values []int, capacity int) (int64, error) {
	s.Reset()

	cells, err := validateInput(weights, values, capacity, s.maxCells)
	if err != nil {
		return 0, err
	}

	var (
		n    = len(weights)
		cols = capacity + 1
		dp   = make([]int64, cells)
		dec  = newBitset(cells)
	)

	var (
		i, w          int   // row (item prefix) and column (weight budget)
		wt            int   // weight of item i-1
		val           int64 // value of item i-1
		prev, cur     int   // row offsets of i-1 and i
		with, without int64
	)
	for i = 1; i <= n; i++ {
		wt, val = weights[i-1], int64(values[i-1])
		prev, cur = (i-1)*cols, i*cols
		for w = 0; w <= capacity; w++ {
			without = dp[prev+w]
			if wt > w {
				dp[cur+w] = without
				continue
			}
			with = val + dp[prev+w-wt]
			if with > without {
				dp[cur+w] = with
				dec.set(cur + w)
			} else {
				dp[cur+w] = without
			}
		}
	}

	s.dp = dp
	s.decision = dec
	s.weights = slices.Clone(weights)
	s.n = n
	s.capacity = capacity
	s.cols = cols
	s.ready = true

	return dp[n*cols+capacity], nil
}

// SelectedItems reconstructs the optimal subset of the last Compute by
// walking the decision table from (N, capacity) back to row 0.
// Indices are returned in ascending order; the slice is empty (not nil)
// when nothing is selected.
//
// Errors: ErrNotComputed if no successful Compute preceded the call.
//
// Complexity: O(N) time, O(k) memory for k selected items.
func (s *Solver) SelectedItems() ([]int, error) {
	if !s.ready {
		return nil, fmt.Errorf("%s: %w", methodSelectedItems, ErrNotComputed)
	}

	items := make([]int, 0)
	i, w := s.n, s.capacity
	for i > 0 && w > 0 {
		if s.decision.test(i*s.cols + w) {
			items = append(items, i-1)
			w -= s.weights[i-1]
		}
		i--
	}
	slices.Reverse(items)

	return items, nil
}

// Value returns the optimal value of the last Compute.
func (s *Solver) Value() (int64, error) {
	if !s.ready {
		return 0, fmt.Errorf("%s: %w", methodValue, ErrNotComputed)
	}

	return s.dp[s.n*s.cols+s.capacity], nil
}

// Len returns the item count of the last Compute, or 0 when none is held.
func (s *Solver) Len() int { return s.n }

// Capacity returns the capacity of the last Compute, or 0 when none is held.
func (s *Solver) Capacity() int { return s.capacity }

// Reset drops the retained tables. Configuration set by options is kept.
func (s *Solver) Reset() {
	s.dp = nil
	s.decision = nil
	s.weights = nil
	s.n = 0
	s.capacity = 0
	s.cols = 0
	s.ready = false
}
