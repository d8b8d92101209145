package knapsack

import "errors"

// Sentinel errors. Callers branch with errors.Is; the solver wraps them with
// call-site context using %w.
var (
	// ErrDimensionMismatch is returned when len(weights) != len(values).
	ErrDimensionMismatch = errors.New("knapsack: weights and values length mismatch")

	// ErrNegativeWeight is returned when any item weight is negative.
	ErrNegativeWeight = errors.New("knapsack: negative weight")

	// ErrNegativeValue is returned when any item value is negative.
	ErrNegativeValue = errors.New("knapsack: negative value")

	// ErrNegativeCapacity is returned when the capacity is negative.
	ErrNegativeCapacity = errors.New("knapsack: negative capacity")

	// ErrValueOverflow is returned when the sum of all values does not fit in int64.
	ErrValueOverflow = errors.New("knapsack: total value overflows int64")

	// ErrTableTooLarge is returned when (N+1)·(C+1) overflows int or exceeds
	// the limit configured with WithMaxCells.
	ErrTableTooLarge = errors.New("knapsack: DP table too large")

	// ErrNotComputed is returned by reconstruction and inspection methods when
	// no successful Compute has happened since construction or Reset.
	ErrNotComputed = errors.New("knapsack: no computation available")
)

// Method names used as error context prefixes.
const (
	methodCompute       = "Compute"
	methodSelectedItems = "SelectedItems"
	methodValue         = "Value"
	methodWriteTables   = "WriteTables"
)

// Item is a single knapsack item. Items are identified by their position in
// the input sequence.
type Item struct {
	Weight int
	Value  int
}

// Result is the outcome of Solve.
type Result struct {
	// Value is the optimal total value.
	Value int64

	// Items are the selected item indices in ascending order.
	Items []int

	// Weight is the total weight of the selected items (≤ capacity).
	Weight int
}
