// Package knapsack solves the 0/1 knapsack problem exactly with bottom-up
// dynamic programming and recovers the optimal item subset by backtracking.
//
// 🚀 What is the 0/1 knapsack?
//
//	Given N items, each with a non-negative weight and value, and a capacity,
//	choose a subset of items (each taken whole or not at all) whose total
//	weight does not exceed the capacity and whose total value is maximal.
//	Typical uses:
//	  • cargo and container loading
//	  • budget allocation across indivisible projects
//	  • batch selection under a resource limit
//
// ✨ Key features:
//   - exact O(N·C) time DP over an (N+1)×(C+1) table
//   - flat int64 arena for values, one bit per cell for decisions
//   - deterministic tie-break: an item is taken only when it strictly improves
//   - reconstruction after Compute returns, from a retained copy of the weights
//   - explicit sentinel errors instead of undefined behavior on bad input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/knapsack"
//
//	s := knapsack.NewSolver()
//	best, err := s.Compute([]int{8, 8, 1}, []int{3, 2, 9}, 10)
//	if err != nil {
//	  // handle ErrDimensionMismatch, ErrNegativeWeight, ...
//	}
//	items, _ := s.SelectedItems() // [0 2]
//
// Concurrency:
//
//	A Solver holds at most one "last computation" and is NOT safe for
//	concurrent use. Give every goroutine its own Solver; instances share
//	no state.
//
// Performance:
//
//   - Time:   O(N·C)
//   - Memory: O(N·C) int64 values + O(N·C) bits of decisions
//
// See example_test.go for runnable examples.
package knapsack
