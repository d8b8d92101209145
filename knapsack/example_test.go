package knapsack_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ExampleSolver shows the two-step Compute / SelectedItems flow on the
// classic 3-item instance.
func ExampleSolver() {
	weights := []int{8, 8, 1}
	values := []int{3, 2, 9}

	s := knapsack.NewSolver()
	best, err := s.Compute(weights, values, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	items, _ := s.SelectedItems()
	fmt.Printf("value=%d items=%v\n", best, items)
	// Output:
	// value=12 items=[0 2]
}

// ExampleSolve uses the one-shot helper with item records.
func ExampleSolve() {
	weights, values := knapsack.Split([]knapsack.Item{
		{Weight: 23, Value: 92},
		{Weight: 31, Value: 57},
		{Weight: 29, Value: 49},
		{Weight: 44, Value: 68},
		{Weight: 53, Value: 60},
		{Weight: 38, Value: 43},
		{Weight: 63, Value: 67},
		{Weight: 85, Value: 84},
		{Weight: 89, Value: 87},
		{Weight: 82, Value: 72},
	})

	res, err := knapsack.Solve(weights, values, 165)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%d weight=%d items=%v\n", res.Value, res.Weight, res.Items)
	// Output:
	// value=309 weight=165 items=[0 1 2 3 5]
}

// ExampleSolver_WriteTables dumps the tables of a tiny instance.
func ExampleSolver_WriteTables() {
	s := knapsack.NewSolver()
	if _, err := s.Compute([]int{1, 2}, []int{3, 4}, 2); err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = s.WriteTables(os.Stdout)
	// Output:
	// DP Table:
	// 0 0 0
	// 0 3 3
	// 0 3 4
	//
	// Selection Table:
	// 0 0 0
	// 0 1 1
	// 0 0 1
}

// ExampleSolver_SelectedItems_notComputed shows the explicit failure mode.
func ExampleSolver_SelectedItems_notComputed() {
	s := knapsack.NewSolver()
	_, err := s.SelectedItems()
	fmt.Println(errors.Is(err, knapsack.ErrNotComputed))
	// Output:
	// true
}
