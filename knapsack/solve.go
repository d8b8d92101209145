package knapsack

// Solve runs Compute and SelectedItems on a fresh Solver and returns both
// results together with the total selected weight.
func Solve(weights, values []int, capacity int, opts ...Option) (Result, error) {
	s := NewSolver(opts...)
	best, err := s.Compute(weights, values, capacity)
	if err != nil {
		return Result{}, err
	}
	items, err := s.SelectedItems()
	if err != nil {
		return Result{}, err
	}

	var total int
	for _, idx := range items {
		total += weights[idx]
	}

	return Result{Value: best, Items: items, Weight: total}, nil
}

// Split converts item records into the parallel weights/values slices that
// Compute expects.
func Split(items []Item) (weights, values []int) {
	weights = make([]int, len(items))
	values = make([]int, len(items))
	for i, it := range items {
		weights[i] = it.Weight
		values[i] = it.Value
	}

	return weights, values
}
