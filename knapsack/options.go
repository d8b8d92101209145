package knapsack

// Option customizes a Solver at construction time.
type Option func(*Solver)

// WithMaxCells bounds the number of DP cells (N+1)·(C+1) that Compute may
// allocate. Zero means unlimited. Panics on a negative limit.
func WithMaxCells(n int) Option {
	if n < 0 {
		panic("knapsack: WithMaxCells(n<0)")
	}
	return func(s *Solver) {
		s.maxCells = n
	}
}
