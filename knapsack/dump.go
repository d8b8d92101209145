package knapsack

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTables writes the DP table followed by the decision table of the last
// Compute to w, one row per line with cells separated by spaces.
// Decisions are printed as 1/0. Intended for debugging small instances.
//
// Errors: ErrNotComputed, or the first write error from w.
//
// Complexity: O(N·C).
func (s *Solver) WriteTables(w io.Writer) error {
	if !s.ready {
		return fmt.Errorf("%s: %w", methodWriteTables, ErrNotComputed)
	}

	bw := bufio.NewWriter(w)
	var i, c int

	fmt.Fprintln(bw, "DP Table:")
	for i = 0; i <= s.n; i++ {
		for c = 0; c < s.cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprint(bw, s.dp[i*s.cols+c])
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintln(bw, "\nSelection Table:")
	for i = 0; i <= s.n; i++ {
		for c = 0; c < s.cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			if s.decision.test(i*s.cols + c) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteTables, err)
	}

	return nil
}
