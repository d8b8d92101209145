package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/knapsack"
)

var (
	solveWeights  string
	solveValues   string
	solveCapacity int
	solveTables   bool
)

// solveCmd solves one instance given by flags or read interactively
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single knapsack instance",
	Long: `Solves one 0/1 knapsack instance and prints the maximum value and the
selected items.

Without --weights/--values the instance is read interactively from stdin.

Example:
  knapsack solve --weights 8,8,1 --values 3,2,9 --capacity 10`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveWeights, "weights", "", "comma-separated item weights")
	solveCmd.Flags().StringVar(&solveValues, "values", "", "comma-separated item values")
	solveCmd.Flags().IntVar(&solveCapacity, "capacity", 0, "knapsack capacity")
	solveCmd.Flags().BoolVar(&solveTables, "tables", false, "also print the DP and selection tables")
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		weights, values []int
		capacity        int
		err             error
	)
	if solveWeights != "" || solveValues != "" {
		if weights, err = parseInts(solveWeights); err != nil {
			return fmt.Errorf("--weights: %w", err)
		}
		if values, err = parseInts(solveValues); err != nil {
			return fmt.Errorf("--values: %w", err)
		}
		capacity = solveCapacity
	} else {
		weights, values, capacity, err = promptInstance(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
	}

	var opts []knapsack.Option
	if cfg != nil && cfg.Solver.MaxCells > 0 {
		opts = append(opts, knapsack.WithMaxCells(cfg.Solver.MaxCells))
	}
	s := knapsack.NewSolver(opts...)

	logger.Debug("Solving instance", zap.Int("items", len(weights)), zap.Int("capacity", capacity))
	best, err := s.Compute(weights, values, capacity)
	if err != nil {
		return err
	}
	items, err := s.SelectedItems()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nResults -")
	fmt.Fprintf(out, "Maximum value: %d\n", best)
	fmt.Fprintln(out, "Selected items:")
	if len(items) == 0 {
		fmt.Fprintln(out, "No items selected! This could be due to either capacity = 0, or no items fit")
	}
	for _, i := range items {
		fmt.Fprintf(out, "- Item %d: Value = %d, Weight = %d\n", i+1, values[i], weights[i])
	}

	if solveTables {
		fmt.Fprintln(out)
		return s.WriteTables(out)
	}

	return nil
}

// parseInts parses a comma-separated list of integers. An empty string is an
// empty list.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// promptInstance reads N, N weights, N values and the capacity from in,
// writing prompts to out.
func promptInstance(in io.Reader, out io.Writer) (weights, values []int, capacity int, err error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(sc.Text())
	}

	fmt.Fprint(out, "Enter the number of items: ")
	n, err := next()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("number of items: %w", err)
	}
	if n < 0 {
		return nil, nil, 0, errors.New("number of items must be >= 0")
	}

	weights = make([]int, n)
	values = make([]int, n)

	fmt.Fprintln(out, "\nEnter the weights of each item:")
	for i := 0; i < n; i++ {
		fmt.Fprintf(out, "Item %d: ", i+1)
		if weights[i], err = next(); err != nil {
			return nil, nil, 0, fmt.Errorf("weight of item %d: %w", i+1, err)
		}
	}

	fmt.Fprintln(out, "\nEnter values of each item:")
	for i := 0; i < n; i++ {
		fmt.Fprintf(out, "Item %d: ", i+1)
		if values[i], err = next(); err != nil {
			return nil, nil, 0, fmt.Errorf("value of item %d: %w", i+1, err)
		}
	}

	fmt.Fprint(out, "\nEnter knapsack capacity: ")
	if capacity, err = next(); err != nil {
		return nil, nil, 0, fmt.Errorf("capacity: %w", err)
	}

	return weights, values, capacity, nil
}
