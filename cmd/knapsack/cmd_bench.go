package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/bench"
)

var (
	benchOutput  string
	benchSimple  bool
	benchWorkers int
	benchSeed    int64
	benchSizes   []int
)

// benchCmd runs the running-time analysis
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the running-time analysis over random instances",
	Long: `Runs the known-answer verification, then times Compute on random
instances of each configured size and writes one CSV row per run.

Flags override the bench section of the config file.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVarP(&benchOutput, "output", "o", "", "CSV output path")
	benchCmd.Flags().BoolVar(&benchSimple, "simple", false, "write only Size,Time(ms)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "concurrent cases")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "base RNG seed")
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "instance sizes")
}

func runBench(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bc := cfg.Bench
	if cmd.Flags().Changed("output") {
		bc.Output = benchOutput
	}
	if cmd.Flags().Changed("simple") {
		bc.Simple = benchSimple
	}
	if cmd.Flags().Changed("workers") {
		bc.Workers = benchWorkers
	}
	if cmd.Flags().Changed("seed") {
		bc.Seed = benchSeed
	}
	if cmd.Flags().Changed("sizes") {
		bc.Sizes = benchSizes
	}
	cfg.Bench = bc
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Starting algorithm verification test -")
	if err := bench.Verify(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Verification passed!")

	return runAnalysis(ctx, cmd)
}

func runAnalysis(ctx context.Context, cmd *cobra.Command) error {
	r, err := bench.NewRunner(bench.OptionsFromConfig(cfg), logger)
	if err != nil {
		return err
	}
	rep, err := r.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, row := range rep.Rows {
		fmt.Fprintf(out, "Size: %d, Time: %.3f ms\n", row.Size, float64(row.Elapsed.Nanoseconds())/1e6)
	}

	f, err := os.Create(cfg.Bench.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.Bench.Output, err)
	}
	if err := bench.WriteCSV(f, rep.Rows, cfg.Bench.Simple); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("Results saved", zap.String("path", cfg.Bench.Output), zap.String("run_id", rep.RunID))
	fmt.Fprintf(out, "Results saved to %s\n", cfg.Bench.Output)

	return nil
}
