package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/knapsack"
)

// Row is the measurement of one benchmark case.
type Row struct {
	Size          int
	Capacity      int
	Elapsed       time.Duration
	MemoryKB      float64 // bytes allocated during Compute / 1024; 0 if not sampled
	TheoreticalKB float64 // DP + decision table bytes / 1024
	Value         int64
}

// Report is the outcome of one Runner.Run.
type Report struct {
	RunID string
	Rows  []Row // ordered by size, then repetition
}

// Runner executes benchmark cases.
type Runner struct {
	opts   Options
	logger *zap.Logger
}

// NewRunner validates opts and returns a Runner. A nil logger is replaced
// with a no-op logger.
func NewRunner(opts Options, logger *zap.Logger) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{opts: opts, logger: logger}, nil
}

// Run executes every size Repeat times with at most Workers cases in flight.
// Cancellation is checked between cases; a running Compute is not interrupted.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID))

	total := len(r.opts.Sizes) * r.opts.Repeat
	rows := make([]Row, total)

	if r.opts.SampleMemory && r.opts.Workers > 1 {
		log.Warn("memory samples are process-wide and will overlap across workers",
			zap.Int("workers", r.opts.Workers))
	}
	log.Info("benchmark started",
		zap.Ints("sizes", r.opts.Sizes),
		zap.Int("repeat", r.opts.Repeat),
		zap.Int("workers", r.opts.Workers),
		zap.Int64("seed", r.opts.Seed))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)

	for idx := 0; idx < total; idx++ {
		idx := idx
		size := r.opts.Sizes[idx/r.opts.Repeat]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			row, err := r.runCase(size, uint64(idx))
			if err != nil {
				return fmt.Errorf("size %d: %w", size, err)
			}
			rows[idx] = row
			log.Debug("case done",
				zap.Int("size", row.Size),
				zap.Int("capacity", row.Capacity),
				zap.Duration("elapsed", row.Elapsed),
				zap.Float64("memory_kb", row.MemoryKB),
				zap.Int64("value", row.Value))

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Error("benchmark failed", zap.Error(err))
		return Report{RunID: runID}, err
	}
	log.Info("benchmark finished", zap.Int("cases", total))

	return Report{RunID: runID, Rows: rows}, nil
}

// runCase generates the instance for stream idx and measures one Compute.
func (r *Runner) runCase(size int, stream uint64) (Row, error) {
	in, err := generator.Generate(size,
		generator.WithSeed(generator.DeriveSeed(r.opts.Seed, stream)),
		generator.WithMaxWeight(r.opts.MaxWeight),
		generator.WithMaxValue(r.opts.MaxValue),
		generator.WithCapacityRatio(r.opts.CapacityRatio),
	)
	if err != nil {
		return Row{}, err
	}

	s := knapsack.NewSolver(knapsack.WithMaxCells(r.opts.MaxCells))

	var before, after runtime.MemStats
	if r.opts.SampleMemory {
		runtime.ReadMemStats(&before)
	}
	start := time.Now()
	value, err := s.Compute(in.Weights, in.Values, in.Capacity)
	elapsed := time.Since(start)
	if err != nil {
		return Row{}, err
	}
	if r.opts.SampleMemory {
		runtime.ReadMemStats(&after)
	}

	row := Row{
		Size:          size,
		Capacity:      in.Capacity,
		Elapsed:       elapsed,
		TheoreticalKB: float64(knapsack.TableBytes(size, in.Capacity)) / 1024,
		Value:         value,
	}
	if r.opts.SampleMemory {
		row.MemoryKB = float64(after.TotalAlloc-before.TotalAlloc) / 1024
	}

	return row, nil
}

// Verify runs the known-answer instance (weights 8,8,1; values 3,2,9;
// capacity 10) and checks that the optimum is 12 and the selection is
// consistent with it.
func Verify() error {
	weights := []int{8, 8, 1}
	values := []int{3, 2, 9}

	res, err := knapsack.Solve(weights, values, 10)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if res.Value != 12 {
		return fmt.Errorf("Verify: expected 12, got %d: %w", res.Value, ErrVerificationFailed)
	}
	var sum int64
	for _, i := range res.Items {
		sum += int64(values[i])
	}
	if sum != res.Value || res.Weight > 10 {
		return fmt.Errorf("Verify: selection %v inconsistent: %w", res.Items, ErrVerificationFailed)
	}

	return nil
}
