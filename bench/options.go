package bench

import (
	"fmt"

	"github.com/katalvlaran/knapsack/config"
)

// Options configures a Runner.
type Options struct {
	Sizes         []int
	Seed          int64
	MaxWeight     int
	MaxValue      int
	CapacityRatio float64
	Workers       int
	Repeat        int
	SampleMemory  bool
	MaxCells      int // forwarded to knapsack.WithMaxCells; 0 = unlimited
}

// DefaultOptions mirrors config.DefaultConfig().
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

// OptionsFromConfig copies the harness-relevant settings out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	b := cfg.Bench

	return Options{
		Sizes:         append([]int(nil), b.Sizes...),
		Seed:          b.Seed,
		MaxWeight:     b.MaxWeight,
		MaxValue:      b.MaxValue,
		CapacityRatio: b.CapacityRatio,
		Workers:       b.Workers,
		Repeat:        b.Repeat,
		SampleMemory:  b.SampleMemory,
		MaxCells:      cfg.Solver.MaxCells,
	}
}

func (o Options) validate() error {
	if len(o.Sizes) == 0 {
		return fmt.Errorf("no sizes: %w", ErrBadOptions)
	}
	for _, n := range o.Sizes {
		if n < 0 {
			return fmt.Errorf("size %d: %w", n, ErrBadOptions)
		}
	}
	if o.MaxWeight < 1 || o.MaxValue < 1 {
		return fmt.Errorf("max weight/value must be >= 1: %w", ErrBadOptions)
	}
	if o.CapacityRatio < 0 {
		return fmt.Errorf("capacity ratio %g: %w", o.CapacityRatio, ErrBadOptions)
	}
	if o.Workers < 1 || o.Repeat < 1 {
		return fmt.Errorf("workers=%d repeat=%d: %w", o.Workers, o.Repeat, ErrBadOptions)
	}
	if o.MaxCells < 0 {
		return fmt.Errorf("max cells %d: %w", o.MaxCells, ErrBadOptions)
	}

	return nil
}
