// Package config holds the YAML configuration shared by the knapsack CLI and
// the benchmarking harness.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file settings.
const (
	EnvOutput   = "KNAPSACK_OUTPUT"
	EnvSeed     = "KNAPSACK_SEED"
	EnvLogLevel = "KNAPSACK_LOG_LEVEL"
)

// Config holds all knapsack tool configuration.
type Config struct {
	// Solver limits
	Solver SolverConfig `yaml:"solver"`

	// Benchmark harness
	Bench BenchConfig `yaml:"bench"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig bounds what a single Compute may allocate.
type SolverConfig struct {
	MaxCells int `yaml:"max_cells"` // 0 = unlimited
}

// BenchConfig configures the benchmarking harness.
type BenchConfig struct {
	Sizes         []int   `yaml:"sizes"`
	Seed          int64   `yaml:"seed"` // 0 = generator default
	MaxWeight     int     `yaml:"max_weight"`
	MaxValue      int     `yaml:"max_value"`
	CapacityRatio float64 `yaml:"capacity_ratio"`
	Workers       int     `yaml:"workers"`
	Repeat        int     `yaml:"repeat"` // runs per size
	SampleMemory  bool    `yaml:"sample_memory"`
	Simple        bool    `yaml:"simple"` // Size,Time(ms) only
	Output        string  `yaml:"output"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Sizes:         []int{5, 10, 20, 50, 100, 200, 500, 1000, 1500, 2000},
			MaxWeight:     100,
			MaxValue:      100,
			CapacityRatio: 0.7,
			Workers:       1,
			Repeat:        1,
			SampleMemory:  true,
			Output:        "analysis_results.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Bench.Output = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Bench.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Solver.MaxCells < 0 {
		return fmt.Errorf("solver.max_cells must be >= 0: %w", ErrInvalidConfig)
	}
	b := c.Bench
	if len(b.Sizes) == 0 {
		return fmt.Errorf("bench.sizes must not be empty: %w", ErrInvalidConfig)
	}
	for _, n := range b.Sizes {
		if n < 0 {
			return fmt.Errorf("bench.sizes contains %d: %w", n, ErrInvalidConfig)
		}
	}
	if b.MaxWeight < 1 || b.MaxValue < 1 {
		return fmt.Errorf("bench.max_weight and bench.max_value must be >= 1: %w", ErrInvalidConfig)
	}
	if b.CapacityRatio < 0 {
		return fmt.Errorf("bench.capacity_ratio must be >= 0: %w", ErrInvalidConfig)
	}
	if b.Workers < 1 {
		return fmt.Errorf("bench.workers must be >= 1: %w", ErrInvalidConfig)
	}
	if b.Repeat < 1 {
		return fmt.Errorf("bench.repeat must be >= 1: %w", ErrInvalidConfig)
	}
	if b.Output == "" {
		return fmt.Errorf("bench.output must be set: %w", ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}

	return nil
}
