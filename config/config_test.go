package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "analysis_results.csv", cfg.Bench.Output)
	assert.Equal(t, []int{5, 10, 20, 50, 100, 200, 500, 1000, 1500, 2000}, cfg.Bench.Sizes)
	assert.InDelta(t, 0.7, cfg.Bench.CapacityRatio, 1e-12)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knapsack.yaml")
	data := []byte(`
solver:
  max_cells: 1000000
bench:
  sizes: [1, 2, 3]
  seed: 9
  workers: 4
  simple: true
  output: out.csv
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000000, cfg.Solver.MaxCells)
	assert.Equal(t, []int{1, 2, 3}, cfg.Bench.Sizes)
	assert.Equal(t, int64(9), cfg.Bench.Seed)
	assert.Equal(t, 4, cfg.Bench.Workers)
	assert.True(t, cfg.Bench.Simple)
	assert.Equal(t, "out.csv", cfg.Bench.Output)
	assert.Equal(t, 100, cfg.Bench.MaxWeight, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.yaml")
	cfg := DefaultConfig()
	cfg.Bench.Sizes = []int{7}
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvOutput, "env.csv")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvLogLevel, "WARN")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.csv", cfg.Bench.Output)
	assert.Equal(t, int64(42), cfg.Bench.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv(EnvSeed, "not-a-number")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative max cells", func(c *Config) { c.Solver.MaxCells = -1 }},
		{"no sizes", func(c *Config) { c.Bench.Sizes = nil }},
		{"negative size", func(c *Config) { c.Bench.Sizes = []int{3, -1} }},
		{"zero max weight", func(c *Config) { c.Bench.MaxWeight = 0 }},
		{"negative ratio", func(c *Config) { c.Bench.CapacityRatio = -1 }},
		{"zero workers", func(c *Config) { c.Bench.Workers = 0 }},
		{"zero repeat", func(c *Config) { c.Bench.Repeat = 0 }},
		{"empty output", func(c *Config) { c.Bench.Output = "" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
