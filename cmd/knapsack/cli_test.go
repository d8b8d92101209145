package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/knapsack"
)

// setup resets the package globals the commands read.
func setup(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	solveWeights, solveValues, solveCapacity, solveTables = "", "", 0, false
	t.Cleanup(func() {
		solveWeights, solveValues, solveCapacity, solveTables = "", "", 0, false
	})
}

func TestSolve_Flags(t *testing.T) {
	setup(t)
	solveWeights, solveValues, solveCapacity = "8,8,1", "3, 2, 9", 10

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runSolve(cmd, nil))
	got := out.String()
	assert.Contains(t, got, "Maximum value: 12\n")
	assert.Contains(t, got, "- Item 1: Value = 3, Weight = 8\n")
	assert.Contains(t, got, "- Item 3: Value = 9, Weight = 1\n")
	assert.NotContains(t, got, "Item 2:")
}

func TestSolve_Interactive(t *testing.T) {
	setup(t)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("3\n8 8 1\n3 2 9\n0\n"))
	cmd.SetOut(&out)

	require.NoError(t, runSolve(cmd, nil))
	got := out.String()
	assert.Contains(t, got, "Enter the number of items: ")
	assert.Contains(t, got, "Enter knapsack capacity: ")
	assert.Contains(t, got, "Maximum value: 0\n")
	assert.Contains(t, got, "No items selected! This could be due to either capacity = 0, or no items fit")
}

func TestSolve_InteractiveTruncated(t *testing.T) {
	setup(t)

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("2\n1"))
	cmd.SetOut(&bytes.Buffer{})

	assert.Error(t, runSolve(cmd, nil))
}

func TestSolve_Errors(t *testing.T) {
	setup(t)
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	solveWeights, solveValues, solveCapacity = "1,2", "1", 3
	assert.ErrorIs(t, runSolve(cmd, nil), knapsack.ErrDimensionMismatch)

	solveWeights, solveValues = "1,x", "1,2"
	assert.Error(t, runSolve(cmd, nil))

	solveWeights, solveValues, solveCapacity = "1", "1", -1
	assert.ErrorIs(t, runSolve(cmd, nil), knapsack.ErrNegativeCapacity)
}

func TestSolve_Tables(t *testing.T) {
	setup(t)
	solveWeights, solveValues, solveCapacity, solveTables = "1,2", "3,4", 2, true

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runSolve(cmd, nil))
	assert.Contains(t, out.String(), "DP Table:\n0 0 0\n0 3 3\n0 3 4\n")
	assert.Contains(t, out.String(), "Selection Table:\n")
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, 2 ,3 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	got, err = parseInts("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseInts("1,,2")
	assert.Error(t, err)
}

func TestBench_WritesCSV(t *testing.T) {
	setup(t)
	out := filepath.Join(t.TempDir(), "results.csv")
	cfg.Bench.Sizes = []int{5, 10}
	cfg.Bench.Output = out

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.Flags().AddFlagSet(benchCmd.Flags())

	require.NoError(t, runBench(cmd, nil))
	assert.Contains(t, buf.String(), "Verification passed!")
	assert.Contains(t, buf.String(), "Results saved to "+out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"Size", "Capacity", "Time(ms)", "Memory(KB)", "TheoreticalMemory(KB)"}, recs[0])
	assert.Equal(t, "5", recs[1][0])
	assert.Equal(t, "245", recs[1][1])
}

func TestBench_InvalidConfig(t *testing.T) {
	setup(t)
	cfg.Bench.Workers = 0

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.Flags().AddFlagSet(benchCmd.Flags())

	assert.ErrorIs(t, runBench(cmd, nil), config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	l, err = newLogger(config.LoggingConfig{Level: "warn", Format: "console"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(config.LoggingConfig{Level: "loud", Format: "json"}, false)
	assert.Error(t, err)
}
