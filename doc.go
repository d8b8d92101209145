// Package knapsack is the root of the knapsack module: an exact 0/1
// knapsack solver with the tooling around it.
//
// 🚀 What is in here?
//
//	knapsack/   — the Solver: DP table, decision bitset, backtracking
//	generator/  — reproducible random instances
//	bench/      — running-time / memory analysis with CSV reports
//	config/     — YAML configuration for the CLI and the harness
//	cmd/knapsack — CLI: "solve" for one instance, "bench" for the analysis
//	examples/   — runnable demo program
//
// ✨ Why this layout?
//
//   - The solver is pure: no logging, no globals, no panics on user input.
//   - Tooling depends on the solver, never the other way round.
//   - Everything random is seeded, so every report is reproducible.
//
//	go get github.com/katalvlaran/knapsack/knapsack
package knapsack
