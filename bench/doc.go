// Package bench is the experimental-analysis harness for the knapsack solver.
//
// For every configured size it generates a reproducible random instance,
// times a single Compute on a fresh Solver, optionally samples the bytes the
// process allocated meanwhile, and records the theoretical table size. Rows
// are written as CSV with the header
//
//	Size,Capacity,Time(ms),Memory(KB),TheoreticalMemory(KB)
//
// or, in simple mode, Size,Time(ms).
//
// Cases may run concurrently (Options.Workers). Each worker owns its own
// Solver; memory samples are process-wide and therefore only exact with a
// single worker.
package bench
