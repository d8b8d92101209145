// Package generator produces reproducible random 0/1 knapsack instances for
// tests, examples and the benchmarking harness.
//
// Weights are drawn uniformly from [1, MaxWeight] and values from
// [1, MaxValue]. Unless a fixed capacity is given, the capacity is
// ratio · n · unit with the defaults ratio = 0.7 and unit = 70.
//
// Determinism:
//   - seed == 0 maps to a fixed default seed, so the zero configuration is
//     reproducible too.
//   - DeriveSeed splits one base seed into independent per-case streams, so
//     concurrent generation does not depend on goroutine scheduling.
//
// math/rand.Rand is NOT goroutine-safe; do not share one across goroutines.
package generator
