// Package random is the single source of nondeterminism for maze
// generation.
//
// What:
//
//   - Source wraps a seeded *math/rand.Rand and exposes the small set of
//     draws the generators need: Int, Range, Bool, Choice and Shuffle.
//
// Why:
//
//   - Reproducibility: the same seed yields the same link set, cell for
//     cell, on every run and every platform.
//   - Encapsulation: no generator reaches for the global math/rand state or
//     the wall clock directly; FromTime is the only time-derived entry point.
//
// Seed policy:
//
//   - New(0) uses DefaultSeed so that the zero value is still deterministic.
//   - FromTime() derives a seed from time.Now and records it, so a run can
//     be replayed by passing Seed() back to New.
//
// Concurrency:
//
//   - A Source is NOT safe for concurrent use. Each maze build owns one.
//
// Complexity:
//
//   - Int, Range, Bool, Choice: O(1). Shuffle: O(n) time, O(1) extra space.
package random
