// Package threshold implements exact-count thresholding of the strict
// upper triangle of a square weight matrix.
//
// The package provides:
//
//   - UpperTriangle — derive the strict-upper-triangle view of a square
//     matrix (diagonal and lower triangle zeroed), the precondition every
//     call to Threshold relies on.
//   - Threshold — keep exactly k cells: the cutoff is the k-th largest
//     candidate value; cells above it always survive, cells below are
//     always zeroed, and ties at the cutoff are resolved by drawing a
//     uniformly random subset without replacement.
//
// Randomness is confined to Options.Rand, so tie-breaking is seedable and
// fully deterministic in tests. Threshold never mutates its input.
package threshold
