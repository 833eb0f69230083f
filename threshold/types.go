// Package threshold: options and result types for exact-count thresholding.
package threshold

import "math/rand"

// Options configures Threshold.
//
// Fields:
//   - Rand — source of randomness for tie-breaking at the cutoff value.
//     A nil Rand falls back to the process-global source (non-deterministic
//     runs, matching one-shot CLI use). Inject a seeded *rand.Rand to make
//     tie-breaking reproducible.
//
// Example:
//
//	opts := threshold.DefaultOptions()
//	opts.Rand = rand.New(rand.NewSource(42)) // reproducible tie-breaks
//
//	out, res, err := threshold.Threshold(triu, k, &opts)
type Options struct {
	Rand *rand.Rand
}

// DefaultOptions returns the documented defaults: nil Rand, i.e. the
// process-global source.
func DefaultOptions() Options {
	return Options{}
}

// Result reports how the cutoff partitioned the candidate cells. It exists
// so callers can surface what happened (the original tool printed the
// threshold and tie counts) without recomputing anything.
type Result struct {
	// Thresh is the k-th largest candidate value, the cutoff.
	Thresh float64
	// Greater counts candidates strictly above Thresh; these always survive.
	Greater int
	// Ties counts candidates exactly at Thresh; Keep-Greater of them are
	// chosen uniformly at random to survive.
	Ties int
	// Keep is the total number of survivors, always equal to the requested k.
	Keep int
}
