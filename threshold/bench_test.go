package threshold_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/threshmat/threshold"
)

// benchmarkThreshold runs Threshold on an n×n matrix of pseudo-random
// weights, keeping k cells. Setup time is excluded from the measurement.
func benchmarkThreshold(b *testing.B, n, k int) {
	rng := rand.New(rand.NewSource(1))
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, rng.Float64())
		}
	}
	opts := threshold.DefaultOptions()
	opts.Rand = rng

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := threshold.Threshold(m, k, &opts); err != nil {
			b.Fatalf("Threshold failed: %v", err)
		}
	}
}

// BenchmarkThreshold_Small thresholds a 100×100 matrix keeping 10% of cells.
func BenchmarkThreshold_Small(b *testing.B) {
	benchmarkThreshold(b, 100, 495)
}

// BenchmarkThreshold_Medium thresholds a 500×500 matrix keeping 10% of cells.
func BenchmarkThreshold_Medium(b *testing.B) {
	benchmarkThreshold(b, 500, 12475)
}
