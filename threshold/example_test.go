package threshold_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/threshmat/threshold"
)

// ExampleThreshold keeps the two strongest connections of a 3×3 matrix.
// With all candidate weights distinct there are no competing ties, so the
// outcome is fully deterministic.
func ExampleThreshold() {
	m := mat.NewDense(3, 3, []float64{
		0, 1, 2,
		7, 0, 3,
		7, 7, 0,
	})

	triu, err := threshold.UpperTriangle(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := threshold.DefaultOptions()
	out, res, err := threshold.Threshold(triu, 2, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cutoff=%v\n", res.Thresh)
	fmt.Printf("kept=%v,%v dropped=%v\n", out.At(0, 2), out.At(1, 2), out.At(0, 1))
	// Output:
	// cutoff=2
	// kept=2,3 dropped=0
}
