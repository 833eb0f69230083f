package threshold

import (
	"errors"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("threshold: matrix is nil")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("threshold: matrix is not square")

	// ErrEmptyMatrix indicates a matrix with no cells at all (0×0).
	ErrEmptyMatrix = errors.New("threshold: matrix has no cells")

	// ErrInvalidKeepCount indicates a keep count outside [1, n·(n-1)/2],
	// including any positive count against a matrix with no
	// strict-upper-triangle cells (n ≤ 1).
	ErrInvalidKeepCount = errors.New("threshold: keep count outside [1, upper-triangle size]")
)

// cell is one strict-upper-triangle candidate, addressed by position so the
// flattening stays stable and reproducible.
type cell struct {
	row, col int
	val      float64
}

// UpperTriangle returns a copy of m with the diagonal and lower triangle
// zeroed, leaving only cells (i,j) with i < j. This is the view Threshold
// expects as input.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix.
// Complexity: O(n²) time and memory.
func UpperTriangle(m mat.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if r == 0 {
		return nil, ErrEmptyMatrix
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}

	return out, nil
}

// Threshold keeps exactly k cells of the strict upper triangle of triu and
// zeroes the rest.
//
// Algorithm:
//  1. Flatten the n·(n-1)/2 candidate cells in row-major order.
//  2. Sort a copy of the values ascending; the cutoff is the k-th value
//     from the end (k-th largest, ties counted by value).
//  3. Cells strictly above the cutoff always survive; by definition of the
//     k-th largest there are at most k-1 of them.
//  4. Of the cells exactly at the cutoff, k minus the strictly-greater
//     count survive, drawn uniformly at random without replacement
//     (Fisher–Yates shuffle of the tied positions, keep the prefix).
//  5. Cells strictly below the cutoff are zeroed unconditionally.
//
// The input must satisfy the UpperTriangle precondition: only cells (i,j)
// with i < j may be non-zero. Threshold does not mutate triu; kept values
// are copied bit-identical into a fresh matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidKeepCount.
// Complexity: O(n² log n) time, O(n²) memory.
func Threshold(triu *mat.Dense, k int, opts *Options) (*mat.Dense, Result, error) {
	if triu == nil {
		return nil, Result{}, ErrNilMatrix
	}
	r, c := triu.Dims()
	if r != c {
		return nil, Result{}, ErrNonSquare
	}
	candidates := r * (r - 1) / 2
	if k <= 0 || k > candidates {
		return nil, Result{}, ErrInvalidKeepCount
	}

	// Flatten the strict upper triangle, row-major.
	cells := make([]cell, 0, candidates)
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			cells = append(cells, cell{row: i, col: j, val: triu.At(i, j)})
		}
	}

	// Cutoff = k-th largest candidate value.
	vals := make([]float64, candidates)
	for idx, cl := range cells {
		vals[idx] = cl.val
	}
	sort.Float64s(vals)
	thresh := vals[candidates-k]

	// Partition candidates around the cutoff.
	kept := make([]bool, candidates)
	var greater int
	var ties []int // indices into cells holding exactly thresh
	for idx, cl := range cells {
		switch {
		case cl.val > thresh:
			kept[idx] = true
			greater++
		case cl.val == thresh:
			ties = append(ties, idx)
		}
	}

	// Uniform subset of the tied positions fills the remaining quota.
	need := k - greater
	shuffle := rand.Shuffle
	if opts != nil && opts.Rand != nil {
		shuffle = opts.Rand.Shuffle
	}
	shuffle(len(ties), func(i, j int) { ties[i], ties[j] = ties[j], ties[i] })
	for _, idx := range ties[:need] {
		kept[idx] = true
	}

	out := mat.NewDense(r, c, nil)
	for idx, cl := range cells {
		if kept[idx] {
			out.Set(cl.row, cl.col, cl.val)
		}
	}

	return out, Result{Thresh: thresh, Greater: greater, Ties: len(ties), Keep: k}, nil
}
