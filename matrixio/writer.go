package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Save writes m to path as tab-delimited text, 5-decimal fixed point, with
// the first row and column dropped. If path already exists, Save writes
// nothing and returns (false, nil): reruns are idempotent by existence, not
// by content. On success it returns (true, nil).
//
// Errors: ErrTooSmall for matrices under 2×2, or any filesystem failure.
func Save(path string, m mat.Matrix) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("matrixio: stat %s: %w", path, err)
	}

	r, c := m.Dims()
	if r < 2 || c < 2 {
		return false, ErrTooSmall
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("matrixio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 1; i < r; i++ {
		for j := 1; j < c; j++ {
			if j > 1 {
				if err = w.WriteByte('\t'); err != nil {
					return false, fmt.Errorf("matrixio: write %s: %w", path, err)
				}
			}
			if _, err = fmt.Fprintf(w, "%.5f", m.At(i, j)); err != nil {
				return false, fmt.Errorf("matrixio: write %s: %w", path, err)
			}
		}
		if err = w.WriteByte('\n'); err != nil {
			return false, fmt.Errorf("matrixio: write %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return false, fmt.Errorf("matrixio: flush %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return false, fmt.Errorf("matrixio: close %s: %w", path, err)
	}

	return true, nil
}
