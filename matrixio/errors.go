package matrixio

import "errors"

var (
	// ErrEmptyMatrix indicates the input contains no rows.
	ErrEmptyMatrix = errors.New("matrixio: matrix has no rows")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("matrixio: all rows must have the same length")
	// ErrNonSquare indicates the grid is rectangular but not square.
	ErrNonSquare = errors.New("matrixio: matrix is not square")
	// ErrBadNumber indicates a cell that does not parse as a float.
	ErrBadNumber = errors.New("matrixio: cell is not a valid number")
	// ErrTooSmall indicates a matrix too small to drop its first row and
	// column on save.
	ErrTooSmall = errors.New("matrixio: matrix must be at least 2x2 to save")
)
