package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Load reads a whitespace-delimited square matrix from the file at path.
//
// Errors: any open/read failure, plus the Read sentinels
// (ErrEmptyMatrix, ErrRagged, ErrNonSquare, ErrBadNumber).
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Read parses a whitespace-delimited square matrix from r. Rows are split
// on runs of blanks or tabs; completely blank lines are skipped. The grid
// must be rectangular and square.
//
// Errors: ErrEmptyMatrix, ErrRagged, ErrNonSquare, ErrBadNumber, or any
// underlying read failure.
// Complexity: O(n²) time and memory.
func Read(r io.Reader) (*mat.Dense, error) {
	var (
		data []float64
		rows int
		cols int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22) // rows of large matrices exceed the default token size
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", line, len(fields), cols, ErrRagged)
		}
		for i, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d (%q): %w", line, i+1, tok, ErrBadNumber)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyMatrix
	}
	if rows != cols {
		return nil, fmt.Errorf("%d rows by %d cols: %w", rows, cols, ErrNonSquare)
	}

	return mat.NewDense(rows, cols, data), nil
}
