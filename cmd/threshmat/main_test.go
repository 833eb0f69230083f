package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDerivedPath pins the output naming convention.
func TestDerivedPath(t *testing.T) {
	assert.Equal(t, "data/M_thrKeep0150.txt", derivedPath("data/M.txt", 150, ".txt"))
	assert.Equal(t, "data/M_thrKeep0150.png", derivedPath("data/M.txt", 150, ".png"))
	assert.Equal(t, "M_thrKeep1234.txt", derivedPath("M", 1234, ".txt"))
	assert.Equal(t, "M_thrKeep12345.txt", derivedPath("M.txt", 12345, ".txt"), "wide counts must not be truncated")
}

// TestRun_EndToEnd drives load → threshold → save against a real file and
// checks the persisted artifact is the thresholded matrix, not the input.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	mFile := filepath.Join(dir, "M.txt")
	// 4×4 with distinct upper-triangle weights 1..6.
	in := "0 1 2 3\n0 0 4 5\n0 0 0 6\n0 0 0 0\n"
	require.NoError(t, os.WriteFile(mFile, []byte(in), 0o644))

	outPath := filepath.Join(dir, "thr.txt")
	err := run(mFile, 2, outPath, "", true, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// Keep {5,6}; first row/column dropped; everything else zeroed.
	want := "0.00000\t0.00000\t5.00000\n" +
		"0.00000\t0.00000\t6.00000\n" +
		"0.00000\t0.00000\t0.00000\n"
	assert.Equal(t, want, string(got))
}

// TestRun_InvalidKeepCount must fail before writing any output.
func TestRun_InvalidKeepCount(t *testing.T) {
	dir := t.TempDir()
	mFile := filepath.Join(dir, "M.txt")
	require.NoError(t, os.WriteFile(mFile, []byte("0 1\n0 0\n"), 0o644))

	outPath := filepath.Join(dir, "thr.txt")
	err := run(mFile, 5, outPath, "", true, nil)
	assert.Error(t, err)

	_, statErr := os.Stat(outPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "no partial output once the keep count is rejected")
}
