// Package matrixio reads and writes square weight matrices as plain text.
//
// Load/Read accept whitespace-delimited rows of floating-point numbers and
// reject anything that is not a well-formed square grid before any
// computation happens downstream.
//
// Save writes tab-delimited, 5-decimal fixed-point text with the first row
// and column dropped (the surrounding toolset reserves them for node
// indices). Writes are idempotent by existence: if the target path already
// exists, Save is a silent no-op and reports wrote=false — reruns never
// overwrite prior results.
package matrixio
