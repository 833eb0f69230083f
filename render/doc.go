// Package render draws connectivity matrices as heat-map images.
//
// HeatMap renders log1p-scaled weights (so heavy-tailed connectivity
// distributions stay readable) with the classic jet color ramp and a
// palette legend standing in for a colorbar. The first row and column of
// the matrix are dropped, matching the text-save convention of matrixio.
//
// Like matrixio.Save, HeatMap never overwrites: an existing target path is
// a silent no-op reported through the wrote return value.
package render
