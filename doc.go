// Package threshmat keeps the N strongest connections of a square
// connectivity matrix and discards the rest.
//
// 🚀 What is threshmat?
//
//	A small toolkit (library + CLI) for exact-count thresholding of
//	connectivity matrices:
//		• threshold/ — the pure engine: strict-upper-triangle view and
//		  keep-exactly-k thresholding with uniform random tie-breaking
//		• matrixio/  — whitespace-delimited matrix reader and the
//		  tab-delimited, skip-if-exists writer
//		• render/    — log1p-scaled heat-map images (jet palette)
//		• cmd/threshmat — the command-line driver
//
// ✨ Why exact-count?
//
//	Thresholding by value alone over- or under-shoots whenever several
//	cells share the cutoff weight. threshmat honors the requested count
//	exactly: cells above the cutoff always survive, cells below are
//	always zeroed, and a uniformly random subset of the tied cells fills
//	the remaining quota.
//
// Quick example:
//
//	m, _ := matrixio.Load("M.txt")
//	triu, _ := threshold.UpperTriangle(m)
//	opts := threshold.DefaultOptions()
//	out, res, err := threshold.Threshold(triu, 150, &opts)
//
// See each package's doc.go for details.
package threshmat
