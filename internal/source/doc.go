// Package source loads table grids from files.
//
// The format is chosen by file extension:
//
//	.csv          one row per record, via encoding/csv
//	.json         [["a","b"],["c","d"]] or {"rows": [...]}
//	.yaml, .yml   a sequence of sequences, or a mapping with a rows key
//	.toml         rows = [["a","b"],["c","d"]]
//
// Scalar cells keep their textual form: 3.50 in YAML stays "3.50". Every
// row must have the same number of cells; ragged input is rejected with
// table.ErrNotRectangular.
package source
