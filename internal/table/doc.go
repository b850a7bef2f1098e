// Package table compiles a grid of text cells into bordered terminal lines and
// moves a single-cell highlight across them incrementally.
//
// The package has two halves:
//
//   - Compile turns a Grid into a Layout: the border and content lines plus
//     the column width table and the horizontal and vertical offset tables.
//   - Table owns the compiled lines and mutates them in place on every
//     MoveCell, inserting and removing highlight markers around one cell and
//     shifting the horizontal offset table by the marker byte lengths.
//
// Geometry:
//
//	+-----+---+   <- RowOffsets[0] = 0
//	|  1  | 2 |
//	+-----+---+   <- RowOffsets[1] = 2
//	| 333 | 4 |
//	+-----+---+   <- RowOffsets[2] = 4
//	^     ^   ^
//	|     |   ColOffsets[2] = 10
//	|     ColOffsets[1] = 6
//	ColOffsets[0] = 0
//
// A highlighted cell spans the lines RowOffsets[row]..RowOffsets[row+1]
// inclusive and the bytes from ColOffsets[col] through the border glyph at
// ColOffsets[col+1].
//
// Rendered lines are span lists (see Line) so markers are inserted and removed
// as whole segments. Offsets in the horizontal table are byte offsets into the
// rendered lines of the highlighted row and always equal the offsets derived
// from the span list.
//
// A Table is not safe for concurrent use.
package table
