package table

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, immutable matrix of cell values.
type Grid struct {
	cells [][]string
	cols  int
}

// NewGrid copies rows into a Grid.
// Returns ErrNotRectangular if any row differs in length from the first,
// and ErrControlChar if a value holds a control character.
func NewGrid(rows [][]string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}

	cols := len(rows[0])
	cells := make([][]string, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if i := strings.IndexFunc(v, isControl); i >= 0 {
				return Grid{}, fmt.Errorf("%w: cell (%d, %d) has %q at byte %d", ErrControlChar, r, c, v[i], i)
			}
		}
		cells[r] = append([]string(nil), row...)
	}

	return Grid{cells: cells, cols: cols}, nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// MustGrid is like NewGrid but panics on error. Intended for literals.
func MustGrid(rows [][]string) Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// Cell returns the value at (row, col).
func (g Grid) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return "", false
	}
	return g.cells[row][col], true
}

// Contains returns true if (row, col) addresses a cell.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < g.cols
}

// RowsCopy returns a deep copy of the cell values.
func (g Grid) RowsCopy() [][]string {
	out := make([][]string, len(g.cells))
	for r, row := range g.cells {
		out[r] = append([]string(nil), row...)
	}
	return out
}
