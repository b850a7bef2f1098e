package table

import "strings"

// Layout is the result of compiling a Grid.
type Layout struct {
	// Lines are the rendered lines, border and content interleaved.
	// len(Lines) == 2*rows + 1.
	Lines []string

	// ColWidths holds the widest value of each column.
	ColWidths []int

	// ColOffsets holds the byte offset of each column's left border glyph.
	// len(ColOffsets) == cols + 1; the last entry is the trailing glyph.
	ColOffsets []int

	// RowOffsets holds the line index of the border above each row.
	// len(RowOffsets) == rows + 1; the last entry is the bottom border.
	RowOffsets []int
}

// Compile lays out g as a bordered table. It is a pure function of g.
func Compile(g Grid) Layout {
	rows, cols := g.Rows(), g.Cols()

	widths := make([]int, cols)
	for _, row := range g.cells {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	colOffsets := make([]int, cols+1)
	for c, w := range widths {
		colOffsets[c+1] = colOffsets[c] + w + BorderOverhead
	}

	rowOffsets := make([]int, rows+1)
	for r := range rowOffsets {
		rowOffsets[r] = 2 * r
	}

	border := borderLine(widths)
	lines := make([]string, 0, 2*rows+1)
	lines = append(lines, border)
	for _, row := range g.cells {
		lines = append(lines, contentLine(widths, row), border)
	}

	return Layout{
		Lines:      lines,
		ColWidths:  widths,
		ColOffsets: colOffsets,
		RowOffsets: rowOffsets,
	}
}

// borderLine builds "+---+--+" for the given column widths.
func borderLine(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteByte(CornerGlyph)
		b.WriteString(strings.Repeat(string(HorizontalGlyph), w+CellPadding))
	}
	b.WriteByte(CornerGlyph)
	return b.String()
}

// contentLine builds "| a | bb |" with each value centered in its column.
func contentLine(widths []int, row []string) string {
	var b strings.Builder
	for c, w := range widths {
		b.WriteByte(VerticalGlyph)
		b.WriteByte(' ')
		b.WriteString(center(row[c], w))
		b.WriteByte(' ')
	}
	b.WriteByte(VerticalGlyph)
	return b.String()
}

// center pads s to width w. Odd padding puts the extra space on the right.
func center(s string, w int) string {
	pad := w - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
