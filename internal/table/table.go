package table

import (
	"fmt"
)

// Table is a compiled grid with at most one highlighted cell.
type Table struct {
	grid    Grid
	markers Markers

	widths     []int
	base       []int
	colOffsets offsetTable
	rowOffsets []int
	lines      []*Line

	sel selection
}

// selection is the currently highlighted cell.
type selection struct {
	row, col int
	active   bool
}

// Option configures a Table.
type Option func(*Table)

// WithMarkers sets the highlight markers.
func WithMarkers(m Markers) Option {
	return func(t *Table) {
		t.markers = m
	}
}

// New compiles g into a Table with no selection.
func New(g Grid, opts ...Option) (*Table, error) {
	t := &Table{markers: DefaultMarkers()}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.markers.Validate(); err != nil {
		return nil, err
	}
	t.compile(g)
	return t, nil
}

// compile replaces the rendered state with a fresh layout of g.
func (t *Table) compile(g Grid) {
	layout := Compile(g)

	t.grid = g
	t.widths = layout.ColWidths
	t.base = layout.ColOffsets
	t.colOffsets = append(offsetTable(nil), layout.ColOffsets...)
	t.rowOffsets = layout.RowOffsets
	t.lines = make([]*Line, len(layout.Lines))
	for i, s := range layout.Lines {
		t.lines[i] = NewLine(s)
	}
	t.sel = selection{}
}

// MoveCell moves the highlight to (row, col).
// The previous highlight, if any, is removed first. Callers clamp the target;
// an out-of-range target returns ErrOutOfRange and leaves the table unchanged.
func (t *Table) MoveCell(row, col int) error {
	if !t.grid.Contains(row, col) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d table", ErrOutOfRange, row, col, t.Rows(), t.Cols())
	}
	if t.sel.active {
		t.unhighlight(t.sel.row, t.sel.col)
	}
	t.highlight(row, col)
	return nil
}

// ClearSelection removes the highlight, if any.
func (t *Table) ClearSelection() {
	if t.sel.active {
		t.unhighlight(t.sel.row, t.sel.col)
	}
}

// SetGrid recompiles the table for new content. An existing selection is
// re-applied, clamped to the new bounds; it is dropped if g is empty.
func (t *Table) SetGrid(g Grid) {
	prev := t.sel
	t.compile(g)
	if !prev.active || g.Rows() == 0 || g.Cols() == 0 {
		return
	}
	t.highlight(min(prev.row, g.Rows()-1), min(prev.col, g.Cols()-1))
}

// highlight wraps the cell's bordered rectangle in markers.
//
// For each line of the band the start marker goes before the left border
// glyph at colOffsets[col] and the end marker after the right border glyph
// at colOffsets[col+1], which has itself moved by len(Start).
func (t *Table) highlight(row, col int) {
	if t.sel.active {
		panic(fmt.Sprintf("table: highlight (%d, %d) while (%d, %d) is highlighted", row, col, t.sel.row, t.sel.col))
	}

	start := t.colOffsets[col]
	end := t.colOffsets[col+1] + len(t.markers.Start) + BorderGlyphWidth
	for _, line := range t.band(row) {
		mustSplice(line.insert(start, segmentStart, t.markers.Start))
		mustSplice(line.insert(end, segmentEnd, t.markers.End))
	}

	t.colOffsets.shift(col+1, len(t.markers.Start))
	t.colOffsets.shift(col+2, len(t.markers.End))
	t.sel = selection{row: row, col: col, active: true}
}

// unhighlight is the inverse of highlight: markers come out in reverse
// insertion order and the shifts are undone in reverse.
func (t *Table) unhighlight(row, col int) {
	end := t.colOffsets[col+1] + BorderGlyphWidth
	start := t.colOffsets[col]
	for _, line := range t.band(row) {
		mustSplice(line.remove(end, segmentEnd, t.markers.End))
		mustSplice(line.remove(start, segmentStart, t.markers.Start))
	}

	t.colOffsets.shift(col+2, -len(t.markers.End))
	t.colOffsets.shift(col+1, -len(t.markers.Start))
	t.sel = selection{}
}

// band returns the lines covered by row: its top border, its content line
// and its bottom border.
func (t *Table) band(row int) []*Line {
	return t.lines[t.rowOffsets[row] : t.rowOffsets[row+1]+1]
}

// mustSplice panics on a failed marker splice. A failure means the offset
// table no longer matches the lines, which no later operation can repair.
func mustSplice(err error) {
	if err != nil {
		panic("table: offset table out of sync: " + err.Error())
	}
}

// Verify checks the offset table against the rendered lines: offsets are
// strictly increasing, every line of the highlighted band maps the compiled
// column offsets to the cached ones, and no other line carries markup.
func (t *Table) Verify() error {
	if i := t.colOffsets.increasing(); i >= 0 {
		return fmt.Errorf("column offsets not increasing at %d: %v", i, []int(t.colOffsets))
	}

	inBand := func(i int) bool { return false }
	if t.sel.active {
		lo, hi := t.rowOffsets[t.sel.row], t.rowOffsets[t.sel.row+1]
		inBand = func(i int) bool { return i >= lo && i <= hi }
	}

	for i, line := range t.lines {
		if !inBand(i) {
			if line.Marked() {
				return fmt.Errorf("line %d carries markup outside the selection", i)
			}
			continue
		}
		for c, plain := range t.base {
			if got := line.offsetOf(plain); got != t.colOffsets[c] {
				return fmt.Errorf("line %d column %d: derived offset %d, cached %d", i, c, got, t.colOffsets[c])
			}
		}
	}
	return nil
}

// Rows returns the number of grid rows.
func (t *Table) Rows() int {
	return t.grid.Rows()
}

// Cols returns the number of grid columns.
func (t *Table) Cols() int {
	return t.grid.Cols()
}

// Grid returns the compiled grid.
func (t *Table) Grid() Grid {
	return t.grid
}

// Markers returns the highlight markers.
func (t *Table) Markers() Markers {
	return t.markers
}

// Selection returns the highlighted cell.
func (t *Table) Selection() (row, col int, ok bool) {
	return t.sel.row, t.sel.col, t.sel.active
}

// Value returns the value of the highlighted cell.
func (t *Table) Value() (string, bool) {
	if !t.sel.active {
		return "", false
	}
	return t.grid.Cell(t.sel.row, t.sel.col)
}

// Lines returns the rendered lines including markup.
func (t *Table) Lines() []string {
	out := make([]string, len(t.lines))
	for i, line := range t.lines {
		out[i] = line.String()
	}
	return out
}

// ColWidths returns a copy of the column width table.
func (t *Table) ColWidths() []int {
	return append([]int(nil), t.widths...)
}

// ColOffsets returns a copy of the current horizontal offset table.
func (t *Table) ColOffsets() []int {
	return append([]int(nil), t.colOffsets...)
}

// RowOffsets returns a copy of the vertical offset table.
func (t *Table) RowOffsets() []int {
	return append([]int(nil), t.rowOffsets...)
}
