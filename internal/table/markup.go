package table

import "fmt"

// Default highlight markup. The start marker switches the terminal foreground
// to green; the end marker resets all attributes.
const (
	HighlightStart = "\x1b[32m"
	HighlightEnd   = "\x1b[0m"
)

// Border geometry. Every column occupies BorderOverhead bytes more than its
// width: one leading border glyph and one padding space on either side of the
// value. Offsets into a rendered line are computed from these constants and
// the byte length of the markers; nothing else contributes to a shift.
const (
	CornerGlyph     = '+'
	HorizontalGlyph = '-'
	VerticalGlyph   = '|'

	BorderGlyphWidth = 1
	CellPadding      = 2
	BorderOverhead   = BorderGlyphWidth + CellPadding
)

// Markers is the pair of strings wrapped around a highlighted cell.
//
// Highlighting a column c shifts ColOffsets[c+1:] by len(Start) and
// ColOffsets[c+2:] by len(End); unhighlighting subtracts the same amounts.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers returns the green highlight markers.
func DefaultMarkers() Markers {
	return Markers{Start: HighlightStart, End: HighlightEnd}
}

// Validate reports whether the markers can be inserted into rendered lines.
func (m Markers) Validate() error {
	if m.Start == "" || m.End == "" {
		return fmt.Errorf("%w: start and end must be non-empty", ErrInvalidMarkers)
	}
	return nil
}

// Wrap returns s surrounded by the markers.
func (m Markers) Wrap(s string) string {
	return m.Start + s + m.End
}
