package core

import "slices"

// FooterKind selects how a footer line is styled.
type FooterKind int

const (
	FooterPlain FooterKind = iota
	FooterEmphasis
	FooterError
)

// FooterLine is a line of status text drawn below the table.
type FooterLine struct {
	Text string
	Kind FooterKind
}

// Frame is one full screen: table lines with embedded SGR markup followed
// by footer lines.
type Frame struct {
	Body   []string
	Footer []FooterLine
}

// Equals returns true if two frames draw the same screen.
func (f Frame) Equals(other Frame) bool {
	return slices.Equal(f.Body, other.Body) && slices.Equal(f.Footer, other.Footer)
}
