// Package statusline provides the footer shown under the table: the
// selected value, a key help line, and transient messages.
package statusline

import (
	"github.com/dshills/gridview/internal/renderer/core"
)

// DefaultHelp is the key help shown when help is enabled.
const DefaultHelp = "Arrow keys to move | Enter to select | q to quit"

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the footer lines.
type StatusLine struct {
	// Selection state
	value    string
	selected bool

	// Help line
	help     string
	showHelp bool

	// Message display
	message     string
	messageType MessageType
}

// New creates a new status line with the default help text.
func New(showHelp bool) *StatusLine {
	return &StatusLine{
		help:     DefaultHelp,
		showHelp: showHelp,
	}
}

// SetSelection updates the displayed selected value.
func (s *StatusLine) SetSelection(value string) {
	s.value = value
	s.selected = true
}

// ClearSelection removes the selected value from the footer.
func (s *StatusLine) ClearSelection() {
	s.value = ""
	s.selected = false
}

// SetHelp replaces the help text.
func (s *StatusLine) SetHelp(help string) {
	s.help = help
}

// SetShowHelp toggles the help line.
func (s *StatusLine) SetShowHelp(show bool) {
	s.showHelp = show
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Height returns the number of footer lines.
func (s *StatusLine) Height() int {
	return len(s.Lines())
}

// Lines returns the footer lines in display order.
func (s *StatusLine) Lines() []core.FooterLine {
	var lines []core.FooterLine

	if s.selected {
		lines = append(lines, core.FooterLine{Text: "Selected: " + s.value, Kind: core.FooterEmphasis})
	} else {
		lines = append(lines, core.FooterLine{Text: "No selection", Kind: core.FooterPlain})
	}

	if s.message != "" {
		kind := core.FooterPlain
		if s.messageType == MessageError {
			kind = core.FooterError
		}
		lines = append(lines, core.FooterLine{Text: s.message, Kind: kind})
	}

	if s.showHelp && s.help != "" {
		lines = append(lines, core.FooterLine{Text: s.help, Kind: core.FooterPlain})
	}

	return lines
}
