package core

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Escape sequences understood by terminals that interpret ANSI codes.
const (
	// SGRReset resets all attributes.
	SGRReset = "\x1b[0m"

	// ClearScreen erases the display and homes the cursor.
	ClearScreen = "\x1b[2J\x1b[1;1H"
)

// SGR wraps parameters in a Select Graphic Rendition sequence.
func SGR(params string) string {
	return "\x1b[" + params + "m"
}

// DecodeANSI converts a line with embedded escape sequences into styled
// cells. SGR sequences update the running style, starting from base; other
// CSI sequences are dropped. A truncated trailing sequence is ignored.
func DecodeANSI(line string, base Style) []Cell {
	cells := make([]Cell, 0, len(line))
	style := base

	for i := 0; i < len(line); {
		if line[i] == 0x1b && i+1 < len(line) && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && !isFinalByte(line[j]) {
				j++
			}
			if j >= len(line) {
				break
			}
			if line[j] == 'm' {
				style = ApplySGR(style, base, line[i+2:j])
			}
			i = j + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		cells = append(cells, Cell{Rune: r, Style: style})
		i += size
	}

	return cells
}

// StripANSI removes escape sequences from line.
func StripANSI(line string) string {
	return StringFromCells(DecodeANSI(line, DefaultStyle()))
}

// isFinalByte reports whether b terminates a CSI sequence.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// ApplySGR applies semicolon-separated SGR parameters to s.
// Parameter 0 (or an empty list) restores base.
func ApplySGR(s, base Style, params string) Style {
	if params == "" {
		return base
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}

		switch {
		case n == 0:
			s = base
		case n == 1:
			s.Attributes |= AttrBold
		case n == 2:
			s.Attributes |= AttrDim
		case n == 3:
			s.Attributes |= AttrItalic
		case n == 4:
			s.Attributes |= AttrUnderline
		case n == 5:
			s.Attributes |= AttrBlink
		case n == 7:
			s.Attributes |= AttrReverse
		case n == 22:
			s.Attributes &^= AttrBold | AttrDim
		case n == 23:
			s.Attributes &^= AttrItalic
		case n == 24:
			s.Attributes &^= AttrUnderline
		case n == 25:
			s.Attributes &^= AttrBlink
		case n == 27:
			s.Attributes &^= AttrReverse
		case n >= 30 && n <= 37:
			s.Foreground = ColorFromIndex(uint8(n - 30))
		case n == 39:
			s.Foreground = base.Foreground
		case n >= 40 && n <= 47:
			s.Background = ColorFromIndex(uint8(n - 40))
		case n == 49:
			s.Background = base.Background
		case n >= 90 && n <= 97:
			s.Foreground = ColorFromIndex(uint8(n - 90 + 8))
		case n >= 100 && n <= 107:
			s.Background = ColorFromIndex(uint8(n - 100 + 8))
		case n == 38 || n == 48:
			c, consumed, ok := extendedColor(parts[i+1:])
			if ok {
				if n == 38 {
					s.Foreground = c
				} else {
					s.Background = c
				}
			}
			i += consumed
		}
	}

	return s
}

// extendedColor parses the arguments of a 38/48 parameter: "5;n" for a
// palette index or "2;r;g;b" for true color. It returns how many of the
// remaining parameters were consumed.
func extendedColor(rest []string) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}

	switch rest[0] {
	case "5":
		if len(rest) < 2 {
			return Color{}, len(rest), false
		}
		idx, err := strconv.ParseUint(rest[1], 10, 8)
		if err != nil {
			return Color{}, 2, false
		}
		return ColorFromIndex(uint8(idx)), 2, true
	case "2":
		if len(rest) < 4 {
			return Color{}, len(rest), false
		}
		var rgb [3]uint8
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseUint(rest[k+1], 10, 8)
			if err != nil {
				return Color{}, 4, false
			}
			rgb[k] = uint8(v)
		}
		return ColorFromRGB(rgb[0], rgb[1], rgb[2]), 4, true
	default:
		return Color{}, 1, false
	}
}
