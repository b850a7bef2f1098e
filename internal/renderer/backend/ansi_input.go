package backend

import "unicode/utf8"

// controlKeys maps single control bytes to keys.
var controlKeys = map[byte]Key{
	0x03: KeyCtrlC,
	0x04: KeyCtrlD,
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0a: KeyEnter,
	0x0c: KeyCtrlL,
	0x0d: KeyEnter,
	0x11: KeyCtrlQ,
	0x7f: KeyBackspace,
}

// csiKeys maps the final byte of ESC [ x and ESC O x sequences.
var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys maps the numeric parameter of ESC [ n ~ sequences.
var tildeKeys = map[string]Key{
	"1": KeyHome,
	"3": KeyDelete,
	"4": KeyEnd,
	"5": KeyPageUp,
	"6": KeyPageDown,
	"7": KeyHome,
	"8": KeyEnd,
}

// decodeKeys turns raw terminal input into key events. It returns the
// events and the number of bytes consumed; an incomplete trailing
// sequence is left unconsumed for the next read.
func decodeKeys(data []byte) ([]Event, int) {
	var evs []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			n, ev, ok := decodeEscape(data[i:])
			if n == 0 {
				return evs, i
			}
			if ok {
				evs = append(evs, ev)
			}
			i += n
			continue
		}

		if key, ok := controlKeys[b]; ok {
			evs = append(evs, Event{Type: EventKey, Key: key})
			i++
			continue
		}

		if b < 0x20 {
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return evs, i
		}
		r, size := utf8.DecodeRune(data[i:])
		evs = append(evs, Event{Type: EventKey, Key: KeyRune, Rune: r})
		i += size
	}

	return evs, i
}

// decodeEscape decodes one sequence starting with ESC. It returns 0
// consumed bytes when more input is needed, and ok false for sequences
// that are recognized but carry no key.
func decodeEscape(data []byte) (int, Event, bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}

	switch data[1] {
	case '[', 'O':
		if len(data) < 3 {
			return 0, Event{}, false
		}
		if key, ok := csiKeys[data[2]]; ok {
			return 3, Event{Type: EventKey, Key: key}, true
		}
		if data[1] == 'O' {
			return 3, Event{}, false
		}

		// ESC [ params final
		j := 2
		for j < len(data) && !isFinal(data[j]) {
			j++
		}
		if j >= len(data) {
			return 0, Event{}, false
		}
		if data[j] == '~' {
			if key, ok := tildeKeys[string(data[2:j])]; ok {
				return j + 1, Event{Type: EventKey, Key: key}, true
			}
		}
		return j + 1, Event{}, false

	case 0x1b:
		// ESC ESC: the first is a plain escape key.
		return 1, Event{Type: EventKey, Key: KeyEscape}, true

	default:
		if !utf8.FullRune(data[1:]) {
			return 0, Event{}, false
		}
		r, size := utf8.DecodeRune(data[1:])
		return 1 + size, Event{Type: EventKey, Key: KeyRune, Rune: r, Mod: ModAlt}, true
	}
}

func isFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
