package backend

import "strings"

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlD
	KeyCtrlQ
	KeyCtrlL
)

var keyNames = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlQ:     "ctrl+q",
	KeyCtrlL:     "ctrl+l",
}

// KeyName returns the name a key event is bound by in key maps:
// "up", "enter", "ctrl+c", or the character itself for runes
// ("k", "alt+k" when Alt is held). Non-key events return "".
func (e Event) KeyName() string {
	if e.Type != EventKey {
		return ""
	}

	var name string
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "space"
		} else {
			name = string(e.Rune)
		}
	} else {
		name = keyNames[e.Key]
	}
	if name == "" {
		return ""
	}

	if e.Mod.Has(ModAlt) {
		return "alt+" + name
	}
	return name
}

// NormalizeKeyName lowercases a configured key name and maps common
// aliases ("escape", "return", "ctrl-c") to the names KeyName produces.
// Single characters keep their case so "K" and "k" stay distinct.
func NormalizeKeyName(name string) string {
	name = strings.TrimSpace(name)
	if len([]rune(name)) == 1 {
		return name
	}

	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "+")
	switch name {
	case "escape":
		return "esc"
	case "return", "enter", "ret":
		return "enter"
	case "pageup":
		return "pgup"
	case "pagedown":
		return "pgdown"
	case "^c":
		return "ctrl+c"
	}
	return name
}
