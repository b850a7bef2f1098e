package keymap

import "github.com/dshills/gridview/internal/renderer/backend"

// Action names a navigation command.
type Action string

// Actions understood by the application.
const (
	ActionNone      Action = ""
	ActionMoveUp    Action = "cursor.moveUp"
	ActionMoveDown  Action = "cursor.moveDown"
	ActionMoveLeft  Action = "cursor.moveLeft"
	ActionMoveRight Action = "cursor.moveRight"
	ActionConfirm   Action = "selection.confirm"
	ActionQuit      Action = "app.quit"
	ActionRedraw    Action = "view.redraw"
)

// configNames maps the action names used in configuration files.
var configNames = map[string]Action{
	"up":      ActionMoveUp,
	"down":    ActionMoveDown,
	"left":    ActionMoveLeft,
	"right":   ActionMoveRight,
	"confirm": ActionConfirm,
	"quit":    ActionQuit,
	"redraw":  ActionRedraw,
}

// ActionForConfigName returns the action a configuration key refers to.
func ActionForConfigName(name string) (Action, bool) {
	a, ok := configNames[name]
	return a, ok
}

// Known reports whether a is one of the defined actions.
func (a Action) Known() bool {
	for _, known := range configNames {
		if a == known {
			return true
		}
	}
	return false
}

// Delta returns the row and column offsets of a move action.
// Non-move actions return zeros.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionMoveUp:
		return -1, 0
	case ActionMoveDown:
		return 1, 0
	case ActionMoveLeft:
		return 0, -1
	case ActionMoveRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key name that triggers this binding.
	// Examples: "k", "up", "enter", "ctrl+c"
	Keys string

	// Action is the command to execute.
	Action Action

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
// The key name is normalized.
func NewBinding(keys string, action Action) Binding {
	return Binding{
		Keys:   backend.NormalizeKeyName(keys),
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}
