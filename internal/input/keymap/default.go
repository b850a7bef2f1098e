package keymap

// Default returns the built-in bindings: arrow keys and hjkl to move,
// enter to confirm, and q, esc or ctrl+c to quit.
func Default() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			// Movement
			{Keys: "up", Action: ActionMoveUp, Description: "Move up"},
			{Keys: "k", Action: ActionMoveUp, Description: "Move up"},
			{Keys: "down", Action: ActionMoveDown, Description: "Move down"},
			{Keys: "j", Action: ActionMoveDown, Description: "Move down"},
			{Keys: "left", Action: ActionMoveLeft, Description: "Move left"},
			{Keys: "h", Action: ActionMoveLeft, Description: "Move left"},
			{Keys: "right", Action: ActionMoveRight, Description: "Move right"},
			{Keys: "l", Action: ActionMoveRight, Description: "Move right"},

			// Selection
			{Keys: "enter", Action: ActionConfirm, Description: "Select the highlighted cell"},

			// Application
			{Keys: "q", Action: ActionQuit, Description: "Quit without selecting"},
			{Keys: "esc", Action: ActionQuit, Description: "Quit without selecting"},
			{Keys: "ctrl+c", Action: ActionQuit, Description: "Quit without selecting"},
			{Keys: "ctrl+l", Action: ActionRedraw, Description: "Redraw the screen"},
		},
	}
}
