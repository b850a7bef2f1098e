// Package keymap maps key presses to table navigation actions.
//
// Keys are named the way the backend reports them ("up", "enter",
// "ctrl+c", or a single character such as "k"). A Keymap holds the
// bindings; Lookup resolves a key name to the action bound to it.
//
// # Usage
//
//	km := keymap.Default()
//	if b, ok := km.Lookup(ev.KeyName()); ok {
//	    switch b.Action {
//	    case keymap.ActionMoveUp:
//	        // ...
//	    }
//	}
//
// Bindings from configuration replace the defaults per action:
//
//	km, err := keymap.FromConfig(map[string][]string{"up": {"w"}})
package keymap
