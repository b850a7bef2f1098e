package keymap

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyKeys     = errors.New("empty keys")
	ErrUnknownAction = errors.New("unknown action")
	ErrConflict      = errors.New("key bound to more than one action")
)

// Keymap holds key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings.
	// When a key appears twice, the later binding wins.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "config"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys string, action Action) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are valid and that no
// key is bound to two different actions.
func (k *Keymap) Validate() error {
	seen := make(map[string]Action, len(k.Bindings))
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: %w", i, ErrEmptyKeys)
		}
		if !b.Action.Known() {
			return fmt.Errorf("binding %d (%s): %w %q", i, b.Keys, ErrUnknownAction, b.Action)
		}
		if prev, ok := seen[b.Keys]; ok && prev != b.Action {
			return fmt.Errorf("binding %d (%s): %w: %s and %s", i, b.Keys, ErrConflict, prev, b.Action)
		}
		seen[b.Keys] = b.Action
	}
	return nil
}

// Lookup returns the binding for a key name.
func (k *Keymap) Lookup(keyName string) (Binding, bool) {
	if keyName == "" {
		return Binding{}, false
	}
	for i := len(k.Bindings) - 1; i >= 0; i-- {
		if k.Bindings[i].Keys == keyName {
			return k.Bindings[i], true
		}
	}
	return Binding{}, false
}

// KeysFor returns the keys bound to an action, in binding order.
func (k *Keymap) KeysFor(action Action) []string {
	var keys []string
	for _, b := range k.Bindings {
		if b.Action == action {
			keys = append(keys, b.Keys)
		}
	}
	return keys
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}
