package keymap

import (
	"fmt"
	"sort"
)

// FromConfig builds a keymap from per-action key lists, as found in the
// [keys] configuration section. An action listed in keys has its default
// bindings replaced; actions not listed keep their defaults. An empty
// list unbinds the action.
func FromConfig(keys map[string][]string) (*Keymap, error) {
	overridden := make(map[Action][]string, len(keys))

	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := ActionForConfigName(name)
		if !ok {
			return nil, fmt.Errorf("keys.%s: %w", name, ErrUnknownAction)
		}
		overridden[action] = keys[name]
	}

	km := NewKeymap("config").WithSource("config")
	for _, b := range Default().Bindings {
		if _, ok := overridden[b.Action]; !ok {
			km.AddBinding(b)
		}
	}
	for _, name := range names {
		action := configNames[name]
		for _, k := range overridden[action] {
			km.Add(k, action)
		}
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}
