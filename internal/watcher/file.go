package watcher

import (
	"path/filepath"
)

// WatchFile watches a single file for content changes.
//
// The file's parent directory is watched rather than the file itself so that
// atomic saves (write to a temp file, rename over the original) keep being
// reported after the original inode is replaced. Events for other entries in
// the directory and pure permission changes are filtered out, and the
// remainder is debounced by the configured delay.
func WatchFile(path string, opts ...Option) (*DebouncedWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	userFilter := config.EventFilter

	filter := func(event Event) bool {
		if filepath.Clean(event.Path) != absPath {
			return false
		}
		if !event.Op.Changed() {
			return false
		}
		return userFilter == nil || userFilter(event)
	}

	inner, err := NewFSNotifyWatcher(
		WithBufferSize(config.BufferSize),
		WithEventFilter(filter),
	)
	if err != nil {
		return nil, err
	}

	if err := inner.Watch(filepath.Dir(absPath)); err != nil {
		_ = inner.Close()
		return nil, err
	}

	return NewDebouncedWatcher(inner, config.DebounceDelay), nil
}
