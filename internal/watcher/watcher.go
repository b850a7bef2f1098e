// Package watcher reports changes to grid source files.
//
// An FSNotifyWatcher turns fsnotify events into Events, a DebouncedWatcher
// coalesces bursts of events per path, and WatchFile combines both so that
// editors which save by rename-and-replace still produce a single change
// notification for the file being displayed.
package watcher

import (
	"context"
	"errors"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
	ErrNotWatching     = errors.New("path is not being watched")
	ErrPathNotExist    = errors.New("path does not exist")
)

// Op is a set of file system operations.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	case 0:
		return "NONE"
	default:
		return "MULTIPLE"
	}
}

// Has returns true if the operation includes o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Changed reports whether the operation may have altered file contents.
// Pure permission changes do not.
func (op Op) Changed() bool {
	return op&^OpChmod != 0
}

// Event is a file system change.
type Event struct {
	// Path is the absolute path of the affected file.
	Path string

	// Op is the operation (or combined operations) that occurred.
	Op Op

	// Timestamp is when the event was observed.
	Timestamp time.Time
}

// Watcher monitors file system changes.
type Watcher interface {
	// Watch starts watching a path. Watching a directory reports changes to
	// its immediate children.
	Watch(path string) error

	// Unwatch stops watching a path.
	Unwatch(path string) error

	// Events returns the channel of change events. It is closed by Close.
	Events() <-chan Event

	// Errors returns the channel of watcher errors. It is closed by Close.
	Errors() <-chan error

	// Close stops the watcher and releases resources.
	Close() error
}

// EventFilter returns true to keep an event.
type EventFilter func(event Event) bool

// Config holds watcher options.
type Config struct {
	// DebounceDelay is the quiet period before a coalesced event is delivered.
	DebounceDelay time.Duration

	// BufferSize is the size of the event and error channels.
	BufferSize int

	// EventFilter optionally discards events before delivery.
	EventFilter EventFilter
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 200 * time.Millisecond,
		BufferSize:    64,
	}
}

// Option configures a watcher.
type Option func(*Config)

// WithDebounceDelay sets the debounce delay.
func WithDebounceDelay(d time.Duration) Option {
	return func(c *Config) {
		c.DebounceDelay = d
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(c *Config) {
		c.BufferSize = size
	}
}

// WithEventFilter sets the event filter.
func WithEventFilter(filter EventFilter) Option {
	return func(c *Config) {
		c.EventFilter = filter
	}
}

// Run delivers events and errors from w to the handlers until ctx is
// cancelled or the watcher is closed. Either handler may be nil.
func Run(ctx context.Context, w Watcher, onEvent func(Event), onError func(error)) {
	events := w.Events()
	errs := w.Errors()
	for events != nil || errs != nil {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if onEvent != nil {
				onEvent(event)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
