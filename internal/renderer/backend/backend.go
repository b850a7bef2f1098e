// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"sync"

	"github.com/dshills/gridview/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Interrupt event payload, set by PostEvent callers.
	Data any
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	// Must be called when done with the backend.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Draw replaces the screen contents with frame.
	// Body lines may carry SGR escape sequences.
	Draw(frame core.Frame)

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call. After Shutdown it returns EventNone.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}

// FooterStyle returns the style used to draw footer lines of the given kind.
func FooterStyle(kind core.FooterKind) core.Style {
	switch kind {
	case core.FooterEmphasis:
		return core.DefaultStyle().Bold()
	case core.FooterError:
		return core.NewStyle(core.ColorFromIndex(1)).Bold()
	default:
		return core.DefaultStyle()
	}
}

// paint walks a frame cell by cell, decoding SGR markup in body lines.
// A blank line separates the body from the footer.
func paint(frame core.Frame, set func(x, y int, cell core.Cell)) {
	y := 0
	for _, line := range frame.Body {
		for x, cell := range core.DecodeANSI(line, core.DefaultStyle()) {
			set(x, y, cell)
		}
		y++
	}

	if len(frame.Footer) == 0 {
		return
	}
	if len(frame.Body) > 0 {
		y++
	}
	for _, fl := range frame.Footer {
		for x, cell := range core.CellsFromString(fl.Text, FooterStyle(fl.Kind)) {
			set(x, y, cell)
		}
		y++
	}
}

// NullBackend is an in-memory backend for testing.
// It keeps every drawn frame and a decoded cell grid of the latest one.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	frames        []core.Frame
	events        chan Event
	closed        chan struct{}
	closeOnce     sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clear()
	return nil
}

func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.closed) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) Draw(frame core.Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clear()
	paint(frame, func(x, y int, cell core.Cell) {
		if x >= 0 && x < b.width && y >= 0 && y < b.height {
			b.cells[y][x] = cell
		}
	})

	b.frames = append(b.frames, core.Frame{
		Body:   append([]string(nil), frame.Body...),
		Footer: append([]core.FooterLine(nil), frame.Footer...),
	})
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) clear() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

// GetCell returns the cell at the given position for testing.
// Returns an empty cell for positions outside the screen.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Frames returns the frames drawn so far for testing.
func (b *NullBackend) Frames() []core.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]core.Frame(nil), b.frames...)
}

// LastFrame returns the most recently drawn frame.
func (b *NullBackend) LastFrame() (core.Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.frames) == 0 {
		return core.Frame{}, false
	}
	return b.frames[len(b.frames)-1], true
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.clear()
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
