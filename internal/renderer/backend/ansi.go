package backend

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dshills/gridview/internal/renderer/core"
)

// Screen control sequences used by the ANSI backend.
const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
)

// shutdownWait bounds how long Shutdown waits for the input reader.
const shutdownWait = 100 * time.Millisecond

// Fallback dimensions when the output is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

var footerStyles = map[core.FooterKind]lipgloss.Style{
	core.FooterPlain:    lipgloss.NewStyle(),
	core.FooterEmphasis: lipgloss.NewStyle().Bold(true),
	core.FooterError:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
}

// ANSI implements Backend by writing escape sequences straight to an
// output stream. Table lines already carry their SGR markup, so each
// frame is written verbatim after a clear-screen sequence.
type ANSI struct {
	in  io.Reader
	out io.Writer

	mu       sync.Mutex
	oldState *term.State
	inFd     int

	events    chan Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
	started   bool
}

// NewANSI creates an ANSI backend reading keys from in and drawing to out.
// When in is a terminal it is switched to raw mode during Init.
func NewANSI(in io.Reader, out io.Writer) *ANSI {
	return &ANSI{
		in:     in,
		out:    out,
		inFd:   -1,
		events: make(chan Event, 64),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// NewStdANSI creates an ANSI backend on the process's standard streams.
func NewStdANSI() *ANSI {
	return NewANSI(os.Stdin, os.Stdout)
}

func (a *ANSI) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		old, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		a.oldState = old
		a.inFd = fd
	}

	if _, err := io.WriteString(a.out, enterAltScreen+hideCursor+core.ClearScreen); err != nil {
		a.restore()
		return err
	}

	a.started = true
	go a.readLoop()
	watchResize(a.stopCh, func() {
		w, h := a.Size()
		a.PostEvent(Event{Type: EventResize, Width: w, Height: h})
	})

	return nil
}

func (a *ANSI) Shutdown() {
	a.closeOnce.Do(func() {
		close(a.stopCh)

		a.mu.Lock()
		started := a.started
		a.mu.Unlock()
		if started {
			// A reader stuck in a blocking read must not hold up shutdown.
			select {
			case <-a.doneCh:
			case <-time.After(shutdownWait):
			}
		}

		a.mu.Lock()
		defer a.mu.Unlock()

		_, _ = io.WriteString(a.out, core.SGRReset+exitAltScreen+showCursor)
		a.restore()
	})
}

// restore returns the input terminal to its original mode.
func (a *ANSI) restore() {
	if a.oldState != nil {
		_ = term.Restore(a.inFd, a.oldState)
		a.oldState = nil
	}
}

func (a *ANSI) Size() (int, int) {
	if f, ok := a.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			return w, h
		}
	}
	return defaultWidth, defaultHeight
}

func (a *ANSI) Draw(frame core.Frame) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, _ = io.WriteString(a.out, renderFrame(frame))
}

// renderFrame produces the byte stream that redraws the whole screen.
// Raw mode disables output post-processing, so lines end in CRLF.
func renderFrame(frame core.Frame) string {
	var sb strings.Builder
	sb.WriteString(core.ClearScreen)
	sb.WriteString(strings.Join(frame.Body, "\r\n"))

	if len(frame.Footer) > 0 {
		if len(frame.Body) > 0 {
			sb.WriteString("\r\n")
		}
		for _, fl := range frame.Footer {
			sb.WriteString("\r\n")
			sb.WriteString(footerStyles[fl.Kind].Render(fl.Text))
		}
	}

	return sb.String()
}

// PollEvent returns the next queued event. Once the input stream has ended
// and the queue is drained it returns EventNone, as it does after Shutdown.
func (a *ANSI) PollEvent() Event {
	select {
	case ev := <-a.events:
		return ev
	case <-a.stopCh:
		return Event{Type: EventNone}
	case <-a.doneCh:
		select {
		case ev := <-a.events:
			return ev
		default:
			return Event{Type: EventNone}
		}
	}
}

func (a *ANSI) PostEvent(event Event) {
	select {
	case a.events <- event:
	default:
		// queue full; synthetic events are best-effort
	}
}

// readLoop decodes key presses from the input stream until Shutdown.
func (a *ANSI) readLoop() {
	defer close(a.doneCh)

	buf := make([]byte, 256)
	var pending []byte

	for {
		n, err := readInput(a.in, buf, a.stopCh)
		if n > 0 {
			pending = append(pending, buf[:n]...)
		}

		select {
		case <-a.stopCh:
			return
		default:
		}

		if len(pending) > 0 && !a.emit(&pending) {
			return
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.PostEvent(Event{Type: EventInterrupt, Data: err})
			}
			return
		}
	}
}

// emit decodes the complete key sequences in pending and queues them.
// It reports false when Shutdown interrupted delivery.
func (a *ANSI) emit(pending *[]byte) bool {
	evs, consumed := decodeKeys(*pending)
	*pending = (*pending)[consumed:]

	// A lone ESC with nothing following it in the same read is the
	// escape key rather than the start of a sequence.
	if len(*pending) == 1 && (*pending)[0] == 0x1b {
		evs = append(evs, Event{Type: EventKey, Key: KeyEscape})
		*pending = (*pending)[:0]
	}

	for _, ev := range evs {
		select {
		case a.events <- ev:
		case <-a.stopCh:
			return false
		}
	}
	return true
}
