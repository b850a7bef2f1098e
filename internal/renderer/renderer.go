package renderer

import (
	"sync"

	"github.com/dshills/gridview/internal/renderer/backend"
	"github.com/dshills/gridview/internal/renderer/core"
)

// TableSource provides the rendered table lines, markup included.
type TableSource interface {
	Lines() []string
}

// FooterSource provides the status lines drawn under the table.
type FooterSource interface {
	Lines() []core.FooterLine
}

// Renderer is the main rendering facade.
// It assembles frames from its sources and hands them to the backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	width   int
	height  int

	table  TableSource
	footer FooterSource

	last       core.Frame
	drawn      bool
	fullRedraw bool
	frameCount uint64
}

// New creates a new renderer drawing to the given backend.
func New(b backend.Backend) *Renderer {
	width, height := b.Size()
	return &Renderer{
		backend: b,
		width:   width,
		height:  height,
	}
}

// SetTable sets the table whose lines form the frame body.
func (r *Renderer) SetTable(t TableSource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table = t
	r.fullRedraw = true
}

// SetFooter sets the source of footer lines.
func (r *Renderer) SetFooter(f FooterSource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.footer = f
	r.fullRedraw = true
}

// Resize updates the screen dimensions and forces the next render.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width = width
	r.height = height
	r.fullRedraw = true
}

// MarkFullRedraw forces the next Render to draw even if nothing changed.
func (r *Renderer) MarkFullRedraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fullRedraw = true
}

// Render draws the current frame. It returns false when the frame is
// identical to the last one drawn and no full redraw was requested.
func (r *Renderer) Render() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame := r.buildFrame()
	if r.drawn && !r.fullRedraw && frame.Equals(r.last) {
		return false
	}

	r.backend.Draw(frame)
	r.last = frame
	r.drawn = true
	r.fullRedraw = false
	r.frameCount++
	return true
}

// buildFrame assembles a frame from the sources (must hold lock).
func (r *Renderer) buildFrame() core.Frame {
	var frame core.Frame
	if r.table != nil {
		frame.Body = r.table.Lines()
	}
	if r.footer != nil {
		frame.Footer = r.footer.Lines()
	}
	return frame
}

// Frame returns the last frame drawn.
func (r *Renderer) Frame() core.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// Size returns the current screen dimensions.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}
