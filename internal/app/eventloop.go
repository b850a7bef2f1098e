package app

import (
	"fmt"

	"github.com/dshills/gridview/internal/input/keymap"
	"github.com/dshills/gridview/internal/renderer/backend"
	"github.com/dshills/gridview/internal/renderer/statusline"
)

// Interrupt payloads posted to the backend queue by other goroutines.
type (
	// reloadRequest asks the loop to reread the grid file.
	reloadRequest struct {
		path string
	}

	// watchFailure reports a watcher error without stopping the loop.
	watchFailure struct {
		err error
	}

	// stopRequest ends the loop with err.
	stopRequest struct {
		err error
	}
)

// eventLoop renders, then applies one event at a time until an action ends
// the session.
func (app *Application) eventLoop() error {
	app.renderer.Render()
	for {
		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
		app.renderer.Render()
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
		return nil
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	case backend.EventNone:
		return ErrInputClosed
	default:
		return nil
	}
}

func (app *Application) handleKeyEvent(ev backend.Event) error {
	name := ev.KeyName()
	binding, ok := app.keys.Lookup(name)
	if !ok {
		app.logger.Debug("unbound key %q", name)
		return nil
	}
	app.logger.Debug("key %q -> %s", name, binding.Action)
	return app.dispatch(binding.Action)
}

func (app *Application) handleInterrupt(data any) error {
	switch d := data.(type) {
	case reloadRequest:
		app.logger.Info("grid file changed: %s", d.path)
		app.reload()
		return nil
	case watchFailure:
		app.logger.Warn("watcher: %v", d.err)
		app.status.SetMessage(fmt.Sprintf("Watch error: %v", d.err), statusline.MessageError)
		return nil
	case stopRequest:
		return d.err
	case error:
		return NewComponentError("input", "read", d)
	default:
		return nil
	}
}

// dispatch applies an action to the table.
func (app *Application) dispatch(action keymap.Action) error {
	switch action {
	case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionMoveLeft, keymap.ActionMoveRight:
		return app.moveBy(action.Delta())
	case keymap.ActionConfirm:
		return app.confirm()
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionRedraw:
		app.renderer.MarkFullRedraw()
		return nil
	default:
		return nil
	}
}

// moveBy moves the highlight by a delta, clamped to the grid. The table
// itself rejects out-of-range targets, so clamping happens here.
func (app *Application) moveBy(dRow, dCol int) error {
	row, col, ok := app.table.Selection()
	if !ok {
		return nil
	}
	row = clamp(row+dRow, 0, app.table.Rows()-1)
	col = clamp(col+dCol, 0, app.table.Cols()-1)
	if r, c, _ := app.table.Selection(); r == row && c == col {
		return nil
	}
	return app.moveTo(row, col)
}

// moveTo highlights (row, col) and updates the footer.
func (app *Application) moveTo(row, col int) error {
	if err := app.table.MoveCell(row, col); err != nil {
		return NewOperationError("move", fmt.Sprintf("(%d, %d)", row, col), err)
	}
	if app.opts.Debug {
		if err := app.table.Verify(); err != nil {
			return NewComponentError("table", "verify", err)
		}
	}

	value, _ := app.table.Value()
	app.status.SetSelection(value)
	app.logger.Debug("selected (%d, %d) %q", row, col, value)
	return nil
}

// selectFirst highlights the top-left cell of a non-empty grid that has no
// selection yet.
func (app *Application) selectFirst() error {
	if _, _, ok := app.table.Selection(); ok {
		return nil
	}
	if app.table.Rows() == 0 || app.table.Cols() == 0 {
		app.status.ClearSelection()
		return nil
	}
	return app.moveTo(0, 0)
}

func (app *Application) confirm() error {
	row, col, ok := app.table.Selection()
	if !ok {
		app.status.SetMessage("Nothing to select", statusline.MessageError)
		return nil
	}
	value, _ := app.table.Value()
	app.result = &Result{Row: row, Col: col, Value: value}
	app.logger.Info("confirmed (%d, %d) %q", row, col, value)
	return errConfirmed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
