package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dshills/gridview/internal/renderer/backend"
	"github.com/dshills/gridview/internal/renderer/statusline"
	"github.com/dshills/gridview/internal/source"
	"github.com/dshills/gridview/internal/table"
	"github.com/dshills/gridview/internal/watcher"
)

// loadGrid reads the grid file, or the demo grid when none is configured,
// and runs it through the formatter.
func (app *Application) loadGrid() (table.Grid, error) {
	grid := source.Default()
	if app.gridPath != "" {
		g, err := app.grids.Load(app.gridPath)
		if err != nil {
			return table.Grid{}, NewOperationError("load grid", app.gridPath, err)
		}
		grid = g
	}

	if app.formatter != nil {
		g, err := app.formatter.Apply(grid)
		if err != nil {
			return table.Grid{}, NewOperationError("format grid", app.gridName(), err)
		}
		grid = g
	}
	return grid, nil
}

func (app *Application) gridName() string {
	if app.gridPath == "" {
		return "built-in demo"
	}
	return app.gridPath
}

// reload swaps in the current file contents. A file that fails to load
// leaves the displayed table unchanged.
func (app *Application) reload() {
	grid, err := app.loadGrid()
	if err != nil {
		app.logger.Warn("reload failed: %v", err)
		app.status.SetMessage(fmt.Sprintf("Reload failed: %v", err), statusline.MessageError)
		return
	}

	app.table.SetGrid(grid)
	if value, ok := app.table.Value(); ok {
		app.status.SetSelection(value)
	} else if err := app.selectFirst(); err != nil {
		app.logger.Error("select after reload: %v", err)
	}
	app.status.SetMessage(fmt.Sprintf("Reloaded %s", filepath.Base(app.gridPath)), statusline.MessageInfo)
	app.logger.Info("reloaded %dx%d grid", grid.Rows(), grid.Cols())
}

// startWatcher posts a reload request to the event loop whenever the grid
// file changes. It returns an error when there is no file to watch.
func (app *Application) startWatcher(ctx context.Context) error {
	if app.gridPath == "" {
		return fmt.Errorf("no grid file to watch")
	}

	w, err := watcher.WatchFile(app.gridPath, watcher.WithDebounceDelay(app.config.DebounceDelay()))
	if err != nil {
		return NewComponentError("watcher", "start", err)
	}
	app.watcher = w

	b := app.backend
	go watcher.Run(ctx, w,
		func(ev watcher.Event) {
			b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{path: ev.Path}})
		},
		func(err error) {
			b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: watchFailure{err: err}})
		})

	app.logger.Info("watching %s", app.gridPath)
	return nil
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.Warn("close watcher: %v", err)
	}
	app.watcher = nil
}
