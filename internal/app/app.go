// Package app wires the table, renderer, input and grid sources together and
// runs the interactive selection loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/dshills/gridview/internal/config"
	"github.com/dshills/gridview/internal/input/keymap"
	"github.com/dshills/gridview/internal/plugin/lua"
	"github.com/dshills/gridview/internal/renderer"
	"github.com/dshills/gridview/internal/renderer/backend"
	"github.com/dshills/gridview/internal/renderer/statusline"
	"github.com/dshills/gridview/internal/source"
	"github.com/dshills/gridview/internal/table"
	"github.com/dshills/gridview/internal/watcher"
)

// Application owns the table and every component that reads or drives it.
// The table is only touched from the goroutine running Run.
type Application struct {
	opts   Options
	config *config.Config

	logger    *Logger
	logCloser io.Closer

	backend  backend.Backend
	renderer *renderer.Renderer
	status   *statusline.StatusLine
	keys     *keymap.Keymap

	grids     *source.Loader
	gridPath  string
	formatter *lua.Formatter
	table     *table.Table

	watcher watcher.Watcher

	running atomic.Bool
	result  *Result
}

// Options configures the application. Non-zero fields override the
// corresponding configuration settings.
type Options struct {
	// ConfigPath is the configuration file. Empty selects config.DefaultPath.
	ConfigPath string

	// GridPath is the grid file to display. Empty falls back to
	// source.path and then to the built-in demo grid.
	GridPath string

	// OutputPath receives the confirmed selection as JSON.
	OutputPath string

	// Backend is "tcell" or "ansi".
	Backend string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogFile is the log destination.
	LogFile string

	// Debug verifies table offsets after every move and logs at debug level.
	Debug bool

	// Watch reloads the grid file when it changes.
	Watch bool

	// FormatScript is a Lua cell formatter.
	FormatScript string
}

// New loads configuration, the grid and its formatter, and compiles the
// table. No terminal state is touched until Run.
func New(opts Options) (*Application, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	level := ParseLogLevel(cfg.Logging.Level)
	if opts.Debug {
		level = LogLevelDebug
	}
	logger, closer, err := OpenLogger(cfg.Logging.File, level)
	if err != nil {
		return nil, err
	}

	app := &Application{
		opts:      opts,
		config:    cfg,
		logger:    logger,
		logCloser: closer,
		status:    statusline.New(cfg.UI.ShowHelp),
		grids:     source.NewLoader(),
		gridPath:  cfg.Source.Path,
	}

	if err := app.bootstrap(); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// loadConfig reads the configuration file and applies option overrides.
func loadConfig(opts Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	} else if _, err := os.Stat(path); err != nil {
		return nil, NewOperationError("load config", path, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, NewOperationError("load config", path, err)
	}

	if opts.Backend != "" {
		cfg.UI.Backend = opts.Backend
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if opts.GridPath != "" {
		cfg.Source.Path = opts.GridPath
	}
	if opts.Watch {
		cfg.Source.Watch = true
	}
	if opts.FormatScript != "" {
		cfg.Source.FormatScript = opts.FormatScript
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewOperationError("load config", path, err).WithContext("command-line overrides")
	}
	return cfg, nil
}

func (app *Application) bootstrap() error {
	keys, err := app.config.Keymap()
	if err != nil {
		return NewComponentError("keymap", "build", err)
	}
	app.keys = keys

	markers, err := app.config.Markers()
	if err != nil {
		return NewComponentError("table", "markers", err)
	}

	if script := app.config.Source.FormatScript; script != "" {
		f, err := lua.LoadFormatter(script)
		if err != nil {
			return NewComponentError("formatter", "load", err)
		}
		app.formatter = f
	}

	grid, err := app.loadGrid()
	if err != nil {
		return err
	}

	t, err := table.New(grid, table.WithMarkers(markers))
	if err != nil {
		return NewComponentError("table", "compile", err)
	}
	app.table = t

	app.logger.Info("loaded %dx%d grid from %s", grid.Rows(), grid.Cols(), app.gridName())
	return nil
}

// SetBackend replaces the backend chosen by ui.backend.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Table returns the table being displayed.
func (app *Application) Table() *table.Table {
	return app.table
}

// Result returns the confirmed selection, if Run ended with one.
func (app *Application) Result() (Result, bool) {
	if app.result == nil {
		return Result{}, false
	}
	return *app.result, true
}

// Run takes over the terminal and processes events until the user confirms
// a cell (nil), quits (ErrQuit), or ctx is cancelled (ctx.Err()).
// The terminal is restored before Run returns, including after a panic.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	// Registered before the backend starts so it runs after Shutdown has
	// restored the terminal.
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("%v", perr)
			err = perr
		}
	}()

	if app.backend == nil {
		b, err := NewBackend(app.config.UI.Backend)
		if err != nil {
			return err
		}
		app.backend = b
	}

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-runCtx.Done()
		if ctx.Err() != nil {
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: stopRequest{err: ctx.Err()}})
		}
	}()

	app.renderer = renderer.New(app.backend)
	app.renderer.SetTable(app.table)
	app.renderer.SetFooter(app.status)

	if err := app.selectFirst(); err != nil {
		return err
	}

	if app.config.Source.Watch {
		if err := app.startWatcher(runCtx); err != nil {
			app.logger.Warn("watch disabled: %v", err)
			app.status.SetMessage(fmt.Sprintf("Watch disabled: %v", err), statusline.MessageError)
		}
		defer app.stopWatcher()
	}

	app.logger.Info("running with %s backend", app.config.UI.Backend)
	err = app.eventLoop()
	if errors.Is(err, errConfirmed) {
		return app.writeResult()
	}
	return err
}

// Close releases the formatter, the watcher and the log file.
func (app *Application) Close() error {
	var errs []error
	app.stopWatcher()
	if app.formatter != nil {
		errs = append(errs, app.formatter.Close())
	}
	if app.logCloser != nil {
		errs = append(errs, app.logCloser.Close())
		app.logCloser = nil
	}
	return errors.Join(errs...)
}

// NewBackend constructs the backend registered under name.
func NewBackend(name string) (backend.Backend, error) {
	switch name {
	case "tcell":
		t, err := backend.NewTerminal()
		if err != nil {
			return nil, NewComponentError("backend", "create tcell", err)
		}
		return t, nil
	case "ansi":
		return backend.NewStdANSI(), nil
	default:
		return nil, NewComponentError("backend", name, ErrUnknownBackend)
	}
}
