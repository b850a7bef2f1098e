// Package main is the entry point for gridview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/gridview/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run restores the terminal before returning, so output below lands on
	// the normal screen.
	err = application.Run(ctx)
	switch {
	case err == nil:
		if res, ok := application.Result(); ok {
			fmt.Printf("You selected: %s\n", res.Value)
		}
		return 0
	case errors.Is(err, app.ErrQuit):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Backend, "backend", "", "Terminal backend (tcell, ansi)")
	flag.StringVar(&opts.Backend, "b", "", "Terminal backend (shorthand)")
	flag.StringVar(&opts.OutputPath, "output", "", "Write the selected cell as JSON to this file")
	flag.StringVar(&opts.OutputPath, "o", "", "Write the selected cell as JSON (shorthand)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the grid file when it changes")
	flag.StringVar(&opts.FormatScript, "format-script", "", "Lua script defining format(value, row, col)")
	flag.BoolVar(&opts.Debug, "debug", false, "Verify table offsets after every move")
	flag.BoolVar(&opts.Debug, "d", false, "Verify table offsets after every move (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridview - interactive terminal table selector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridview [options] [grid-file]\n\n")
		fmt.Fprintf(os.Stderr, "Grid files may be .csv, .json, .yaml/.yml or .toml.\n")
		fmt.Fprintf(os.Stderr, "Without one a 3x3 demo grid is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridview                       Show the demo grid\n")
		fmt.Fprintf(os.Stderr, "  gridview data.csv              Pick a cell from a CSV file\n")
		fmt.Fprintf(os.Stderr, "  gridview --watch data.yaml     Follow edits to the file\n")
		fmt.Fprintf(os.Stderr, "  gridview -b ansi -o sel.json   Plain ANSI output, save the selection\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("gridview %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.GridPath = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: expected at most one grid file, got %d\n", flag.NArg())
		os.Exit(1)
	}

	return opts
}
