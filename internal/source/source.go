package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/gridview/internal/config/loader"
	"github.com/dshills/gridview/internal/table"
)

// Format identifies a grid file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Errors returned by the loaders.
var (
	ErrUnsupportedFormat = errors.New("unsupported grid format")
	ErrBadShape          = errors.New("grid must be a list of rows")
)

// rowsKey is the key holding the rows when a file wraps them in a document.
const rowsKey = "rows"

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Default returns the demo grid: three rows of "1" through "9".
func Default() table.Grid {
	return table.MustGrid([][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})
}

// Loader reads grid files through a file system.
type Loader struct {
	fs loader.FileSystem
}

// NewLoader creates a loader on the OS file system.
func NewLoader() *Loader {
	return &Loader{fs: loader.DefaultFS()}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fs loader.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses the grid file at path.
func (l *Loader) Load(path string) (table.Grid, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return table.Grid{}, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return table.Grid{}, fmt.Errorf("reading grid file %s: %w", path, err)
	}

	return Parse(format, path, data)
}

// Load reads the grid file at path from the OS file system.
func Load(path string) (table.Grid, error) {
	return NewLoader().Load(path)
}

// Parse decodes data in the given format. The path is only used in errors.
func Parse(format Format, path string, data []byte) (table.Grid, error) {
	var (
		rows [][]string
		err  error
	)

	switch format {
	case FormatCSV:
		rows, err = parseCSV(data)
	case FormatJSON:
		rows, err = parseJSON(data)
	case FormatYAML:
		rows, err = parseYAML(data)
	case FormatTOML:
		rows, err = parseTOML(data)
	default:
		return table.Grid{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		var pe *loader.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return table.Grid{}, pe
		}
		return table.Grid{}, &loader.ParseError{Path: path, Message: err.Error(), Err: err}
	}

	g, err := table.NewGrid(rows)
	if err != nil {
		return table.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
