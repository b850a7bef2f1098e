package lua

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridview/internal/table"
)

// formatFunc is the global a formatter script must define.
const formatFunc = "format"

// Formatter rewrites cell values through a Lua format function.
type Formatter struct {
	state *State
	path  string
}

// LoadFormatter runs the script at path and returns a Formatter bound to its
// format function.
func LoadFormatter(path string, opts ...StateOption) (*Formatter, error) {
	state := NewState(opts...)
	if err := state.DoFile(path); err != nil {
		_ = state.Close()
		return nil, fmt.Errorf("load formatter %s: %w", path, err)
	}
	return newFormatter(state, path)
}

// NewFormatter compiles code and returns a Formatter bound to its format
// function.
func NewFormatter(code string, opts ...StateOption) (*Formatter, error) {
	state := NewState(opts...)
	if err := state.DoString(code); err != nil {
		_ = state.Close()
		return nil, fmt.Errorf("load formatter: %w", err)
	}
	return newFormatter(state, "")
}

func newFormatter(state *State, path string) (*Formatter, error) {
	if state.GetGlobal(formatFunc).Type() != lua.LTFunction {
		_ = state.Close()
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, ErrNoFormatFunc)
		}
		return nil, ErrNoFormatFunc
	}
	return &Formatter{state: state, path: path}, nil
}

// Path returns the script path, or "" for formatters built from a string.
func (f *Formatter) Path() string {
	return f.path
}

// Apply returns a copy of g with every cell passed through format.
// The first failing cell aborts the pass with a *CellError.
func (f *Formatter) Apply(g table.Grid) (table.Grid, error) {
	rows := g.RowsCopy()
	for r, row := range rows {
		for c, value := range row {
			out, err := f.Format(value, r, c)
			if err != nil {
				return table.Grid{}, &CellError{Row: r, Col: c, Err: err}
			}
			rows[r][c] = out
		}
	}
	return table.NewGrid(rows)
}

// Format passes a single value through format.
func (f *Formatter) Format(value string, row, col int) (string, error) {
	ret, err := f.state.Call(formatFunc, lua.LString(value), lua.LNumber(row), lua.LNumber(col))
	if err != nil {
		return "", err
	}
	if ret == lua.LNil {
		return value, nil
	}

	out := lua.LVAsString(ret)
	if out == "" && ret.Type() != lua.LTString {
		return "", fmt.Errorf("format returned %s", ret.Type())
	}
	if strings.ContainsAny(out, "\x1b\r\n\t") {
		return "", fmt.Errorf("format returned control characters in %q", out)
	}
	return out, nil
}

// Close releases the Lua state.
func (f *Formatter) Close() error {
	return f.state.Close()
}
