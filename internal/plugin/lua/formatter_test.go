package lua

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/gridview/internal/table"
)

func TestFormatterApply(t *testing.T) {
	tests := []struct {
		name string
		code string
		want [][]string
	}{
		{
			name: "upper",
			code: `function format(v, r, c) return string.upper(v) end`,
			want: [][]string{{"A", "B"}, {"C", "D"}},
		},
		{
			name: "coordinates",
			code: `function format(v, r, c) return v .. r .. c end`,
			want: [][]string{{"a00", "b01"}, {"c10", "d11"}},
		},
		{
			name: "nil keeps value",
			code: `function format(v, r, c) if r == 0 then return nil end return "x" end`,
			want: [][]string{{"a", "b"}, {"x", "x"}},
		},
		{
			name: "number result",
			code: `function format(v, r, c) return r * 2 + c end`,
			want: [][]string{{"0", "1"}, {"2", "3"}},
		},
		{
			name: "require safe module",
			code: `local s = require("string")
function format(v) return s.rep(v, 2) end`,
			want: [][]string{{"aa", "bb"}, {"cc", "dd"}},
		},
	}

	grid := table.MustGrid([][]string{{"a", "b"}, {"c", "d"}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.code)
			if err != nil {
				t.Fatalf("NewFormatter() error = %v", err)
			}
			defer f.Close()

			got, err := f.Apply(grid)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			rows := got.RowsCopy()
			for r := range tt.want {
				for c := range tt.want[r] {
					if rows[r][c] != tt.want[r][c] {
						t.Errorf("cell (%d,%d) = %q, want %q", r, c, rows[r][c], tt.want[r][c])
					}
				}
			}
		})
	}
}

func TestFormatterApply_EmptyGrid(t *testing.T) {
	f, err := NewFormatter(`function format(v) return "x" end`)
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	defer f.Close()

	got, err := f.Apply(table.Grid{})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", got.Rows())
	}
}

func TestFormatterErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr string
	}{
		{"runtime error", `function format(v) error("nope") end`, "nope"},
		{"table result", `function format(v) return {} end`, "format returned table"},
		{"control chars", `function format(v) return "a\nb" end`, "control characters"},
		{"io blocked", `function format(v) return io.read() end`, "attempt to index"},
		{"require blocked", `function format(v) return require("os") end`, "not available"},
	}

	grid := table.MustGrid([][]string{{"a"}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.code)
			if err != nil {
				t.Fatalf("NewFormatter() error = %v", err)
			}
			defer f.Close()

			_, err = f.Apply(grid)
			if err == nil {
				t.Fatal("Apply() error = nil")
			}
			var cellErr *CellError
			if !errors.As(err, &cellErr) {
				t.Fatalf("error %T is not *CellError", err)
			}
			if cellErr.Row != 0 || cellErr.Col != 0 {
				t.Errorf("CellError at (%d,%d), want (0,0)", cellErr.Row, cellErr.Col)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewFormatter_NoFormatFunc(t *testing.T) {
	_, err := NewFormatter(`x = 1`)
	if !errors.Is(err, ErrNoFormatFunc) {
		t.Errorf("error = %v, want ErrNoFormatFunc", err)
	}
}

func TestNewFormatter_SyntaxError(t *testing.T) {
	if _, err := NewFormatter(`function format(`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestSandboxRemovesLoaders(t *testing.T) {
	state := NewState()
	defer state.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "io", "os", "debug"} {
		if v := state.GetGlobal(name); v.String() != "nil" {
			t.Errorf("global %s = %s, want nil", name, v.Type())
		}
	}
}

func TestExecutionTimeout(t *testing.T) {
	state := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer state.Close()

	err := state.DoString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("error = %v, want ErrExecutionTimeout", err)
	}
}

func TestStateClosed(t *testing.T) {
	state := NewState()
	if err := state.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !state.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := state.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString after Close error = %v, want ErrStateClosed", err)
	}
	if _, err := state.Call("format"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Call after Close error = %v, want ErrStateClosed", err)
	}
}

func TestLoadFormatter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fmt.lua")
	if err := os.WriteFile(path, []byte(`function format(v) return "<" .. v .. ">" end`), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFormatter(path)
	if err != nil {
		t.Fatalf("LoadFormatter() error = %v", err)
	}
	defer f.Close()

	if f.Path() != path {
		t.Errorf("Path() = %q, want %q", f.Path(), path)
	}
	got, err := f.Format("7", 0, 0)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "<7>" {
		t.Errorf("Format() = %q, want %q", got, "<7>")
	}

	if _, err := LoadFormatter(filepath.Join(dir, "missing.lua")); err == nil {
		t.Error("LoadFormatter(missing) error = nil")
	}
}
