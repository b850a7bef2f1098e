package app

import (
	"errors"
	"testing"

	"github.com/dshills/gridview/internal/table"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{"nil error", nil, ""},
		{"op only", &OperationError{Op: "reload"}, "reload"},
		{"op and target", &OperationError{Op: "load grid", Target: "grid.csv"}, "load grid grid.csv"},
		{
			"full chain",
			&OperationError{Op: "move", Target: "(3, 0)", Context: "3x3 grid", Err: table.ErrOutOfRange},
			"move (3, 0) (3x3 grid): cell out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOperationError_WithContext(t *testing.T) {
	err := NewOperationError("load grid", "grid.csv", nil).WithContext("watch")
	if err.Context != "watch" {
		t.Errorf("Context = %q, want %q", err.Context, "watch")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("WithContext on nil receiver should return nil")
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("move", "(9, 9)", table.ErrOutOfRange)
	if !errors.Is(err, table.ErrOutOfRange) {
		t.Error("expected errors.Is to match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match the wrapper itself")
	}
	if errors.Is(err, ErrQuit) {
		t.Error("unexpected match against ErrQuit")
	}
	if errors.Unwrap(err) != table.ErrOutOfRange {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestComponentError_Error(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		name     string
		err      *ComponentError
		expected string
	}{
		{"nil", nil, ""},
		{"component only", &ComponentError{Component: "backend"}, "backend"},
		{"component and action", &ComponentError{Component: "backend", Action: "init"}, "backend: init"},
		{"component and error", &ComponentError{Component: "watcher", Err: inner}, "watcher: boom"},
		{"all", &ComponentError{Component: "table", Action: "verify", Err: inner}, "table: verify: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestComponentError_Is(t *testing.T) {
	err := NewComponentError("backend", "init", ErrUnknownBackend)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Error("expected errors.Is to match the wrapped error")
	}

	var nilErr *ComponentError
	if nilErr.Is(ErrUnknownBackend) {
		t.Error("nil ComponentError should match nothing")
	}
	if nilErr.Unwrap() != nil {
		t.Error("nil ComponentError should unwrap to nil")
	}
}

func TestRecoveredPanicError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RecoveredPanicError
		expected string
	}{
		{"nil", nil, ""},
		{"value only", &RecoveredPanicError{Value: "marker missing"}, "panic: marker missing"},
		{"with stack", &RecoveredPanicError{Value: "x", Stack: "goroutine 1"}, "panic: x\ngoroutine 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrQuit, ErrAlreadyRunning, ErrInputClosed, ErrUnknownBackend, errConfirmed}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should be distinct", i, j)
			}
		}
	}
}
