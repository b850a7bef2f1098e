package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a call exceeds the execution timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoFormatFunc is returned when a script does not define format.
	ErrNoFormatFunc = errors.New("script does not define a format function")
)

// CellError reports a formatter failure for a specific cell.
type CellError struct {
	Row int
	Col int
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("format cell (%d, %d): %v", e.Row, e.Col, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
