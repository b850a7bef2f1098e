package table

import "errors"

// Errors returned by table operations.
var (
	// ErrNotRectangular indicates a grid whose rows differ in length.
	ErrNotRectangular = errors.New("grid is not rectangular")

	// ErrControlChar indicates a cell value containing a control character,
	// which would break line geometry or inject terminal escapes.
	ErrControlChar = errors.New("cell contains a control character")

	// ErrOutOfRange indicates a cell coordinate outside the compiled table.
	ErrOutOfRange = errors.New("cell out of range")

	// ErrInvalidMarkers indicates highlight markers that cannot be inserted.
	ErrInvalidMarkers = errors.New("invalid highlight markers")
)
