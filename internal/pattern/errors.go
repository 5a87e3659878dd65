package pattern

import "errors"

// Errors returned when reading a grid back from its text form.
var (
	// ErrUnknownSymbol indicates a character outside the alphabet.
	ErrUnknownSymbol = errors.New("pattern: unknown symbol")

	// ErrRaggedRows indicates rows of different lengths.
	ErrRaggedRows = errors.New("pattern: rows have different lengths")
)
