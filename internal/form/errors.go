package form

import (
	"errors"
	"fmt"
)

// Rejection reasons. Each [FieldError] wraps exactly one of these.
var (
	// ErrNotInteger indicates a value that does not parse as a whole number.
	ErrNotInteger = errors.New("form: not an integer")

	// ErrBelowMinimum indicates a value smaller than the field's minimum.
	ErrBelowMinimum = errors.New("form: below minimum")

	// ErrAboveMaximum indicates a value larger than the field's maximum.
	ErrAboveMaximum = errors.New("form: above maximum")

	// ErrOdd indicates an odd value.
	ErrOdd = errors.New("form: value must be even")
)

// FieldError describes why one form field was rejected. Its message is meant
// to be shown to the user as is.
type FieldError struct {
	Field   string
	Value   string
	Limit   int
	Wrapped error
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Wrapped, ErrNotInteger):
		return fmt.Sprintf("%s must be an even number", e.Field)
	case errors.Is(e.Wrapped, ErrBelowMinimum):
		return fmt.Sprintf("%s must be at least %d", e.Field, e.Limit)
	case errors.Is(e.Wrapped, ErrAboveMaximum):
		return fmt.Sprintf("%s must be at most %d", e.Field, e.Limit)
	case errors.Is(e.Wrapped, ErrOdd):
		return fmt.Sprintf("%s must be even", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Wrapped)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}

// Messages flattens err into the user-facing message of every FieldError it
// contains. Other errors contribute their Error text.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, Messages(e)...)
		}
		return out
	}
	return []string{err.Error()}
}
