package argv

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientArguments indicates a missing header or fewer item
	// tuples than the header declared.
	ErrInsufficientArguments = errors.New("argv: insufficient parameters")

	// ErrMalformedField indicates a header value or tuple field that is not
	// an integer, or a tuple with the wrong number of fields.
	ErrMalformedField = errors.New("argv: malformed field")
)

// FieldError locates a malformed argument. Arg is the 0-based position in
// the argument list; Field names the header value or tuple field.
type FieldError struct {
	Arg   int
	Field string
	Text  string
	Cause error
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("argv: argument %d (%s) %q: %v", e.Arg, e.Field, e.Text, e.Cause)
	}

	return fmt.Sprintf("argv: argument %d (%s) %q is malformed", e.Arg, e.Field, e.Text)
}

func (e *FieldError) Unwrap() error { return ErrMalformedField }

// ShortInputError reports that fewer tuples were supplied than declared.
// It accompanies a usable Problem holding only the supplied items.
type ShortInputError struct {
	Declared int
	Supplied int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("argv: insufficient parameters: %d items declared, %d supplied", e.Declared, e.Supplied)
}

func (e *ShortInputError) Unwrap() error { return ErrInsufficientArguments }
