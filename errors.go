package alphablend

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is reported when a buffer operation receives sequences
// of different lengths. Use errors.Is to test for it; the concrete error is
// a *LengthMismatchError.
var ErrLengthMismatch = errors.New("alphablend: length mismatch")

// ErrUnknownMode is wrapped by the error ParseMode returns for names it
// does not recognize.
var ErrUnknownMode = errors.New("alphablend: unknown blend mode")

// LengthMismatchError describes the sequence lengths a buffer operation
// rejected. Nothing is written when it is returned.
type LengthMismatchError struct {
	Source      int
	Destination int
	Output      int
}

func (e *LengthMismatchError) Error() string {
	if e.Output == e.Source {
		return fmt.Sprintf("alphablend: length mismatch: source=%d destination=%d",
			e.Source, e.Destination)
	}
	return fmt.Sprintf("alphablend: length mismatch: source=%d destination=%d output=%d",
		e.Source, e.Destination, e.Output)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// UnknownModeError is returned by ParseMode.
type UnknownModeError struct {
	Name string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("alphablend: unknown blend mode %q", e.Name)
}

// Unwrap returns ErrUnknownMode.
func (e *UnknownModeError) Unwrap() error {
	return ErrUnknownMode
}
