package utils

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates the input sequence itself was absent (nil).
var ErrInvalidArgument = errors.New("invalid argument")

// RequireInput returns ErrInvalidArgument, wrapped with name, when in is nil.
// An empty but non-nil slice is valid input.
func RequireInput[T any](name string, in []T) error {
	if in == nil {
		return fmt.Errorf("%s: input is nil: %w", name, ErrInvalidArgument)
	}
	return nil
}
