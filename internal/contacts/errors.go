package contacts

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("contact not found")
)

// ValidationError reports a malformed field, a duplicate name or a rejected
// birthday update. Msg names the violated constraint.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is makes errors.Is(err, ErrValidation) hold
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a lookup or removal of a name that is not stored.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contact %q not found", e.Name)
}

// Is makes errors.Is(err, ErrNotFound) hold
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func invalid(format string, a ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}
