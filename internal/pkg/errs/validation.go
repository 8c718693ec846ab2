package errs

import (
	"errors"
	"strings"
)

var ErrValidationFailed = errors.New("validation failed")

// ValidationError carries every violation found while checking an input.
// It unwraps to each violation, so errors.Is works against the individual
// sentinels as well as ErrValidationFailed.
type ValidationError struct {
	Violations []error
}

// NewValidationError flattens joined errors into a single *ValidationError.
// It returns a nil error, not a typed nil pointer, when cause holds no
// violation.
func NewValidationError(cause error) error {
	violations := flatten(cause)
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages(), "; ")
}

// Messages returns one client-facing line per violation.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Error())
	}
	return messages
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) Unwrap() []error {
	return e.Violations
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}

	return []error{err}
}
