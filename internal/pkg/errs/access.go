package errs

import (
	"errors"
	"fmt"
)

var ErrNotAuthorized = errors.New("not authorized")

// NotAuthorizedError is returned when the caller exists but may not perform
// the requested action.
type NotAuthorizedError struct {
	Action string
	Cause  error
}

func NewNotAuthorizedError(action string) *NotAuthorizedError {
	return &NotAuthorizedError{Action: action}
}

func NewNotAuthorizedErrorWithCause(action string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Action: action, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrNotAuthorized, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthorized, e.Action)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}
