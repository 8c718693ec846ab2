package errs

import (
	"errors"
	"fmt"
)

var ErrStorage = errors.New("storage failure")

// StorageError wraps an unexpected persistence failure. The cause stays
// reachable for logging but is never shown to clients.
type StorageError struct {
	Operation string
	Cause     error
}

func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorage, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorage, e.Operation)
}

func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorage}
	}
	return []error{ErrStorage, e.Cause}
}
