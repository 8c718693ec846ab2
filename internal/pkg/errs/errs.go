package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
)

// ObjectNotFoundError reports a missing entity. ParamName names the entity
// kind ("user", "order") and is what clients see.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// sanitize keeps error messages on a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
