// Package guard provides ConstructorGuard, which lets value objects, commands
// and queries tell a constructor-built instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through
// their constructor. The zero value reports "not constructed".
//
// Example:
//
//	type CreateOrderCommand struct {
//	    description string
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
