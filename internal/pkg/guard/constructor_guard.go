// Package guard provides the constructor guard embedded by commands, queries
// and domain objects to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value
// is "not constructed", so a struct literal that skips the constructor fails
// Validate.
//
//	type LoginCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c LoginCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
