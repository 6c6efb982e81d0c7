// Package guard provides a defensive-programming helper that ensures value objects
// and commands are only created through their designated constructor functions.
//
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable:
// the guard's internal flag is only set by NewConstructorGuard, so any struct built
// by direct initialization fails Validate. Domain objects use this to reject
// unvalidated instances before operating on them.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its constructor.
// The zero value is an unconstructed guard; NewConstructorGuard returns a
// constructed one. ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its embedding object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
