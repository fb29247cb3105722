// Package guard marks value objects and entities as built by their constructors,
// so a zero value can be told apart from a validated instance.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field in domain types. Only
// NewConstructorGuard sets the flag, so a struct literal or zero value fails
// Validate.
//
//	type Capacity struct {
//	    weightKg float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c Capacity) Validate() error {
//	    return c.guard.Validate(ErrCapacityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
