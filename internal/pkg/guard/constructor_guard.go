// Package guard provides the constructor guard shared by value objects, aggregates,
// commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. The zero value
// is "not constructed", so embedding a guard lets a type tell a properly built
// instance apart from a bare struct literal.
//
// Example usage:
//
//	type CheckoutOrderCommand struct {
//	    orderID kernel.EntityID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c CheckoutOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
