// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero-value instances can be told apart from ones
// built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example usage:
//
//	var ErrEstimateShippingCommandIsNotConstructed = errors.New("...")
//
//	type EstimateShippingCommand struct {
//	    draft order.Draft
//	    guard guard.ConstructorGuard
//	}
//
//	func (c EstimateShippingCommand) Validate() error {
//	    return c.guard.Validate(ErrEstimateShippingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
