// Package guard provides the constructor guard pattern used by domain objects
// to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embedding a guard in a struct lets Validate
// distinguish properly constructed instances from zero values, which keeps
// domain invariants enforceable: a zero-value aggregate or command can never
// pass validation.
//
// Example:
//
//	type Plate struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlate(value string) (Plate, error) {
//	    if value == "" {
//	        return Plate{}, errors.New("plate is required")
//	    }
//	    return Plate{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Plate) Validate() error {
//	    return p.guard.Validate(ErrPlateIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
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
