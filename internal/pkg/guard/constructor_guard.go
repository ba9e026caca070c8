// Package guard implements the constructor-guard pattern used by value
// objects and commands to detect zero-value instances that bypassed their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a zero-value instance.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been built through its designated
// constructor. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor; the zero value fails Validate.
//
// Example:
//
//	type TrackingNumber struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackingNumber(value string) (TrackingNumber, error) {
//	    if value == "" {
//	        return TrackingNumber{}, errors.New("value is required")
//	    }
//	    return TrackingNumber{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t TrackingNumber) Validate() error {
//	    return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was built through its
// constructor. For zero-value instances it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
