// Package guard provides a defensive programming pattern that ensures domain
// objects are only created through their designated constructor functions.
//
// By embedding a ConstructorGuard in a struct, a zero-value instance can be
// distinguished from one built by its constructor, which keeps invariants
// enforced even when structs cross serialization or persistence boundaries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil validation error is supplied for an unconstructed object. It guarantees
// validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// "not constructed"; only NewConstructorGuard produces a passing guard.
//
// Example usage:
//
//	var ErrSkuNotConstructed = errors.New("Sku must be created via NewSku")
//
//	type Sku struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSku(value string) (Sku, error) {
//	    if value == "" {
//	        return Sku{}, errors.New("value is required")
//	    }
//	    return Sku{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Sku) Validate() error {
//	    return s.guard.Validate(ErrSkuNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it in every constructor of a guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was built by its constructor.
// For a zero-value guard it returns validationError, or
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
