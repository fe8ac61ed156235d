// Package guard holds the constructor guard embedded by value objects,
// aggregates, commands and queries to tell constructed values from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its designated constructor.
// Embed it as a private field, set it with NewConstructorGuard inside the
// constructor and check it from the type's Validate method:
//
//	type TableNumber struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTableNumber(v int) (TableNumber, error) {
//	    if v <= 0 {
//	        return TableNumber{}, errors.New("table number must be positive")
//	    }
//	    return TableNumber{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t TableNumber) Validate() error {
//	    return t.guard.Validate(ErrTableNumberIsNotConstructed)
//	}
//
// The zero value reports "not constructed". The guard is immutable and safe
// to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
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
