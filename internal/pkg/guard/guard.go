// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values created by struct literals can be
// told apart from values built through their validating constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
// The zero value is "not constructed".
//
// Example:
//
//	var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable")
//
//	type Table struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewTable(number string) (Table, error) {
//	    if number == "" {
//	        return Table{}, errors.New("table number is required")
//	    }
//	    return Table{number: number, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Table) Validate() error {
//	    return t.guard.Validate(ErrTableIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
