package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// the caller passes a nil validation error, so a zero-value object always
// fails validation with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object or entity as having been created
// through its designated constructor. Kernel types embed it so that a
// zero-value struct, which bypassed the constructor's validation, can be
// detected before any operation runs on it.
//
// Money shows the pattern: NewMoney sets the guard after validating amount
// and currency, and Money.Validate delegates to the guard with
// ErrMoneyIsNotConstructed. A Money obtained any other way is a zero value
// and fails validation.
//
//	type Money struct {
//	    amount   float64
//	    currency string
//	    guard    ConstructorGuard
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
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
