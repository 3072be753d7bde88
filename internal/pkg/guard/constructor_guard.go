// Package guard provides the ConstructorGuard defensive pattern used to ensure
// value objects, commands, and queries are only created through their designated
// constructor functions. A zero-value struct fails Validate, which keeps domain
// invariants from being bypassed by direct struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a struct
// and set it via NewConstructorGuard inside the constructor; zero-value instances
// will then fail Validate.
//
// Example usage:
//
//	type ApproveQuoteCommand struct {
//	    quoteID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewApproveQuoteCommand(quoteID kernel.UUID) (ApproveQuoteCommand, error) {
//	    if err := quoteID.Validate(); err != nil {
//	        return ApproveQuoteCommand{}, err
//	    }
//	    return ApproveQuoteCommand{quoteID: quoteID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApproveQuoteCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveQuoteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns validationError (or ErrDefaultConstructorGuard when nil) for zero-value
// instances, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
