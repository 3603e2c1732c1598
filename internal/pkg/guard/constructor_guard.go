// Package guard lets value types detect whether they were built by their constructor
// or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and value objects. Its zero value
// reports "not constructed"; NewConstructorGuard marks the owner as built.
//
//	type SubmitReviewCommand struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SubmitReviewCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// owner was not built through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
