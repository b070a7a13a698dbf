// Package guard implements the constructor guard pattern used across the
// domain model and the use case layer. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so commands, queries and
// value objects can insist on being built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// no specific validation error is supplied. It guarantees that validation of
// an unconstructed object always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object was built through its
// designated constructor. The zero value reports "not constructed", which is
// exactly what a struct literal or an uninitialized field produces.
//
// Example:
//
//	type CreateClientCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateClientCommand(name string) (CreateClientCommand, error) {
//	    if name == "" {
//	        return CreateClientCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return CreateClientCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateClientCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// every constructor whose result embeds a guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, falling back to
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
