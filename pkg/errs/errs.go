// Package errs defines the two error kinds the core raises (spec.md §7).
package errs

import (
	"fmt"

	"github.com/rafiw/referee-sub000/pkg/position"
)

// TypeError is raised when the type calculator encounters an ill-typed
// expression: duplicate declaration, undeclared name, member lookup on a
// non-composite, index of a non-array, or an arity/operand mismatch.
type TypeError struct {
	Pos     position.Position
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// NewTypeError builds a TypeError, formatting Message with fmt.Sprintf.
func NewTypeError(pos position.Position, format string, args ...any) *TypeError {
	return &TypeError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// InternalError indicates a pass received a node kind it does not
// handle. It is never a user error; its presence indicates a bug in the
// compiler itself.
type InternalError struct {
	Pos     position.Position
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error at %s: %s", e.Pos, e.Message)
}

// NewInternalError builds an InternalError, formatting Message with
// fmt.Sprintf.
func NewInternalError(pos position.Position, format string, args ...any) *InternalError {
	return &InternalError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
