// Package ast defines the hash-consed expression, time-bound, and
// specification-pattern algebra of spec.md §3.
package ast

import (
	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/types"
)

// Expr is a single node of the expression algebra. A node is immutable
// after construction except for the typ slot, which the type calculator
// assigns exactly once (spec.md §3's single-assignment invariant).
//
// Child slots A, B, C are interpreted per Kind:
//
//	unary (Neg, Not, Paren, F, G, Xs, Xw, O, H, Ys, Yw):  A = operand
//	binary (Add..Ge, And..Equ, Index):                    A, B = operands
//	Choice(cond, then, else):                              A, B, C
//	Us/Uw/Rs/Rw/Ss/Sw/Ts/Tw(left, right):                  A, B
//	Member(base, name):                                    A = base, Name
//	Data(ctx, name) / Conf(ctx, name):                      A = ctx, Name
//	Context(name):                                          Name only
//	At(name, body):                                         Name, A = body
//	Integral(lhs, rhs):                                     A = lhs, B = rhs
//
// Lit holds the literal payload for constant kinds (bool/int64/float64/
// intern.Symbol), and is nil otherwise. Every field participates in the
// store's hash-cons key, so it must stay comparable.
type Expr struct {
	Kind Kind
	Pos  position.Position

	A, B, C *Expr
	Time    *Time

	Name intern.Symbol
	Lit  any

	typ *types.Type
}

// Type returns the type assigned by the type calculator, or nil if the
// expression has not yet been typed.
func (e *Expr) Type() *types.Type { return e.typ }

// SetType assigns e's computed type. Idempotent: calling it again with the
// same type is a no-op; calling it with a different type once already set
// indicates a type-calculator bug (internal error territory, not a user
// error), so it panics.
func (e *Expr) SetType(t *types.Type) {
	if e.typ != nil {
		if e.typ != t {
			panic("ast: Expr.SetType called twice with different types")
		}
		return
	}
	e.typ = t
}

// Children returns e's non-nil operand expressions in A, B, C order. Time
// bound sub-expressions and the Name symbol are not children for the
// purposes of this traversal helper.
func (e *Expr) Children() []*Expr {
	var out []*Expr
	if e.A != nil {
		out = append(out, e.A)
	}
	if e.B != nil {
		out = append(out, e.B)
	}
	if e.C != nil {
		out = append(out, e.C)
	}
	return out
}

// TimeKind tags which variant of time bound a Time value is.
type TimeKind int

const (
	// Interval is a closed-open [Lo, Hi) bound in nanoseconds.
	Interval TimeKind = iota
	// Min is a lower bound only.
	Min
	// Max is an upper bound only.
	Max
)

// Time is a time-bound attached to a temporal or integral Expr. Lo and Hi
// are themselves nanosecond-valued expressions (constant-folded integer
// literals, ordinarily) and are nil when the corresponding bound is absent
// (Min has no Hi, Max has no Lo).
type Time struct {
	Kind   TimeKind
	Lo, Hi *Expr
}
