// Package canon computes negation-normal form and canonicalizes derived
// operators into the kernel set (spec.md §4.3, §4.4). The two passes are
// mutually recursive in the original implementation (negating a
// conjunction canonicalizes its operands; canonicalizing a Not negates
// its operand) and are kept in one package here rather than split across
// two, which would otherwise require an import cycle.
package canon

import "github.com/rafiw/referee-sub000/pkg/ast"

// Canonicalizer rewrites expressions into the kernel operator set: Not,
// And, Or, Us, Rw, Ss, Tw, Xs, Xw, Ys, Yw plus atomic/access/constant
// forms (spec.md §4.4's contract).
type Canonicalizer struct {
	store *ast.Store
}

// New creates a Canonicalizer backed by store; every node it produces is
// hash-consed through store.
func New(store *ast.Store) *Canonicalizer {
	return &Canonicalizer{store: store}
}

// Canonicalize rewrites e per §4.4's rules: F/G/O/H unfold to their
// kernel Us/Rw/Ss/Tw forms, a⇒b unfolds to ¬a∨b, Not(x) delegates to
// Negate, and every other kind is returned unchanged at the top level —
// matching the source, canonicalization only rewrites boolean-connective
// and temporal-operator nodes; it does not descend into the children of
// arithmetic, access, or Choice nodes (those children are canonicalized
// only if reached again through a later call).
func (c *Canonicalizer) Canonicalize(e *ast.Expr) *ast.Expr {
	s := c.store
	switch e.Kind {
	case ast.KindAt:
		return s.At(e.Name, c.Canonicalize(e.A), e.Pos)

	case ast.KindNot:
		return c.Negate(e.A)

	case ast.KindOr:
		return s.Or(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Pos)
	case ast.KindAnd:
		return s.And(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Pos)
	case ast.KindXor:
		return s.Xor(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Pos)
	case ast.KindImp:
		return s.Or(c.Canonicalize(c.Negate(e.A)), c.Canonicalize(e.B), e.Pos)
	case ast.KindEqu:
		// Left primitive: the source's ExprEqu canonicalization is empty
		// (spec.md §9's open question resolved in favor of keeping it
		// primitive rather than expanding to (a∧b)∨(¬a∧¬b)).
		return e

	case ast.KindG:
		return s.Rw(s.False(e.Pos), c.Canonicalize(e.A), e.Time, e.Pos)
	case ast.KindF:
		return s.Us(s.True(e.Pos), c.Canonicalize(e.A), e.Time, e.Pos)
	case ast.KindH:
		return s.Tw(s.False(e.Pos), c.Canonicalize(e.A), e.Time, e.Pos)
	case ast.KindO:
		return s.Ss(s.True(e.Pos), c.Canonicalize(e.A), e.Time, e.Pos)

	case ast.KindXs:
		return s.Xs(c.Canonicalize(e.A), e.Time, e.Pos)
	case ast.KindXw:
		return s.Xw(c.Canonicalize(e.A), e.Time, e.Pos)
	case ast.KindYs:
		return s.Ys(c.Canonicalize(e.A), e.Time, e.Pos)
	case ast.KindYw:
		return s.Yw(c.Canonicalize(e.A), e.Time, e.Pos)

	case ast.KindUs:
		return s.Us(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindUw:
		return s.Uw(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindRs:
		return s.Rs(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindRw:
		return s.Rw(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindSs:
		return s.Ss(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindSw:
		return s.Sw(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindTs:
		return s.Ts(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	case ast.KindTw:
		return s.Tw(c.Canonicalize(e.A), c.Canonicalize(e.B), e.Time, e.Pos)
	}
	return e
}

// Negate returns an expression equal to ¬e with surface Not pushed down
// to atomic propositions (spec.md §4.3). The result may still contain
// derived operators (negating F yields G, negating O yields H); passing it
// through Canonicalize folds those into the kernel set.
func (c *Canonicalizer) Negate(e *ast.Expr) *ast.Expr {
	s := c.store
	switch e.Kind {
	case ast.KindTrue:
		return s.False(e.Pos)
	case ast.KindFalse:
		return s.True(e.Pos)
	case ast.KindBoolLit:
		return s.BoolLit(!e.Lit.(bool), e.Pos)

	case ast.KindAt:
		return s.At(e.Name, c.Negate(e.A), e.Pos)

	case ast.KindEq:
		return s.Ne(e.A, e.B, e.Pos)
	case ast.KindNe:
		return s.Eq(e.A, e.B, e.Pos)
	case ast.KindGt:
		return s.Le(e.A, e.B, e.Pos)
	case ast.KindGe:
		return s.Lt(e.A, e.B, e.Pos)
	case ast.KindLt:
		return s.Ge(e.A, e.B, e.Pos)
	case ast.KindLe:
		return s.Gt(e.A, e.B, e.Pos)

	case ast.KindNot:
		return e.A

	case ast.KindOr:
		return s.And(c.Negate(e.A), c.Negate(e.B), e.Pos)
	case ast.KindAnd:
		return s.Or(c.Negate(e.A), c.Negate(e.B), e.Pos)
	case ast.KindXor:
		return s.Equ(e.A, e.B, e.Pos)
	case ast.KindEqu:
		return s.Xor(e.A, e.B, e.Pos)
	case ast.KindImp:
		return s.And(e.A, c.Negate(e.B), e.Pos)

	case ast.KindG:
		return s.F(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindF:
		return s.G(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindXs:
		return s.Xw(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindXw:
		return s.Xs(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindUs:
		return s.Rw(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)
	case ast.KindUw:
		return s.Rs(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)
	case ast.KindRs:
		return s.Uw(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)
	case ast.KindRw:
		return s.Us(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)

	case ast.KindH:
		return s.O(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindO:
		return s.H(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindYs:
		return s.Yw(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindYw:
		return s.Ys(c.Negate(e.A), e.Time, e.Pos)
	case ast.KindSs:
		return s.Tw(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)
	case ast.KindSw:
		return s.Ts(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)
	case ast.KindTs:
		return s.Sw(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)
	case ast.KindTw:
		return s.Ss(c.Negate(e.A), c.Negate(e.B), e.Time, e.Pos)

	case ast.KindParen:
		return c.Negate(e.A)
	}

	// Atomic propositions (literals other than boolean, arithmetic,
	// access, Choice, Integral) have no dual: wrap in Not, matching the
	// source's default visit().
	return s.Not(e, e.Pos)
}
