package rewrite

import (
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/position"
)

// eliminateUntil implements spec.md §4.5.2's timed-operator elimination
// for Us^[lo,hi] and Uw^[lo,hi]: binds the starting sample and rewrites
// to an untimed until over a delta-time guard.
func (r *Rewriter) eliminateUntil(kind ast.Kind, e *ast.Expr) *ast.Expr {
	s := r.store
	pos := e.Pos
	t := r.rewriteTimeAsStarting(e.Time)

	startTime := s.Data(s.Context(r.symStarting, pos), r.symTime, pos)
	currTime := s.Data(s.Context(r.symCurr, pos), r.symTime, pos)
	delta := s.Sub(currTime, startTime, pos)

	lhs := r.rewrite(e.A)
	rhs := r.rewrite(e.B)

	phi := r.windowFuture(lhs, delta, t, pos, true)
	psi := r.windowFuture(rhs, delta, t, pos, false)

	var inner *ast.Expr
	if kind == ast.KindUs {
		inner = s.Us(phi, psi, nil, pos)
	} else {
		inner = s.Uw(phi, psi, nil, pos)
	}
	return s.At(r.symStarting, inner, pos)
}

// eliminateSince is eliminateUntil's past-time mirror for Ss^[lo,hi] and
// Sw^[lo,hi]: the delta negates (t_b - t_c instead of t_c - t_b) and the
// guard uses Yw instead of Xw (spec.md §4.5.2).
func (r *Rewriter) eliminateSince(kind ast.Kind, e *ast.Expr) *ast.Expr {
	s := r.store
	pos := e.Pos
	t := r.rewriteTimeAsStarting(e.Time)

	startTime := s.Data(s.Context(r.symStarting, pos), r.symTime, pos)
	currTime := s.Data(s.Context(r.symCurr, pos), r.symTime, pos)
	delta := s.Sub(startTime, currTime, pos)

	lhs := r.rewrite(e.A)
	rhs := r.rewrite(e.B)

	phi := r.windowPast(lhs, delta, t, pos, true)
	psi := r.windowPast(rhs, delta, t, pos, false)

	var inner *ast.Expr
	if kind == ast.KindSs {
		inner = s.Ss(phi, psi, nil, pos)
	} else {
		inner = s.Sw(phi, psi, nil, pos)
	}
	return s.At(r.symStarting, inner, pos)
}

// windowFuture builds φ' or ψ' (operand is true when left==true) for the
// future-until elimination:
//
//	φ' = (φ ∧ (Δ<hi)) ∨ ¬Xw(lo<Δ)
//	ψ' = (ψ ∧ (Δ<hi)) ∧  Xw(lo<Δ)
//
// with the corresponding conjunct/disjunct dropped when a bound is
// missing (spec.md §4.5.2).
func (r *Rewriter) windowFuture(operand, delta *ast.Expr, t *ast.Time, pos position.Position, left bool) *ast.Expr {
	s := r.store
	withHi := operand
	if t != nil && t.Hi != nil {
		withHi = s.And(operand, s.Lt(delta, t.Hi, pos), pos)
	}
	if t == nil || t.Lo == nil {
		return withHi
	}
	guard := s.Xw(s.Lt(t.Lo, delta, pos), nil, pos)
	if left {
		return s.Or(withHi, s.Not(guard, pos), pos)
	}
	return s.And(withHi, guard, pos)
}

// windowPast mirrors windowFuture for the past-time since elimination,
// using Yw instead of Xw.
func (r *Rewriter) windowPast(operand, delta *ast.Expr, t *ast.Time, pos position.Position, left bool) *ast.Expr {
	s := r.store
	withHi := operand
	if t != nil && t.Hi != nil {
		withHi = s.And(operand, s.Lt(delta, t.Hi, pos), pos)
	}
	if t == nil || t.Lo == nil {
		return withHi
	}
	guard := s.Yw(s.Lt(t.Lo, delta, pos), nil, pos)
	if left {
		return s.Or(withHi, s.Not(guard, pos), pos)
	}
	return s.And(withHi, guard, pos)
}

// eliminateNext extends the same delta-window technique to a timed
// single-step operator (Xs/Xw/Ys/Yw carrying a Time bound). Unlike
// Us/Uw/Ss/Sw this case has no counterpart in original_source — the
// source leaves a timed next/previous operator's bound untouched, which
// would violate the output contract's "no time bounds survive" rule —
// so this is an independent extension of the grounded Us/Ss technique,
// recorded as such.
func (r *Rewriter) eliminateNext(kind ast.Kind, e *ast.Expr) *ast.Expr {
	s := r.store
	pos := e.Pos
	t := r.rewriteTimeAsStarting(e.Time)

	startTime := s.Data(s.Context(r.symStarting, pos), r.symTime, pos)
	currTime := s.Data(s.Context(r.symCurr, pos), r.symTime, pos)

	future := kind == ast.KindXs || kind == ast.KindXw
	var delta *ast.Expr
	if future {
		delta = s.Sub(currTime, startTime, pos)
	} else {
		delta = s.Sub(startTime, currTime, pos)
	}

	var window *ast.Expr
	switch {
	case t == nil:
	case t.Lo != nil && t.Hi != nil:
		window = s.And(s.Lt(t.Lo, delta, pos), s.Lt(delta, t.Hi, pos), pos)
	case t.Lo != nil:
		window = s.Lt(t.Lo, delta, pos)
	case t.Hi != nil:
		window = s.Lt(delta, t.Hi, pos)
	}

	body := r.rewrite(e.A)
	if window != nil {
		body = s.And(body, window, pos)
	}

	var inner *ast.Expr
	switch kind {
	case ast.KindXs:
		inner = s.Xs(body, nil, pos)
	case ast.KindXw:
		inner = s.Xw(body, nil, pos)
	case ast.KindYs:
		inner = s.Ys(body, nil, pos)
	default:
		inner = s.Yw(body, nil, pos)
	}
	return s.At(r.symStarting, inner, pos)
}
