package rewrite

import (
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/position"
)

// applyScope restricts e to the trace segment sc names. This has no
// counterpart in original_source — the scope wrappers are an independent
// design following the usual specification-pattern scoping shape
// (guard the lowered property with an "in scope" predicate built from
// Since, then wrap the whole thing in G so the guard is checked at every
// position, not just the first).
func (r *Rewriter) applyScope(sc *ast.Scope, e *ast.Expr, pos position.Position) *ast.Expr {
	s := r.store
	if sc.Kind == ast.Globally {
		return e
	}
	guard := r.scopeGuard(sc, pos)
	return s.G(s.Imp(guard, e, pos), nil, pos)
}

// scopeGuard builds the "currently in scope" predicate for every
// ScopeKind but Globally (which needs none).
func (r *Rewriter) scopeGuard(sc *ast.Scope, pos position.Position) *ast.Expr {
	s := r.store
	switch sc.Kind {
	case ast.Before:
		// Scope covers the prefix strictly before A's first occurrence.
		return s.Not(s.Ss(s.True(pos), sc.A, nil, pos), pos)

	case ast.After:
		// Scope covers everything from A's first occurrence on, inclusive.
		return s.Ss(s.True(pos), sc.A, nil, pos)

	case ast.While:
		// Scope is active exactly while A holds.
		return sc.A

	case ast.AfterUntil:
		// Scope covers from A on, closing (but not requiring) B.
		return s.Ss(s.Not(sc.B, pos), sc.A, nil, pos)

	case ast.BetweenAnd:
		// Like AfterUntil, but the interval must actually close with B.
		return s.And(s.Ss(s.Not(sc.B, pos), sc.A, nil, pos), s.F(sc.B, nil, pos), pos)
	}
	return s.True(pos)
}
