// Package rewrite implements the pattern-desugaring and timed-operator
// elimination pass of spec.md §4.5: it lowers every Spec node and every
// timed temporal operator down to untimed kernel-adjacent forms plus
// At-bindings, running to a fixed point with the canonicalization pass.
package rewrite

import (
	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/canon"
	"github.com/rafiw/referee-sub000/pkg/module"
)

// Rewriter lowers expressions and specification patterns against one
// module's symbol table, sharing its expression store with the rest of
// the pipeline so every node it builds stays hash-consed.
type Rewriter struct {
	store   *ast.Store
	strings *intern.Table
	canon   *canon.Canonicalizer

	bind intern.Symbol // current alias substituted for __curr__ Context nodes

	symCurr, symConf, symTime, symStarting intern.Symbol
}

// New creates a Rewriter. store and strings must be the same ones the
// parser built the input AST with.
func New(store *ast.Store, strings *intern.Table) *Rewriter {
	r := &Rewriter{
		store:   store,
		strings: strings,
		canon:   canon.New(store),
	}
	r.symCurr = strings.Intern(module.CurrentContext)
	r.symConf = strings.Intern(module.ConfigContext)
	r.symTime = strings.Intern(module.TimeProperty)
	r.symStarting = strings.Intern("starting")
	r.bind = r.symCurr
	return r
}

// Expr lowers e to an untimed, spec-free expression and canonicalizes the
// result. It is not in general idempotent in a single call — a formula
// containing F/G/O/H under a time bound needs a further pass once
// canonicalization has folded them into timed Us/Rw/Ss/Tw — so callers
// needing a fully-normalized result should use FixedPoint.
func (r *Rewriter) Expr(e *ast.Expr) *ast.Expr {
	return r.canon.Canonicalize(r.rewrite(e))
}

// FixedPoint repeatedly applies Expr until the hash-consed result stops
// changing (spec.md §4.5.5: rewrite and canonicalization are mutually
// recursive and converge because each application strictly reduces the
// count of Spec and timed-temporal-operator nodes).
func (r *Rewriter) FixedPoint(e *ast.Expr) *ast.Expr {
	for {
		next := r.Expr(e)
		if next == e {
			return next
		}
		e = next
	}
}

// Spec lowers a high-level specification pattern to its LTL translation
// (still possibly containing timed operators, which FixedPoint then
// eliminates) per spec.md §4.5.1.
func (r *Rewriter) Spec(sp *ast.Spec) *ast.Expr {
	e := r.lowerPattern(sp)
	if sp.Scope != nil {
		e = r.applyScope(sp.Scope, e, sp.Pos)
	}
	return r.FixedPoint(e)
}

func (r *Rewriter) rewrite(e *ast.Expr) *ast.Expr {
	s := r.store
	switch e.Kind {
	case ast.KindBoolLit, ast.KindIntLit, ast.KindNumberLit, ast.KindStringLit,
		ast.KindTrue, ast.KindFalse:
		return e

	case ast.KindNeg:
		return s.Neg(r.rewrite(e.A), e.Pos)
	case ast.KindAdd:
		return s.Add(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindSub:
		return s.Sub(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindMul:
		return s.Mul(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindDiv:
		return s.Div(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindMod:
		return s.Mod(r.rewrite(e.A), r.rewrite(e.B), e.Pos)

	case ast.KindEq:
		return s.Eq(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindNe:
		return s.Ne(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindLt:
		return s.Lt(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindLe:
		return s.Le(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindGt:
		return s.Gt(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindGe:
		return s.Ge(r.rewrite(e.A), r.rewrite(e.B), e.Pos)

	case ast.KindNot:
		return r.canon.Negate(r.rewrite(e.A))

	case ast.KindAnd:
		return s.And(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindOr:
		return s.Or(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindXor:
		return s.Xor(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindImp:
		return s.Imp(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindEqu:
		return s.Equ(r.rewrite(e.A), r.rewrite(e.B), e.Pos)
	case ast.KindChoice:
		return s.Choice(r.rewrite(e.A), r.rewrite(e.B), r.rewrite(e.C), e.Pos)

	case ast.KindContext:
		name := e.Name
		if name == r.symCurr {
			name = r.bind
		}
		return s.Context(name, e.Pos)

	case ast.KindData:
		if e.A.Kind == ast.KindContext && e.A.Name == r.symCurr && r.bind != r.symCurr {
			return s.Data(s.Context(r.bind, e.A.Pos), e.Name, e.Pos)
		}
		return s.Data(e.A, e.Name, e.Pos)

	case ast.KindConf:
		return s.Conf(e.A, e.Name, e.Pos)

	case ast.KindMember:
		return s.Member(r.rewrite(e.A), e.Name, e.Pos)
	case ast.KindIndex:
		return s.Index(r.rewrite(e.A), r.rewrite(e.B), e.Pos)

	case ast.KindParen:
		arg := r.rewrite(e.A)
		if dropsParen(arg) {
			return arg
		}
		return s.Paren(arg, e.Pos)

	case ast.KindAt:
		return s.At(e.Name, r.rewrite(e.A), e.Pos)

	case ast.KindF:
		return s.F(r.rewrite(e.A), r.rewriteTime(e.Time), e.Pos)
	case ast.KindG:
		return s.G(r.rewrite(e.A), r.rewriteTime(e.Time), e.Pos)
	case ast.KindO:
		return s.O(r.rewrite(e.A), r.rewriteTime(e.Time), e.Pos)
	case ast.KindH:
		return s.H(r.rewrite(e.A), r.rewriteTime(e.Time), e.Pos)

	case ast.KindXs:
		if e.Time != nil {
			return r.eliminateNext(ast.KindXs, e)
		}
		return s.Xs(r.rewrite(e.A), nil, e.Pos)
	case ast.KindXw:
		if e.Time != nil {
			return r.eliminateNext(ast.KindXw, e)
		}
		return s.Xw(r.rewrite(e.A), nil, e.Pos)
	case ast.KindYs:
		if e.Time != nil {
			return r.eliminateNext(ast.KindYs, e)
		}
		return s.Ys(r.rewrite(e.A), nil, e.Pos)
	case ast.KindYw:
		if e.Time != nil {
			return r.eliminateNext(ast.KindYw, e)
		}
		return s.Yw(r.rewrite(e.A), nil, e.Pos)

	case ast.KindUs:
		if e.Time != nil {
			return r.eliminateUntil(ast.KindUs, e)
		}
		return s.Us(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)
	case ast.KindUw:
		if e.Time != nil {
			return r.eliminateUntil(ast.KindUw, e)
		}
		return s.Uw(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)
	case ast.KindSs:
		if e.Time != nil {
			return r.eliminateSince(ast.KindSs, e)
		}
		return s.Ss(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)
	case ast.KindSw:
		if e.Time != nil {
			return r.eliminateSince(ast.KindSw, e)
		}
		return s.Sw(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)

	case ast.KindRs:
		if e.Time != nil {
			// Rs^t(a,b) = ¬(Uw^t(¬a,¬b)) — eliminate through the dual.
			uw := s.Uw(s.Not(e.A, e.Pos), s.Not(e.B, e.Pos), e.Time, e.Pos)
			return r.canon.Negate(r.rewrite(uw))
		}
		return s.Rs(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)
	case ast.KindRw:
		if e.Time != nil {
			us := s.Us(s.Not(e.A, e.Pos), s.Not(e.B, e.Pos), e.Time, e.Pos)
			return r.canon.Negate(r.rewrite(us))
		}
		return s.Rw(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)
	case ast.KindTs:
		if e.Time != nil {
			sw := s.Sw(s.Not(e.A, e.Pos), s.Not(e.B, e.Pos), e.Time, e.Pos)
			return r.canon.Negate(r.rewrite(sw))
		}
		return s.Ts(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)
	case ast.KindTw:
		if e.Time != nil {
			ss := s.Ss(s.Not(e.A, e.Pos), s.Not(e.B, e.Pos), e.Time, e.Pos)
			return r.canon.Negate(r.rewrite(ss))
		}
		return s.Tw(r.rewrite(e.A), r.rewrite(e.B), nil, e.Pos)

	case ast.KindIntegral:
		return s.Integral(r.rewrite(e.A), r.rewrite(e.B), r.rewriteTime(e.Time), e.Pos)
	}

	return e
}

// rewriteTime rewrites a bound's Lo/Hi expressions under whatever binding
// is currently active for __curr__. F/G/O/H call this with the ordinary
// binding still in effect (their bound is only actually consumed once
// canonicalization has folded them into a timed Us/Rw/Ss/Tw, at which
// point it is rewritten again — this time under "starting", see
// eliminateUntil/eliminateSince); Us/Uw/Ss/Sw call it with r.bind already
// swapped to "starting" so a bound referencing __curr__ resolves against
// the starting sample, not the current one.
func (r *Rewriter) rewriteTime(t *ast.Time) *ast.Time {
	if t == nil {
		return nil
	}
	var lo, hi *ast.Expr
	if t.Lo != nil {
		lo = r.rewrite(t.Lo)
	}
	if t.Hi != nil {
		hi = r.rewrite(t.Hi)
	}
	return r.store.NewTime(t.Kind, lo, hi)
}

// rewriteTimeAsStarting rewrites a bound's Lo/Hi expressions with __curr__
// temporarily rebound to "starting", mirroring original_source's
// make(expr->time, "starting") (rewrite.cpp:598,623,507,541): a timed
// Us/Uw/Ss/Sw bound is evaluated against the sample where the eliminated
// operator's enclosing At-binding starts, not the sample the formula is
// being evaluated at.
func (r *Rewriter) rewriteTimeAsStarting(t *ast.Time) *ast.Time {
	saved := r.bind
	r.bind = r.symStarting
	out := r.rewriteTime(t)
	r.bind = saved
	return out
}

func dropsParen(x *ast.Expr) bool {
	switch x.Kind {
	case ast.KindParen, ast.KindContext, ast.KindData, ast.KindConf, ast.KindAt, ast.KindMember:
		return true
	case ast.KindBoolLit, ast.KindIntLit, ast.KindNumberLit, ast.KindStringLit, ast.KindTrue, ast.KindFalse:
		return true
	}
	return x.Kind.IsTemporal()
}
