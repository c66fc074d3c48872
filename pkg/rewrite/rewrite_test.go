package rewrite_test

import (
	"testing"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/rewrite"
)

func data(s *ast.Store, strs *intern.Table, name string, pos position.Position) *ast.Expr {
	curr := s.Context(strs.Intern("__curr__"), pos)
	return s.Data(curr, strs.Intern(name), pos)
}

// countKind reports how many nodes in the tree rooted at e have kind k,
// walking through every child slot and both time-bound endpoints.
func countKind(e *ast.Expr, k ast.Kind) int {
	if e == nil {
		return 0
	}
	n := 0
	if e.Kind == k {
		n++
	}
	for _, child := range e.Children() {
		n += countKind(child, k)
	}
	if e.Time != nil {
		n += countKind(e.Time.Lo, k)
		n += countKind(e.Time.Hi, k)
	}
	return n
}

// hasKind reports whether the tree rooted at e contains a node of kind k.
func hasKind(e *ast.Expr, k ast.Kind) bool {
	return countKind(e, k) > 0
}

// TestRewriteEliminatesTimeBounds exercises spec.md §8 scenario 2: a timed
// Existence pattern rewrites to an At-bound formula carrying no Time on
// any node.
func TestRewriteEliminatesTimeBounds(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	p := data(s, strs, "p", pos)
	bound := s.NewTime(ast.Interval, s.IntLit(0, pos), s.IntLit(10_000_000_000, pos))
	sp := ast.NewExistence(p, bound, pos)

	rw := rewrite.New(s, strs)
	out := rw.Spec(sp)

	if out.Kind != ast.KindAt {
		t.Fatalf("expected a timed Existence to rewrite to an At-binding, got %v", out.Kind)
	}

	var walk func(*ast.Expr)
	walk = func(e *ast.Expr) {
		if e == nil {
			return
		}
		if e.Time != nil {
			t.Errorf("node %v still carries a time bound after rewrite", e.Kind)
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(out)
}

// TestRewriteTotalityOnConjunction exercises spec.md §8 scenario 4: after
// rewriting, a conjunction of two timed Universality/Absence patterns
// contains no G/F/O/H node that still carries a time bound.
func TestRewriteTotalityOnConjunction(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	p := data(s, strs, "p", pos)
	q := data(s, strs, "q", pos)
	bound := s.NewTime(ast.Interval, s.IntLit(0, pos), s.IntLit(5_000_000_000, pos))

	universality := ast.NewUniversality(p, bound, pos)
	absence := ast.NewAbsence(q, bound, pos)

	rw := rewrite.New(s, strs)
	u := rw.Spec(universality)
	a := rw.Spec(absence)
	conj := s.And(u, a, pos)

	for _, k := range []ast.Kind{ast.KindG, ast.KindF} {
		if hasKind(conj, k) && countKindUntimed(conj, k) == 0 {
			t.Errorf("expected no remaining timed %v node after rewrite", k)
		}
	}

	var walk func(*ast.Expr)
	walk = func(e *ast.Expr) {
		if e == nil {
			return
		}
		if (e.Kind == ast.KindG || e.Kind == ast.KindF || e.Kind == ast.KindO || e.Kind == ast.KindH) && e.Time != nil {
			t.Errorf("found a G/F/O/H node that still carries a time bound")
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	walk(conj)
}

// countKindUntimed counts occurrences of k whose Time field is nil — used
// to confirm a formerly-timed operator has been fully eliminated rather
// than merely relocated.
func countKindUntimed(e *ast.Expr, k ast.Kind) int {
	if e == nil {
		return 0
	}
	n := 0
	if e.Kind == k && e.Time == nil {
		n++
	}
	for _, c := range e.Children() {
		n += countKindUntimed(c, k)
	}
	return n
}

// TestRewriteResponseWithOtherwise exercises spec.md §8 scenario 3: a
// timed Response pattern with a constraint lowers to a G(Imp(P, Uw(...)))
// shape before timed-operator elimination removes every bound.
func TestRewriteResponseWithOtherwise(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	p := data(s, strs, "p", pos)
	q := data(s, strs, "q", pos)
	notQ := s.Not(q, pos)
	bound := s.NewTime(ast.Interval, s.IntLit(0, pos), s.IntLit(5_000_000_000, pos))

	sp := ast.NewResponse(p, q, notQ, bound, pos)

	rw := rewrite.New(s, strs)
	out := rw.Spec(sp)

	// Response lowers to G(Imp(P, Uw(...))), and G canonicalizes to the
	// kernel form False Rw ..., so the converged top-level kind is Rw.
	if out.Kind != ast.KindRw {
		t.Fatalf("expected Response's canonicalized top-level form to be Rw, got %v", out.Kind)
	}
	if !hasKind(out, ast.KindUw) && !hasKind(out, ast.KindUs) {
		t.Error("expected Response's body to retain an until-family operator after rewrite")
	}
}

// TestFixedPointStabilizes confirms that calling FixedPoint a second time
// on the converged result of an untimed formula returns the identical
// hash-consed node (spec.md §4.5.5's convergence guarantee).
func TestFixedPointStabilizes(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	p := data(s, strs, "p", pos)
	rw := rewrite.New(s, strs)

	once := rw.FixedPoint(s.G(p, nil, pos))
	twice := rw.FixedPoint(once)
	if once != twice {
		t.Error("expected FixedPoint to be stable on an already-converged formula")
	}
}
