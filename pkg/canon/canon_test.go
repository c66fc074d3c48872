package canon_test

import (
	"testing"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/canon"
	"github.com/rafiw/referee-sub000/pkg/position"
)

func TestCanonicalizeTrueAndFalse(t *testing.T) {
	s := ast.NewStore()
	c := canon.New(s)
	pos := position.Synthetic

	if got := c.Canonicalize(s.True(pos)); got != s.True(pos) {
		t.Error("canonic(True) should be True")
	}
	if got := c.Negate(s.True(pos)); got != s.False(pos) {
		t.Error("negate(True) should be False")
	}
}

// canonic(¬F x) should become G(¬x), which canonicalizes to the kernel
// form False Rw ¬x (spec.md §8, scenario 1).
func TestNegateEventuallyBecomesAlwaysNegated(t *testing.T) {
	s := ast.NewStore()
	c := canon.New(s)
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	fx := s.F(x, nil, pos)

	negated := c.Negate(fx)
	if negated.Kind != ast.KindG {
		t.Fatalf("expected negate(F x) to produce a G node, got %v", negated.Kind)
	}
	if negated.A.Kind != ast.KindNot {
		t.Fatalf("expected G's operand to be Not(x), got %v", negated.A.Kind)
	}

	kernel := c.Canonicalize(negated)
	if kernel.Kind != ast.KindRw {
		t.Fatalf("expected canonic(G ¬x) to produce a kernel Rw node, got %v", kernel.Kind)
	}
	if kernel.A.Kind != ast.KindFalse {
		t.Errorf("expected G's False Rw lowering to guard with False, got %v", kernel.A.Kind)
	}
}

func TestNegationInvolution(t *testing.T) {
	s := ast.NewStore()
	c := canon.New(s)
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	y := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("q"), pos)

	exprs := []*ast.Expr{
		s.And(x, y, pos),
		s.Or(x, y, pos),
		s.Imp(x, y, pos),
		s.Us(x, y, nil, pos),
		s.G(x, nil, pos),
		s.Xs(x, nil, pos),
	}

	for _, e := range exprs {
		canonical := c.Canonicalize(e)
		twice := c.Negate(c.Negate(canonical))
		if twice != canonical {
			t.Errorf("negate(negate(%v)) != canonic(%v): got kind %v, want kind %v", e.Kind, e.Kind, twice.Kind, canonical.Kind)
		}
	}
}

func TestCanonicalizationStability(t *testing.T) {
	s := ast.NewStore()
	c := canon.New(s)
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	y := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("q"), pos)

	exprs := []*ast.Expr{
		s.Imp(x, y, pos),
		s.F(x, nil, pos),
		s.H(y, nil, pos),
		s.Not(s.And(x, y, pos), pos),
	}

	for _, e := range exprs {
		once := c.Canonicalize(e)
		twice := c.Canonicalize(once)
		if once != twice {
			t.Errorf("canonic(canonic(e)) != canonic(e) for kind %v", e.Kind)
		}
	}
}

func TestDualsPreserveTimeBound(t *testing.T) {
	s := ast.NewStore()
	c := canon.New(s)
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	y := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("q"), pos)
	bound := s.NewTime(ast.Interval, s.IntLit(0, pos), s.IntLit(5_000_000_000, pos))

	us := s.Us(x, y, bound, pos)
	negated := c.Negate(us)
	if negated.Kind != ast.KindRw {
		t.Fatalf("expected ¬(a Us b) to produce Rw, got %v", negated.Kind)
	}
	if negated.Time != bound {
		t.Error("expected the time bound to survive negation through the dual")
	}
}
