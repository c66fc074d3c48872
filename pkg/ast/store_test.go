package ast_test

import (
	"testing"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/position"
)

func TestHashConsIdempotence(t *testing.T) {
	s := ast.NewStore()
	pos := position.Position{Begin: position.Location{Row: 1, Col: 0}, End: position.Location{Row: 1, Col: 5}}

	a1 := s.IntLit(1, pos)
	b1 := s.IntLit(2, pos)
	add1 := s.Add(a1, b1, pos)

	a2 := s.IntLit(1, pos)
	b2 := s.IntLit(2, pos)
	add2 := s.Add(a2, b2, pos)

	if a1 != a2 {
		t.Error("IntLit(1) built twice at the same position should be identical")
	}
	if add1 != add2 {
		t.Error("Add(1, 2) built twice at the same position should be identical")
	}
}

func TestHashConsDistinguishesPosition(t *testing.T) {
	s := ast.NewStore()
	p1 := position.Position{Begin: position.Location{Row: 1, Col: 0}, End: position.Location{Row: 1, Col: 1}}
	p2 := position.Position{Begin: position.Location{Row: 2, Col: 0}, End: position.Location{Row: 2, Col: 1}}

	a := s.True(p1)
	b := s.True(p2)
	if a == b {
		t.Error("True at distinct non-synthetic positions should not collapse")
	}
}

func TestHashConsSyntheticCollapses(t *testing.T) {
	s := ast.NewStore()
	a := s.True(position.Synthetic)
	b := s.True(position.Synthetic)
	if a != b {
		t.Error("synthetic-position nodes of identical shape should collapse")
	}
}

func TestHashConsChildrenComparedByHandle(t *testing.T) {
	s := ast.NewStore()
	pos := position.Synthetic
	strs := intern.NewTable()

	x1 := s.Context(strs.Intern("__curr__"), pos)
	x2 := s.Context(strs.Intern("__curr__"), pos)
	if x1 != x2 {
		t.Fatal("expected Context(__curr__) to hash-cons")
	}

	d1 := s.Data(x1, strs.Intern("speed"), pos)
	d2 := s.Data(x2, strs.Intern("speed"), pos)
	if d1 != d2 {
		t.Error("Data nodes built from hash-consed children should themselves hash-cons")
	}
}

func TestTimeBoundHashCons(t *testing.T) {
	s := ast.NewStore()
	pos := position.Synthetic
	lo := s.IntLit(0, pos)
	hi := s.IntLit(10, pos)

	t1 := s.NewTime(ast.Interval, lo, hi)
	t2 := s.NewTime(ast.Interval, lo, hi)
	if t1 != t2 {
		t.Error("identical Time bounds should hash-cons")
	}

	t3 := s.NewTime(ast.Min, lo, nil)
	if t3.Hi != nil {
		t.Error("Min bound should have a nil Hi")
	}
}
