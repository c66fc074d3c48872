package printer_test

import (
	"testing"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/printer"
)

func TestPrintUnaryTemporal(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	f := s.F(x, nil, pos)

	got := printer.New(strs).Print(f)
	want := "F(__curr__.p)"
	if got != want {
		t.Errorf("Print(F(p)) = %q, want %q", got, want)
	}
}

func TestPrintBinaryTemporal(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	y := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("q"), pos)
	us := s.Us(x, y, nil, pos)

	got := printer.New(strs).Print(us)
	want := "(__curr__.p Us __curr__.q)"
	if got != want {
		t.Errorf("Print(Us) = %q, want %q", got, want)
	}
}

func TestPrintInfixArithmeticAndBoolean(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	a := s.IntLit(1, pos)
	b := s.IntLit(2, pos)
	sum := s.Add(a, b, pos)
	and := s.And(sum, s.True(pos), pos)

	got := printer.New(strs).Print(and)
	want := "1 + 2 and true"
	if got != want {
		t.Errorf("Print(1+2 and true) = %q, want %q", got, want)
	}
}

func TestPrintAtBinding(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("starting"), pos), strs.Intern("p"), pos)
	at := s.At(strs.Intern("starting"), x, pos)

	got := printer.New(strs).Print(at)
	want := "At(starting, starting.p)"
	if got != want {
		t.Errorf("Print(At) = %q, want %q", got, want)
	}
}

func TestPrintIsDeterministic(t *testing.T) {
	s := ast.NewStore()
	strs := intern.NewTable()
	pos := position.Synthetic

	x := s.Data(s.Context(strs.Intern("__curr__"), pos), strs.Intern("p"), pos)
	not := s.Not(x, pos)

	pr := printer.New(strs)
	first := pr.Print(not)
	second := pr.Print(not)
	if first != second {
		t.Errorf("expected Print to be deterministic, got %q then %q", first, second)
	}
}
