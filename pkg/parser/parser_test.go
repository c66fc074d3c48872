package parser

import (
	"testing"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/types"
)

func newParser(t *testing.T) (*Parser, *intern.Table) {
	t.Helper()
	strings := intern.NewTable()
	p, err := New(strings)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p, strings
}

func TestParseDeclarations(t *testing.T) {
	p, _ := newParser(t)
	src := `
data speed: integer
conf limit: number
type Gear = enum { low, mid, high }
data gear: Gear
`
	res, err := p.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if _, ok := res.Module.Data("speed"); !ok {
		t.Error("expected data property speed")
	}
	if _, ok := res.Module.Conf("limit"); !ok {
		t.Error("expected configuration value limit")
	}
	gear, ok := res.Module.Data("gear")
	if !ok {
		t.Fatal("expected data property gear")
	}
	if gear.Type.Kind != types.Enum {
		t.Errorf("expected gear to be an enum, got %s", gear.Type)
	}
}

func TestParseDuplicateDeclaration(t *testing.T) {
	p, _ := newParser(t)
	_, err := p.ParseString(`
data x: integer
data x: number
`)
	if err == nil {
		t.Fatal("expected an error for duplicate declaration")
	}
}

func TestParseSimplePattern(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data p: boolean
universality(p)
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if len(res.Specs) != 1 {
		t.Fatalf("expected 1 spec, got %d", len(res.Specs))
	}
	sp := res.Specs[0]
	if sp.Kind != ast.Universality {
		t.Errorf("expected Universality, got %v", sp.Kind)
	}
	if sp.P.Kind != ast.KindData {
		t.Errorf("expected predicate to be a Data reference, got %v", sp.P.Kind)
	}
}

func TestParseTimedPattern(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data p: boolean
existence(p) [0, 10s]
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	sp := res.Specs[0]
	if sp.T == nil {
		t.Fatal("expected a time bound")
	}
	if sp.T.Kind != ast.Interval {
		t.Errorf("expected an interval bound, got %v", sp.T.Kind)
	}
	hi := sp.T.Hi
	if hi.Kind != ast.KindIntLit || hi.Lit.(int64) != 10_000_000_000 {
		t.Errorf("expected 10s to convert to 10e9 ns, got %#v", hi.Lit)
	}
}

func TestParseResponseWithOtherwise(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data p: boolean
data s: boolean
data q: boolean
response(p, s) [0, 5s] otherwise q
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	sp := res.Specs[0]
	if sp.Kind != ast.Response {
		t.Fatalf("expected Response, got %v", sp.Kind)
	}
	if sp.CPS == nil {
		t.Fatal("expected an otherwise constraint")
	}
}

func TestParseScopedPattern(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data p: boolean
data a: boolean
absence(p) while(a)
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	sp := res.Specs[0]
	if sp.Scope == nil || sp.Scope.Kind != ast.While {
		t.Fatalf("expected a While scope, got %#v", sp.Scope)
	}
}

func TestParseArithmeticAndAccess(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data x: struct { a: integer; b: number }
universality(x.a + x.b > 0.0)
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	sp := res.Specs[0]
	if sp.P.Kind != ast.KindGt {
		t.Fatalf("expected top-level Gt, got %v", sp.P.Kind)
	}
}

func TestParseAtBinding(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data p: boolean
universality(At(start, p))
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	sp := res.Specs[0]
	if sp.P.Kind != ast.KindAt {
		t.Fatalf("expected top-level At, got %v", sp.P.Kind)
	}
}

func TestParseUndeclaredNameFails(t *testing.T) {
	p, _ := newParser(t)
	_, err := p.ParseString(`universality(nope)`)
	if err == nil {
		t.Fatal("expected an error referencing an undeclared name")
	}
}

func TestParseIntegerBases(t *testing.T) {
	p, _ := newParser(t)
	res, err := p.ParseString(`
data x: integer
universality(x == 0xFF)
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	sp := res.Specs[0]
	eq := sp.P
	if eq.Kind != ast.KindEq {
		t.Fatalf("expected Eq, got %v", eq.Kind)
	}
	if eq.B.Lit.(int64) != 255 {
		t.Errorf("expected 0xFF to parse as 255, got %v", eq.B.Lit)
	}
}
