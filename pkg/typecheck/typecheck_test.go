package typecheck_test

import (
	"testing"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/module"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/typecheck"
	"github.com/rafiw/referee-sub000/pkg/types"
)

// TestStructMemberPromotion exercises spec.md §8 scenario 5: a struct
// property with an integer and a number member types x.a + x.b as Number
// (promotion) while x.a alone stays Integer.
func TestStructMemberPromotion(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic

	structType := mod.TypeStore().NewStruct([]types.Member{
		{Name: "a", Type: types.TypeInteger},
		{Name: "b", Type: types.TypeNumber},
	})
	if err := mod.AddData("x", structType, pos); err != nil {
		t.Fatalf("AddData: %v", err)
	}

	strs := intern.NewTable()
	s := ast.NewStore()
	curr := s.Context(strs.Intern(module.CurrentContext), pos)
	xData := s.Data(curr, strs.Intern("x"), pos)

	xa := s.Member(xData, strs.Intern("a"), pos)
	xb := s.Member(xData, strs.Intern("b"), pos)
	sum := s.Add(xa, xb, pos)

	calc := typecheck.New(mod, strs)

	aType, err := calc.Infer(xa)
	if err != nil {
		t.Fatalf("Infer(x.a): %v", err)
	}
	if aType.Kind != types.Integer {
		t.Errorf("expected x.a to be Integer, got %s", aType)
	}

	sumType, err := calc.Infer(sum)
	if err != nil {
		t.Fatalf("Infer(x.a + x.b): %v", err)
	}
	if sumType.Kind != types.Number {
		t.Errorf("expected x.a + x.b to promote to Number, got %s", sumType)
	}
}

// TestDuplicateDeclarationFails exercises spec.md §8 scenario 6.
func TestDuplicateDeclarationFails(t *testing.T) {
	mod := module.New()
	if err := mod.AddData("foo", types.TypeBoolean, position.Synthetic); err != nil {
		t.Fatalf("first AddData: %v", err)
	}
	err := mod.AddData("foo", types.TypeInteger, position.Synthetic)
	if err == nil {
		t.Fatal("expected an error re-declaring foo")
	}
}

func TestTypeIdempotence(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic
	if err := mod.AddData("p", types.TypeBoolean, pos); err != nil {
		t.Fatalf("AddData: %v", err)
	}
	strs := intern.NewTable()
	s := ast.NewStore()
	curr := s.Context(strs.Intern(module.CurrentContext), pos)
	p := s.Data(curr, strs.Intern("p"), pos)

	calc := typecheck.New(mod, strs)
	t1, err := calc.Infer(p)
	if err != nil {
		t.Fatalf("first Infer: %v", err)
	}
	t2, err := calc.Infer(p)
	if err != nil {
		t.Fatalf("second Infer: %v", err)
	}
	if t1 != t2 {
		t.Error("expected the second Infer call to return the same type without error")
	}
}

func TestIndexRequiresArrayAndIntegerIndex(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic
	arr := mod.TypeStore().NewArray(types.TypeInteger, 0)
	if err := mod.AddData("xs", arr, pos); err != nil {
		t.Fatalf("AddData: %v", err)
	}

	strs := intern.NewTable()
	s := ast.NewStore()
	curr := s.Context(strs.Intern(module.CurrentContext), pos)
	xs := s.Data(curr, strs.Intern("xs"), pos)
	idx := s.IntLit(0, pos)
	calc := typecheck.New(mod, strs)

	typ, err := calc.Infer(s.Index(xs, idx, pos))
	if err != nil {
		t.Fatalf("Infer(xs[0]): %v", err)
	}
	if typ.Kind != types.Integer {
		t.Errorf("expected xs[0] to be Integer, got %s", typ)
	}

	badIdx := s.StringLit(strs.Intern("nope"), pos)
	if _, err := calc.Infer(s.Index(xs, badIdx, pos)); err == nil {
		t.Error("expected indexing with a non-integer to fail")
	}
}

func TestUndeclaredContextFails(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic
	strs := intern.NewTable()
	s := ast.NewStore()

	bogus := s.Context(strs.Intern("nope"), pos)
	calc := typecheck.New(mod, strs)
	if _, err := calc.Infer(bogus); err == nil {
		t.Error("expected an undeclared context reference to fail")
	}
}
