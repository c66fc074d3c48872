// Package typecheck implements the type calculator of spec.md §4.2: it
// infers and attaches a type to every expression node, rejecting
// ill-typed programs.
package typecheck

import (
	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/errs"
	"github.com/rafiw/referee-sub000/pkg/module"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/types"
)

// Calculator infers types against one module's symbol table.
type Calculator struct {
	mod     *module.Module
	strings *intern.Table
}

// New creates a Calculator for mod, resolving interned names through
// strings.
func New(mod *module.Module, strings *intern.Table) *Calculator {
	return &Calculator{mod: mod, strings: strings}
}

// Infer computes e's type, mutating e's type slot (spec.md §4.2's
// contract). Idempotent: a second call on an already-typed node returns
// the stored type without recomputing.
func (c *Calculator) Infer(e *ast.Expr) (*types.Type, error) {
	if t := e.Type(); t != nil {
		return t, nil
	}
	t, err := c.infer(e)
	if err != nil {
		return nil, err
	}
	e.SetType(t)
	return t, nil
}

func (c *Calculator) infer(e *ast.Expr) (*types.Type, error) {
	switch e.Kind {
	case ast.KindBoolLit, ast.KindTrue, ast.KindFalse:
		return types.TypeBoolean, nil
	case ast.KindIntLit:
		return types.TypeInteger, nil
	case ast.KindNumberLit:
		return types.TypeNumber, nil
	case ast.KindStringLit:
		return types.TypeString, nil

	case ast.KindNeg:
		x, err := c.Infer(e.A)
		if err != nil {
			return nil, err
		}
		if !x.IsNumeric() {
			return nil, errs.NewTypeError(e.Pos, "operand of unary - must be numeric, got %s", x)
		}
		return x, nil

	case ast.KindAdd, ast.KindSub, ast.KindMul, ast.KindDiv:
		return c.arith(e, true)
	case ast.KindMod:
		return c.arith(e, false)

	case ast.KindEq, ast.KindNe:
		return c.equality(e)
	case ast.KindLt, ast.KindLe, ast.KindGt, ast.KindGe:
		return c.ordering(e)

	case ast.KindNot:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		return types.TypeBoolean, nil

	case ast.KindAnd, ast.KindOr, ast.KindXor, ast.KindImp, ast.KindEqu:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		if err := c.expectBoolean(e.B); err != nil {
			return nil, err
		}
		return types.TypeBoolean, nil

	case ast.KindChoice:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		then, err := c.Infer(e.B)
		if err != nil {
			return nil, err
		}
		els, err := c.Infer(e.C)
		if err != nil {
			return nil, err
		}
		return c.unify(e.Pos, then, els)

	case ast.KindContext:
		name := c.strings.Text(e.Name)
		t, ok := c.mod.ContextType(name)
		if !ok {
			return nil, errs.NewTypeError(e.Pos, "undeclared context %q", name)
		}
		return t, nil

	case ast.KindData:
		if _, err := c.Infer(e.A); err != nil {
			return nil, err
		}
		name := c.strings.Text(e.Name)
		d, ok := c.mod.Data(name)
		if !ok {
			return nil, errs.NewTypeError(e.Pos, "undeclared property %q", name)
		}
		return d.Type, nil

	case ast.KindConf:
		if _, err := c.Infer(e.A); err != nil {
			return nil, err
		}
		name := c.strings.Text(e.Name)
		d, ok := c.mod.Conf(name)
		if !ok {
			return nil, errs.NewTypeError(e.Pos, "undeclared configuration value %q", name)
		}
		return d.Type, nil

	case ast.KindMember:
		base, err := c.Infer(e.A)
		if err != nil {
			return nil, err
		}
		name := c.strings.Text(e.Name)
		t, ok := base.MemberType(name)
		if !ok {
			return nil, errs.NewTypeError(e.Pos, "%s has no member %q", base, name)
		}
		return t, nil

	case ast.KindIndex:
		base, err := c.Infer(e.A)
		if err != nil {
			return nil, err
		}
		if base.Kind != types.Array {
			return nil, errs.NewTypeError(e.Pos, "cannot index non-array type %s", base)
		}
		idx, err := c.Infer(e.B)
		if err != nil {
			return nil, err
		}
		if idx.Kind != types.Integer {
			return nil, errs.NewTypeError(e.Pos, "array index must be integer, got %s", idx)
		}
		return base.Elem, nil

	case ast.KindParen:
		return c.Infer(e.A)

	case ast.KindAt:
		name := c.strings.Text(e.Name)
		c.mod.PushContext(name)
		defer c.mod.PopContext()
		return c.Infer(e.A)

	case ast.KindF, ast.KindG, ast.KindO, ast.KindH:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		return types.TypeBoolean, nil

	case ast.KindXs, ast.KindXw, ast.KindYs, ast.KindYw:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		return types.TypeBoolean, nil

	case ast.KindUs, ast.KindUw, ast.KindRs, ast.KindRw,
		ast.KindSs, ast.KindSw, ast.KindTs, ast.KindTw:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		if err := c.expectBoolean(e.B); err != nil {
			return nil, err
		}
		return types.TypeBoolean, nil

	case ast.KindIntegral:
		if err := c.expectBoolean(e.A); err != nil {
			return nil, err
		}
		rhs, err := c.Infer(e.B)
		if err != nil {
			return nil, err
		}
		if !rhs.IsNumeric() {
			return nil, errs.NewTypeError(e.Pos, "integral integrand must be numeric, got %s", rhs)
		}
		return rhs, nil
	}

	return nil, errs.NewInternalError(e.Pos, "type calculator received unhandled kind %s", e.Kind)
}

func (c *Calculator) expectBoolean(x *ast.Expr) error {
	t, err := c.Infer(x)
	if err != nil {
		return err
	}
	if t.Kind != types.Boolean {
		return errs.NewTypeError(x.Pos, "expected boolean operand, got %s", t)
	}
	return nil
}

// arith types a binary arithmetic operator. When promote is true, an
// Integer/Number mix promotes to Number (spec.md §4.2's table); Mod does
// not promote and demands both operands Integer.
func (c *Calculator) arith(e *ast.Expr, promote bool) (*types.Type, error) {
	l, err := c.Infer(e.A)
	if err != nil {
		return nil, err
	}
	r, err := c.Infer(e.B)
	if err != nil {
		return nil, err
	}
	if !l.IsNumeric() || !r.IsNumeric() {
		return nil, errs.NewTypeError(e.Pos, "%s requires numeric operands, got %s and %s", e.Kind, l, r)
	}
	if l.Kind == types.Integer && r.Kind == types.Integer {
		return types.TypeInteger, nil
	}
	if !promote {
		return nil, errs.NewTypeError(e.Pos, "%s requires two integer operands, got %s and %s", e.Kind, l, r)
	}
	return types.TypeNumber, nil
}

func (c *Calculator) equality(e *ast.Expr) (*types.Type, error) {
	l, err := c.Infer(e.A)
	if err != nil {
		return nil, err
	}
	r, err := c.Infer(e.B)
	if err != nil {
		return nil, err
	}
	switch {
	case l.Kind == types.Boolean && r.Kind == types.Boolean:
	case l.Kind == types.String && r.Kind == types.String:
	case l.Kind == types.Enum && l == r:
	case l.IsNumeric() && r.IsNumeric():
	default:
		return nil, errs.NewTypeError(e.Pos, "%s not defined between %s and %s", e.Kind, l, r)
	}
	return types.TypeBoolean, nil
}

func (c *Calculator) ordering(e *ast.Expr) (*types.Type, error) {
	l, err := c.Infer(e.A)
	if err != nil {
		return nil, err
	}
	r, err := c.Infer(e.B)
	if err != nil {
		return nil, err
	}
	switch {
	case l.IsNumeric() && r.IsNumeric():
	case l.Kind == types.String && r.Kind == types.String:
	default:
		return nil, errs.NewTypeError(e.Pos, "%s not defined between %s and %s", e.Kind, l, r)
	}
	return types.TypeBoolean, nil
}

// unify resolves Choice's "t, e: same type" rule with the Integer/Number
// implicit promotion spec.md §4.2 calls out.
func (c *Calculator) unify(pos position.Position, t, f *types.Type) (*types.Type, error) {
	if t == f {
		return t, nil
	}
	if t.IsNumeric() && f.IsNumeric() {
		return types.TypeNumber, nil
	}
	return nil, errs.NewTypeError(pos, "choice branches have incompatible types %s and %s", t, f)
}
