package typecheck

import (
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/errs"
	"github.com/rafiw/referee-sub000/pkg/types"
)

// CheckSpec types every expression a specification-pattern occurrence
// references — its predicates, its gap constraints, its scope bounds, and
// the endpoints of every time bound attached to it — rejecting anything
// that is not a Boolean predicate or an Integer time bound, per
// spec.md §4.2's table applied at the pattern level rather than the bare
// expression level the Calculator otherwise operates on.
func (c *Calculator) CheckSpec(sp *ast.Spec) error {
	for _, e := range []*ast.Expr{sp.P, sp.S, sp.Q, sp.CPS, sp.CST} {
		if e == nil {
			continue
		}
		if err := c.expectBoolean(e); err != nil {
			return err
		}
	}
	if sp.Scope != nil {
		for _, e := range []*ast.Expr{sp.Scope.A, sp.Scope.B} {
			if e == nil {
				continue
			}
			if err := c.expectBoolean(e); err != nil {
				return err
			}
		}
	}
	for _, t := range []*ast.Time{sp.T, sp.TPS, sp.TST} {
		if err := c.checkTime(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *Calculator) checkTime(t *ast.Time) error {
	if t == nil {
		return nil
	}
	for _, e := range []*ast.Expr{t.Lo, t.Hi} {
		if e == nil {
			continue
		}
		typ, err := c.Infer(e)
		if err != nil {
			return err
		}
		if typ.Kind != types.Integer {
			return errs.NewTypeError(e.Pos, "time bound endpoint must be an integer nanosecond value, got %s", typ)
		}
	}
	return nil
}
