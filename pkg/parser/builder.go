package parser

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/shopspring/decimal"

	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/ast"
	"github.com/rafiw/referee-sub000/pkg/module"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/types"
)

// nsPerUnit is the spec.md §3 unit-suffix table: every duration literal
// is converted to integer nanoseconds at parse time.
var nsPerUnit = map[string]int64{
	"ns":  1,
	"us":  1_000,
	"ms":  1_000_000,
	"s":   1_000_000_000,
	"min": 60_000_000_000,
}

// builder turns a parsed grammar tree into a module.Module plus the
// ast.Spec occurrences it declares, resolving names and constant-folding
// literals along the way (spec.md §6's "Input AST contract" is this
// package's half of the boundary).
type builder struct {
	strings *intern.Table
	store   *ast.Store
	mod     *module.Module
	specs   []*ast.Spec
}

func newBuilder(strings *intern.Table) *builder {
	return &builder{
		strings: strings,
		store:   ast.NewStore(),
		mod:     module.New(),
	}
}

// program processes a Program in two passes: declarations first (so every
// spec statement can resolve any name declared anywhere in the file), then
// spec-pattern statements in source order.
func (b *builder) program(p *Program) error {
	var pending []*SpecStmt
	for _, st := range p.Statements {
		switch {
		case st.Type != nil:
			if err := b.typeDecl(st.Type); err != nil {
				return err
			}
		case st.Data != nil:
			if err := b.dataDecl(st.Data); err != nil {
				return err
			}
		case st.Conf != nil:
			if err := b.confDecl(st.Conf); err != nil {
				return err
			}
		case st.Spec != nil:
			pending = append(pending, st.Spec)
		}
	}
	for _, ss := range pending {
		sp, err := b.specStmt(ss)
		if err != nil {
			return err
		}
		b.specs = append(b.specs, sp)
	}
	return nil
}

func toPosition(p lexer.Position) position.Position {
	loc := position.Location{Row: p.Line, Col: p.Column - 1}
	return position.Position{Begin: loc, End: loc}
}

func (b *builder) typeDecl(d *TypeDecl) error {
	t, err := b.typeExpr(d.Type)
	if err != nil {
		return err
	}
	return b.mod.AddType(d.Name, t, toPosition(d.Pos))
}

func (b *builder) dataDecl(d *DataDecl) error {
	t, err := b.typeExpr(d.Type)
	if err != nil {
		return err
	}
	return b.mod.AddData(d.Name, t, toPosition(d.Pos))
}

func (b *builder) confDecl(d *ConfDecl) error {
	t, err := b.typeExpr(d.Type)
	if err != nil {
		return err
	}
	return b.mod.AddConf(d.Name, t, toPosition(d.Pos))
}

// typeExpr resolves a TypeExpr to a hash-consed types.Type, requiring any
// named reference to an earlier type declaration to already be
// registered (the two-pass declaration order spec.md §6 describes).
func (b *builder) typeExpr(t *TypeExpr) (*types.Type, error) {
	store := b.mod.TypeStore()
	switch {
	case t.Struct != nil:
		seen := make(map[string]bool, len(t.Struct.Members))
		members := make([]types.Member, 0, len(t.Struct.Members))
		for _, m := range t.Struct.Members {
			if seen[m.Name] {
				return nil, fmt.Errorf("parser: duplicate struct member %q", m.Name)
			}
			seen[m.Name] = true
			mt, err := b.typeExpr(m.Type)
			if err != nil {
				return nil, err
			}
			members = append(members, types.Member{Name: m.Name, Type: mt})
		}
		return store.NewStruct(members), nil

	case t.Array != nil:
		elem, err := b.typeExpr(t.Array.Elem)
		if err != nil {
			return nil, err
		}
		return store.NewArray(elem, t.Array.Size), nil

	case t.Enum != nil:
		seen := make(map[string]bool, len(t.Enum.Items))
		for _, item := range t.Enum.Items {
			if seen[item] {
				return nil, fmt.Errorf("parser: duplicate enum item %q", item)
			}
			seen[item] = true
		}
		return store.NewEnum(t.Enum.Items), nil

	default:
		named, ok := b.mod.LookupType(t.Name)
		if !ok {
			return nil, fmt.Errorf("parser: undeclared type %q", t.Name)
		}
		return named, nil
	}
}

// --- Specification patterns ---

func (b *builder) specStmt(ss *SpecStmt) (*ast.Spec, error) {
	args, err := b.exprList(ss.Args)
	if err != nil {
		return nil, err
	}
	times, err := b.timeList(ss.Times)
	if err != nil {
		return nil, err
	}
	var otherwise *ast.Expr
	if ss.Otherwise != nil {
		otherwise, err = b.expr(ss.Otherwise)
		if err != nil {
			return nil, err
		}
	}
	pos := toPosition(ss.Pos)

	arg := func(i int) *ast.Expr {
		if i < len(args) {
			return args[i]
		}
		return nil
	}
	bound := func(i int) *ast.Time {
		if i < len(times) {
			return times[i]
		}
		return nil
	}

	var sp *ast.Spec
	switch ss.Kind {
	case "universality":
		sp = ast.NewUniversality(arg(0), bound(0), pos)
	case "absence":
		sp = ast.NewAbsence(arg(0), bound(0), pos)
	case "existence":
		sp = ast.NewExistence(arg(0), bound(0), pos)
	case "transient_state":
		sp = ast.NewTransientState(arg(0), bound(0), pos)
	case "steady_state":
		sp = ast.NewSteadyState(arg(0), pos)
	case "minimum_duration":
		sp = ast.NewMinimumDuration(arg(0), bound(0), pos)
	case "maximum_duration":
		sp = ast.NewMaximumDuration(arg(0), bound(0), pos)
	case "recurrence":
		sp = ast.NewRecurrence(arg(0), bound(0), pos)
	case "precedence":
		sp = ast.NewPrecedence(arg(0), arg(1), bound(0), pos)
	case "precedence_chain_12":
		sp = ast.NewPrecedenceChain12(arg(0), arg(1), arg(2), bound(0), bound(1), pos)
	case "precedence_chain_21":
		sp = ast.NewPrecedenceChain21(arg(0), arg(1), arg(2), bound(0), bound(1), pos)
	case "response":
		sp = ast.NewResponse(arg(0), arg(1), otherwise, bound(0), pos)
	case "response_chain_12":
		sp = ast.NewResponseChain12(arg(0), arg(1), arg(2), otherwise, otherwise, bound(0), bound(1), pos)
	case "response_chain_21":
		sp = ast.NewResponseChain21(arg(0), arg(1), arg(2), otherwise, otherwise, bound(0), bound(1), pos)
	case "response_invariance":
		sp = ast.NewResponseInvariance(arg(0), arg(1), bound(0), pos)
	case "until":
		sp = ast.NewUntil(arg(0), arg(1), bound(0), pos)
	default:
		return nil, fmt.Errorf("parser: unknown specification pattern %q", ss.Kind)
	}

	if ss.Scope != nil {
		sc, err := b.scope(ss.Scope)
		if err != nil {
			return nil, err
		}
		sp = sp.WithScope(sc)
	}
	return sp, nil
}

func (b *builder) scope(sc *ScopeSuffix) (*ast.Scope, error) {
	args, err := b.exprList(sc.Args)
	if err != nil {
		return nil, err
	}
	until, err := b.exprList(sc.UntilArgs)
	if err != nil {
		return nil, err
	}

	switch sc.Kind {
	case "globally":
		return &ast.Scope{Kind: ast.Globally}, nil
	case "before":
		return &ast.Scope{Kind: ast.Before, A: args[0]}, nil
	case "after":
		return &ast.Scope{Kind: ast.After, A: args[0]}, nil
	case "while":
		return &ast.Scope{Kind: ast.While, A: args[0]}, nil
	case "between":
		if len(until) == 1 {
			return &ast.Scope{Kind: ast.AfterUntil, A: args[0], B: until[0]}, nil
		}
		return &ast.Scope{Kind: ast.BetweenAnd, A: args[0], B: args[1]}, nil
	}
	return nil, fmt.Errorf("parser: unknown scope %q", sc.Kind)
}

func (b *builder) exprList(in []*Expression) ([]*ast.Expr, error) {
	out := make([]*ast.Expr, 0, len(in))
	for _, e := range in {
		x, err := b.expr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

func (b *builder) timeList(in []*TimeBound) ([]*ast.Time, error) {
	out := make([]*ast.Time, 0, len(in))
	for _, tb := range in {
		t, err := b.timeBound(tb)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (b *builder) timeBound(tb *TimeBound) (*ast.Time, error) {
	var lo, hi *ast.Expr
	var err error
	if tb.Lo != nil {
		lo, err = b.expr(tb.Lo)
		if err != nil {
			return nil, err
		}
	}
	if tb.Hi != nil {
		hi, err = b.expr(tb.Hi)
		if err != nil {
			return nil, err
		}
	}
	switch {
	case lo != nil && hi != nil:
		return b.store.NewTime(ast.Interval, lo, hi), nil
	case lo != nil:
		return b.store.NewTime(ast.Min, lo, nil), nil
	case hi != nil:
		return b.store.NewTime(ast.Max, nil, hi), nil
	}
	return nil, nil
}

// --- Expressions ---
//
// Each level folds its repeated-operator captures left-to-right into a
// left-associative chain of binary Exprs, per the precedence tiers laid
// out in grammar.go.

func (b *builder) expr(e *Expression) (*ast.Expr, error) {
	left, err := b.equivalence(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.equivalence(op.Right)
		if err != nil {
			return nil, err
		}
		left = b.store.Imp(left, right, left.Pos)
	}
	return left, nil
}

func (b *builder) equivalence(e *Equivalence) (*ast.Expr, error) {
	left, err := b.disjunction(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.disjunction(op.Right)
		if err != nil {
			return nil, err
		}
		left = b.store.Equ(left, right, left.Pos)
	}
	return left, nil
}

func (b *builder) disjunction(e *Disjunction) (*ast.Expr, error) {
	left, err := b.conjunction(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.conjunction(op.Right)
		if err != nil {
			return nil, err
		}
		if op.Op == "xor" {
			left = b.store.Xor(left, right, left.Pos)
		} else {
			left = b.store.Or(left, right, left.Pos)
		}
	}
	return left, nil
}

func (b *builder) conjunction(e *Conjunction) (*ast.Expr, error) {
	left, err := b.temporal(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.temporal(op.Right)
		if err != nil {
			return nil, err
		}
		left = b.store.And(left, right, left.Pos)
	}
	return left, nil
}

var binaryTemporalKind = map[string]ast.Kind{
	"Us": ast.KindUs, "Uw": ast.KindUw, "Rs": ast.KindRs, "Rw": ast.KindRw,
	"Ss": ast.KindSs, "Sw": ast.KindSw, "Ts": ast.KindTs, "Tw": ast.KindTw,
}

func (b *builder) temporal(e *Temporal) (*ast.Expr, error) {
	left, err := b.relational(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.relational(op.Right)
		if err != nil {
			return nil, err
		}
		var t *ast.Time
		if op.Time != nil {
			t, err = b.timeBound(op.Time)
			if err != nil {
				return nil, err
			}
		}
		kind, ok := binaryTemporalKind[op.Op]
		if !ok {
			return nil, fmt.Errorf("parser: unknown temporal operator %q", op.Op)
		}
		left = b.binaryTemporalNode(kind, left, right, t, left.Pos)
	}
	return left, nil
}

func (b *builder) binaryTemporalNode(k ast.Kind, l, r *ast.Expr, t *ast.Time, pos position.Position) *ast.Expr {
	s := b.store
	switch k {
	case ast.KindUs:
		return s.Us(l, r, t, pos)
	case ast.KindUw:
		return s.Uw(l, r, t, pos)
	case ast.KindRs:
		return s.Rs(l, r, t, pos)
	case ast.KindRw:
		return s.Rw(l, r, t, pos)
	case ast.KindSs:
		return s.Ss(l, r, t, pos)
	case ast.KindSw:
		return s.Sw(l, r, t, pos)
	case ast.KindTs:
		return s.Ts(l, r, t, pos)
	default:
		return s.Tw(l, r, t, pos)
	}
}

func (b *builder) relational(e *Relational) (*ast.Expr, error) {
	left, err := b.additive(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.additive(op.Right)
		if err != nil {
			return nil, err
		}
		switch op.Op {
		case "==":
			left = b.store.Eq(left, right, left.Pos)
		case "!=":
			left = b.store.Ne(left, right, left.Pos)
		case "<":
			left = b.store.Lt(left, right, left.Pos)
		case "<=":
			left = b.store.Le(left, right, left.Pos)
		case ">":
			left = b.store.Gt(left, right, left.Pos)
		case ">=":
			left = b.store.Ge(left, right, left.Pos)
		}
	}
	return left, nil
}

func (b *builder) additive(e *Additive) (*ast.Expr, error) {
	left, err := b.multiplicative(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.multiplicative(op.Right)
		if err != nil {
			return nil, err
		}
		if op.Op == "+" {
			left = b.store.Add(left, right, left.Pos)
		} else {
			left = b.store.Sub(left, right, left.Pos)
		}
	}
	return left, nil
}

func (b *builder) multiplicative(e *Multiplicative) (*ast.Expr, error) {
	left, err := b.unary(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := b.unary(op.Right)
		if err != nil {
			return nil, err
		}
		switch op.Op {
		case "*":
			left = b.store.Mul(left, right, left.Pos)
		case "/":
			left = b.store.Div(left, right, left.Pos)
		default:
			left = b.store.Mod(left, right, left.Pos)
		}
	}
	return left, nil
}

func (b *builder) unary(u *Unary) (*ast.Expr, error) {
	switch {
	case u.Neg != nil:
		x, err := b.unary(u.Neg)
		if err != nil {
			return nil, err
		}
		return b.store.Neg(x, x.Pos), nil
	case u.Not != nil:
		x, err := b.unary(u.Not)
		if err != nil {
			return nil, err
		}
		return b.store.Not(x, x.Pos), nil
	default:
		return b.postfix(u.Postf)
	}
}

func (b *builder) postfix(p *Postfix) (*ast.Expr, error) {
	base, err := b.primary(p.Base)
	if err != nil {
		return nil, err
	}
	for _, step := range p.Trailers {
		if step.Index != nil {
			idx, err := b.expr(step.Index)
			if err != nil {
				return nil, err
			}
			base = b.store.Index(base, idx, base.Pos)
			continue
		}
		base = b.store.Member(base, b.strings.Intern(step.Member), base.Pos)
	}
	return base, nil
}

func (b *builder) primary(p *Primary) (*ast.Expr, error) {
	pos := toPosition(p.Pos)
	switch {
	case p.Duration != nil:
		v, err := parseDuration(*p.Duration)
		if err != nil {
			return nil, fmt.Errorf("parser: %w", err)
		}
		return b.store.IntLit(v, pos), nil

	case p.Hex != nil:
		v, err := strconv.ParseInt((*p.Hex)[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("parser: invalid hex integer literal %q: %w", *p.Hex, err)
		}
		return b.store.IntLit(v, pos), nil

	case p.Oct != nil:
		v, err := strconv.ParseInt((*p.Oct)[2:], 8, 64)
		if err != nil {
			return nil, fmt.Errorf("parser: invalid octal integer literal %q: %w", *p.Oct, err)
		}
		return b.store.IntLit(v, pos), nil

	case p.Bin != nil:
		v, err := strconv.ParseInt((*p.Bin)[2:], 2, 64)
		if err != nil {
			return nil, fmt.Errorf("parser: invalid binary integer literal %q: %w", *p.Bin, err)
		}
		return b.store.IntLit(v, pos), nil

	case p.Float != nil:
		// Parsed through decimal first (exact base-10 parsing) before
		// the final float64 conversion the expression algebra stores;
		// whether that conversion was exact is not checked.
		d, err := decimal.NewFromString(*p.Float)
		if err != nil {
			return nil, fmt.Errorf("parser: invalid number literal %q: %w", *p.Float, err)
		}
		f, _ := d.Float64()
		return b.store.NumberLit(f, pos), nil

	case p.Int != nil:
		return b.store.IntLit(*p.Int, pos), nil

	case p.Str != nil:
		s, err := unquote(*p.Str)
		if err != nil {
			return nil, fmt.Errorf("parser: invalid string literal: %w", err)
		}
		return b.store.StringLit(b.strings.Intern(s), pos), nil

	case p.True:
		return b.store.True(pos), nil
	case p.False:
		return b.store.False(pos), nil

	case p.Choice != nil:
		cond, err := b.expr(p.Choice.Cond)
		if err != nil {
			return nil, err
		}
		then, err := b.expr(p.Choice.Then)
		if err != nil {
			return nil, err
		}
		els, err := b.expr(p.Choice.Else)
		if err != nil {
			return nil, err
		}
		return b.store.Choice(cond, then, els, pos), nil

	case p.At != nil:
		b.mod.PushContext(p.At.Name)
		body, err := b.expr(p.At.Body)
		b.mod.PopContext()
		if err != nil {
			return nil, err
		}
		return b.store.At(b.strings.Intern(p.At.Name), body, pos), nil

	case p.Temporal != nil:
		arg, err := b.expr(p.Temporal.Arg)
		if err != nil {
			return nil, err
		}
		var t *ast.Time
		if p.Temporal.Time != nil {
			t, err = b.timeBound(p.Temporal.Time)
			if err != nil {
				return nil, err
			}
		}
		return b.unaryTemporalNode(p.Temporal.Op, arg, t, pos), nil

	case p.Paren != nil:
		x, err := b.expr(p.Paren)
		if err != nil {
			return nil, err
		}
		return b.store.Paren(x, pos), nil

	default:
		return b.name(p.Name, pos)
	}
}

func (b *builder) unaryTemporalNode(op string, x *ast.Expr, t *ast.Time, pos position.Position) *ast.Expr {
	s := b.store
	switch op {
	case "F":
		return s.F(x, t, pos)
	case "G":
		return s.G(x, t, pos)
	case "O":
		return s.O(x, t, pos)
	case "H":
		return s.H(x, t, pos)
	case "Xs":
		return s.Xs(x, t, pos)
	case "Xw":
		return s.Xw(x, t, pos)
	case "Ys":
		return s.Ys(x, t, pos)
	default:
		return s.Yw(x, t, pos)
	}
}

// name resolves a bare identifier to a Context reference (a reserved
// context name or an At-bound alias currently in scope), an implicit
// __curr__-based Conf/Data reference (spec.md §3: "__curr__ appears as
// the implicit base for every unqualified data reference"), or fails if
// nothing declared matches.
func (b *builder) name(name string, pos position.Position) (*ast.Expr, error) {
	if name == module.CurrentContext || name == module.ConfigContext {
		return b.store.Context(b.strings.Intern(name), pos), nil
	}
	if bound, ok := b.mod.CurrentBinding(); ok && bound == name {
		return b.store.Context(b.strings.Intern(name), pos), nil
	}
	curr := b.store.Context(b.strings.Intern(module.CurrentContext), pos)
	if _, ok := b.mod.Conf(name); ok {
		return b.store.Conf(curr, b.strings.Intern(name), pos), nil
	}
	if _, ok := b.mod.Data(name); ok {
		return b.store.Data(curr, b.strings.Intern(name), pos), nil
	}
	return nil, fmt.Errorf("parser: undeclared name %q at %s", name, pos)
}

func parseDuration(lit string) (int64, error) {
	i := 0
	for i < len(lit) && lit[i] >= '0' && lit[i] <= '9' {
		i++
	}
	n, err := strconv.ParseInt(lit[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration literal %q: %w", lit, err)
	}
	unit := lit[i:]
	mult, ok := nsPerUnit[unit]
	if !ok {
		return 0, fmt.Errorf("unknown duration unit %q in %q", unit, lit)
	}
	return n * mult, nil
}

// unquote strips the outer double-quote delimiters and resolves the
// interior backslash escapes of a string literal (spec.md §6: "strips
// outer delimiters; interior escapes left to the parser").
func unquote(lit string) (string, error) {
	return strconv.Unquote(lit)
}
