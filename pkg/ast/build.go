package ast

import (
	"github.com/rafiw/referee-sub000/internal/intern"
	"github.com/rafiw/referee-sub000/pkg/position"
)

// --- Constants ---

func (s *Store) BoolLit(b bool, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindBoolLit, Pos: pos, Lit: b})
}

func (s *Store) IntLit(v int64, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindIntLit, Pos: pos, Lit: v})
}

func (s *Store) NumberLit(v float64, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindNumberLit, Pos: pos, Lit: v})
}

func (s *Store) StringLit(sym intern.Symbol, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindStringLit, Pos: pos, Lit: sym})
}

func (s *Store) True(pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindTrue, Pos: pos})
}

func (s *Store) False(pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindFalse, Pos: pos})
}

// --- Arithmetic ---

func (s *Store) Neg(x *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindNeg, Pos: pos, A: x})
}

func (s *Store) binary(k Kind, l, r *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: k, Pos: pos, A: l, B: r})
}

func (s *Store) Add(l, r *Expr, pos position.Position) *Expr { return s.binary(KindAdd, l, r, pos) }
func (s *Store) Sub(l, r *Expr, pos position.Position) *Expr { return s.binary(KindSub, l, r, pos) }
func (s *Store) Mul(l, r *Expr, pos position.Position) *Expr { return s.binary(KindMul, l, r, pos) }
func (s *Store) Div(l, r *Expr, pos position.Position) *Expr { return s.binary(KindDiv, l, r, pos) }
func (s *Store) Mod(l, r *Expr, pos position.Position) *Expr { return s.binary(KindMod, l, r, pos) }

// --- Relational ---

func (s *Store) Eq(l, r *Expr, pos position.Position) *Expr { return s.binary(KindEq, l, r, pos) }
func (s *Store) Ne(l, r *Expr, pos position.Position) *Expr { return s.binary(KindNe, l, r, pos) }
func (s *Store) Lt(l, r *Expr, pos position.Position) *Expr { return s.binary(KindLt, l, r, pos) }
func (s *Store) Le(l, r *Expr, pos position.Position) *Expr { return s.binary(KindLe, l, r, pos) }
func (s *Store) Gt(l, r *Expr, pos position.Position) *Expr { return s.binary(KindGt, l, r, pos) }
func (s *Store) Ge(l, r *Expr, pos position.Position) *Expr { return s.binary(KindGe, l, r, pos) }

// --- Boolean ---

func (s *Store) Not(x *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindNot, Pos: pos, A: x})
}

func (s *Store) And(l, r *Expr, pos position.Position) *Expr { return s.binary(KindAnd, l, r, pos) }
func (s *Store) Or(l, r *Expr, pos position.Position) *Expr  { return s.binary(KindOr, l, r, pos) }
func (s *Store) Xor(l, r *Expr, pos position.Position) *Expr { return s.binary(KindXor, l, r, pos) }
func (s *Store) Imp(l, r *Expr, pos position.Position) *Expr { return s.binary(KindImp, l, r, pos) }
func (s *Store) Equ(l, r *Expr, pos position.Position) *Expr { return s.binary(KindEqu, l, r, pos) }

func (s *Store) Choice(cond, then, els *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindChoice, Pos: pos, A: cond, B: then, C: els})
}

// --- Access ---

// Context builds the reference to a context by reserved name (__curr__ or
// __conf__) or, after rewrite, an At-bound name.
func (s *Store) Context(name intern.Symbol, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindContext, Pos: pos, Name: name})
}

func (s *Store) Data(ctx *Expr, name intern.Symbol, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindData, Pos: pos, A: ctx, Name: name})
}

func (s *Store) Conf(ctx *Expr, name intern.Symbol, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindConf, Pos: pos, A: ctx, Name: name})
}

func (s *Store) Member(base *Expr, name intern.Symbol, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindMember, Pos: pos, A: base, Name: name})
}

func (s *Store) Index(base, idx *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindIndex, Pos: pos, A: base, B: idx})
}

func (s *Store) Paren(x *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindParen, Pos: pos, A: x})
}

// --- Binding ---

func (s *Store) At(name intern.Symbol, body *Expr, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindAt, Pos: pos, Name: name, A: body})
}

// --- Future temporal ---

func (s *Store) unaryTemporal(k Kind, x *Expr, t *Time, pos position.Position) *Expr {
	return s.intern(Expr{Kind: k, Pos: pos, A: x, Time: t})
}

func (s *Store) binaryTemporal(k Kind, l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.intern(Expr{Kind: k, Pos: pos, A: l, B: r, Time: t})
}

func (s *Store) F(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindF, x, t, pos)
}
func (s *Store) G(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindG, x, t, pos)
}
func (s *Store) Xs(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindXs, x, t, pos)
}
func (s *Store) Xw(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindXw, x, t, pos)
}
func (s *Store) Us(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindUs, l, r, t, pos)
}
func (s *Store) Uw(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindUw, l, r, t, pos)
}
func (s *Store) Rs(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindRs, l, r, t, pos)
}
func (s *Store) Rw(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindRw, l, r, t, pos)
}

// --- Past temporal ---

func (s *Store) O(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindO, x, t, pos)
}
func (s *Store) H(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindH, x, t, pos)
}
func (s *Store) Ys(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindYs, x, t, pos)
}
func (s *Store) Yw(x *Expr, t *Time, pos position.Position) *Expr {
	return s.unaryTemporal(KindYw, x, t, pos)
}
func (s *Store) Ss(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindSs, l, r, t, pos)
}
func (s *Store) Sw(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindSw, l, r, t, pos)
}
func (s *Store) Ts(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindTs, l, r, t, pos)
}
func (s *Store) Tw(l, r *Expr, t *Time, pos position.Position) *Expr {
	return s.binaryTemporal(KindTw, l, r, t, pos)
}

// --- Integral ---

func (s *Store) Integral(lhs, rhs *Expr, t *Time, pos position.Position) *Expr {
	return s.intern(Expr{Kind: KindIntegral, Pos: pos, A: lhs, B: rhs, Time: t})
}

// WithTime rebuilds e with a different time bound attached, reusing every
// other field. Used by the rewrite pass when it needs a node identical to
// e but with its Time cleared or replaced (e.g. after timed-operator
// elimination the result carries no Time at all).
func (s *Store) WithTime(e *Expr, t *Time) *Expr {
	cp := *e
	cp.Time = t
	return s.intern(cp)
}
