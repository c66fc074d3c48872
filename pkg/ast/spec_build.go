package ast

import "github.com/rafiw/referee-sub000/pkg/position"

// NewUniversality builds a Universality(P, t) pattern occurrence.
func NewUniversality(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Universality, Pos: pos, P: p, T: t}
}

// NewAbsence builds an Absence(P, t) pattern occurrence.
func NewAbsence(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Absence, Pos: pos, P: p, T: t}
}

// NewExistence builds an Existence(P, t) pattern occurrence.
func NewExistence(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Existence, Pos: pos, P: p, T: t}
}

// NewTransientState builds a TransientState(P, t) pattern occurrence.
func NewTransientState(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: TransientState, Pos: pos, P: p, T: t}
}

// NewSteadyState builds a SteadyState(P) pattern occurrence.
func NewSteadyState(p *Expr, pos position.Position) *Spec {
	return &Spec{Kind: SteadyState, Pos: pos, P: p}
}

// NewMinimumDuration builds a MinimumDuration(P, t) pattern occurrence.
func NewMinimumDuration(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: MinimumDuration, Pos: pos, P: p, T: t}
}

// NewMaximumDuration builds a MaximumDuration(P, t) pattern occurrence.
func NewMaximumDuration(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: MaximumDuration, Pos: pos, P: p, T: t}
}

// NewRecurrence builds a Recurrence(P, t) pattern occurrence.
func NewRecurrence(p *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Recurrence, Pos: pos, P: p, T: t}
}

// NewPrecedence builds a Precedence(P, S, t) pattern occurrence.
func NewPrecedence(p, s *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Precedence, Pos: pos, P: p, S: s, TPS: t}
}

// NewResponse builds a Response(P, S, t, c) pattern occurrence. c may be
// nil, meaning the default constraint False.
func NewResponse(p, s, c *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Response, Pos: pos, P: p, S: s, TPS: t, CPS: c}
}

// NewResponseInvariance builds a ResponseInvariance(P, S, t) pattern
// occurrence.
func NewResponseInvariance(p, s *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: ResponseInvariance, Pos: pos, P: p, S: s, TPS: t}
}

// NewUntil builds an Until(P, S, t) pattern occurrence.
func NewUntil(p, s *Expr, t *Time, pos position.Position) *Spec {
	return &Spec{Kind: Until, Pos: pos, P: p, S: s, TPS: t}
}

// NewPrecedenceChain12 builds a PrecedenceChain12(S, T, P, t_ST, t_PS)
// pattern occurrence: S then T must each be preceded, in order, by P.
func NewPrecedenceChain12(s, q, p *Expr, tST, tPS *Time, pos position.Position) *Spec {
	return &Spec{Kind: PrecedenceChain12, Pos: pos, P: p, S: s, Q: q, TST: tST, TPS: tPS}
}

// NewPrecedenceChain21 builds a PrecedenceChain21(P, S, T, ...) pattern
// occurrence: P must be preceded by both S and T, in order.
func NewPrecedenceChain21(p, s, q *Expr, tST, tPS *Time, pos position.Position) *Spec {
	return &Spec{Kind: PrecedenceChain21, Pos: pos, P: p, S: s, Q: q, TST: tST, TPS: tPS}
}

// NewResponseChain12 builds a ResponseChain12(P, S, T, t_PS, t_ST, c_PS,
// c_ST) pattern occurrence: P must be answered by S then T, in order.
func NewResponseChain12(p, s, q, cPS, cST *Expr, tPS, tST *Time, pos position.Position) *Spec {
	return &Spec{Kind: ResponseChain12, Pos: pos, P: p, S: s, Q: q, TPS: tPS, CPS: cPS, TST: tST, CST: cST}
}

// NewResponseChain21 builds a ResponseChain21(S, T, P, t_ST, t_TP, c_ST,
// c_TP) pattern occurrence: the S-then-T pair must be jointly answered
// by P.
func NewResponseChain21(s, q, p, cST, cTP *Expr, tST, tTP *Time, pos position.Position) *Spec {
	return &Spec{Kind: ResponseChain21, Pos: pos, P: p, S: s, Q: q, TST: tST, CST: cST, TPS: tTP, CPS: cTP}
}

// WithScope returns a copy of sp restricted by the given scope wrapper.
func (sp *Spec) WithScope(sc *Scope) *Spec {
	cp := *sp
	cp.Scope = sc
	return &cp
}
