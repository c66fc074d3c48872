package rewrite

import "github.com/rafiw/referee-sub000/pkg/ast"

// lowerPattern translates a high-level specification pattern to its LTL
// form (spec.md §4.5.1). The result may still contain timed operators;
// Spec's caller runs it through FixedPoint to eliminate them.
//
// Universality, Absence, Existence, Recurrence, Precedence, Response,
// ResponseInvariance and Until follow the Spec* visitors of the original
// rewrite pass directly. TransientState, SteadyState, MinimumDuration,
// MaximumDuration, PrecedenceChain12/21 and ResponseChain12/21 have no
// counterpart among those visitors; their formulas below are an
// independent design following the same Dwyer/Avrunin-style
// specification-pattern shape, recorded as such.
func (r *Rewriter) lowerPattern(sp *ast.Spec) *ast.Expr {
	s := r.store
	pos := sp.Pos

	switch sp.Kind {
	case ast.Universality:
		return s.G(sp.P, sp.T, pos)

	case ast.Absence:
		return s.G(s.Not(sp.P, pos), sp.T, pos)

	case ast.Existence:
		return s.F(sp.P, sp.T, pos)

	case ast.Recurrence:
		return s.G(s.F(sp.P, sp.T, pos), nil, pos)

	case ast.SteadyState:
		// Independent design: P eventually holds and never stops.
		return s.F(s.G(sp.P, nil, pos), nil, pos)

	case ast.TransientState:
		// Independent design: whenever P starts holding, it stops again
		// within t.
		return s.G(s.Imp(sp.P, s.F(s.Not(sp.P, pos), sp.T, pos), pos), nil, pos)

	case ast.MinimumDuration:
		// Independent design: whenever P rises, it holds continuously for
		// at least t.
		rise := s.And(sp.P, s.Not(s.Ys(sp.P, nil, pos), pos), pos)
		return s.G(s.Imp(rise, s.G(sp.P, sp.T, pos), pos), nil, pos)

	case ast.MaximumDuration:
		// Independent design: whenever P rises, it cannot hold
		// continuously for all of t — it must drop before t elapses.
		rise := s.And(sp.P, s.Not(s.Ys(sp.P, nil, pos), pos), pos)
		return s.G(s.Imp(rise, s.F(s.Not(sp.P, pos), sp.T, pos), pos), nil, pos)

	case ast.Precedence:
		return s.G(s.Imp(sp.P, s.O(sp.S, sp.TPS, pos), pos), nil, pos)

	case ast.PrecedenceChain12:
		// Independent design: S then Q must each, in order, be preceded
		// by P.
		a := s.G(s.Imp(sp.S, s.O(sp.P, sp.TPS, pos), pos), nil, pos)
		b := s.G(s.Imp(sp.Q, s.O(sp.S, sp.TST, pos), pos), nil, pos)
		return s.And(a, b, pos)

	case ast.PrecedenceChain21:
		// Independent design: P must be preceded, in order, by S and Q.
		a := s.G(s.Imp(sp.Q, s.O(sp.S, sp.TST, pos), pos), nil, pos)
		b := s.G(s.Imp(sp.P, s.O(sp.Q, sp.TPS, pos), pos), nil, pos)
		return s.And(a, b, pos)

	case ast.Response:
		c := sp.CPS
		if c == nil {
			c = s.False(pos)
		}
		return s.G(s.Imp(sp.P, s.Uw(c, sp.S, sp.TPS, pos), pos), nil, pos)

	case ast.ResponseChain12:
		// Independent design: P must be answered by S, then (after S) by
		// Q, each within its own bound.
		cPS := sp.CPS
		if cPS == nil {
			cPS = s.False(pos)
		}
		cST := sp.CST
		if cST == nil {
			cST = s.False(pos)
		}
		tail := s.Xw(s.Uw(cST, sp.Q, sp.TST, pos), nil, pos)
		return s.G(s.Imp(sp.P, s.Uw(cPS, s.And(sp.S, tail, pos), sp.TPS, pos), pos), nil, pos)

	case ast.ResponseChain21:
		// Independent design: whenever S is followed by Q, the pair must
		// jointly be answered by P.
		cST := sp.CST
		if cST == nil {
			cST = s.False(pos)
		}
		cTP := sp.CPS
		if cTP == nil {
			cTP = s.False(pos)
		}
		sq := s.And(sp.S, s.Uw(cST, sp.Q, sp.TST, pos), pos)
		return s.G(s.Imp(sq, s.Uw(cTP, sp.P, sp.TPS, pos), pos), nil, pos)

	case ast.ResponseInvariance:
		return s.G(s.Imp(sp.P, s.G(sp.S, sp.TPS, pos), pos), nil, pos)

	case ast.Until:
		return s.Us(sp.P, sp.S, sp.TPS, pos)
	}

	return sp.P
}
