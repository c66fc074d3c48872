package ast

import "github.com/rafiw/referee-sub000/pkg/position"

// SpecKind tags which high-level specification pattern a Spec is
// (spec.md §3's pattern list). Specs are not hash-consed — each appears
// once in the parser result's Specs list and is consumed exactly once
// by the rewrite pass.
type SpecKind int

const (
	Universality SpecKind = iota
	Absence
	Existence
	TransientState
	SteadyState
	MinimumDuration
	MaximumDuration
	Recurrence
	Precedence
	PrecedenceChain12
	PrecedenceChain21
	Response
	ResponseChain12
	ResponseChain21
	ResponseInvariance
	Until
)

// Spec is a high-level specification pattern occurrence. Not every field
// is meaningful for every Kind; each constructor below populates exactly
// the fields its pattern needs and leaves the rest nil/zero. See
// spec.md §4.5.1 for the per-pattern lowering each of these feeds.
type Spec struct {
	Kind SpecKind
	Pos  position.Position

	// Single-predicate patterns (Universality, Absence, Existence,
	// TransientState, SteadyState, MinimumDuration, MaximumDuration,
	// Recurrence).
	P *Expr
	T *Time

	// Two-predicate patterns (Precedence, Response, ResponseInvariance,
	// Until).
	S    *Expr
	TPS  *Time  // time bound between P and S
	CPS  *Expr  // constraint guarding the P..S gap (default False)

	// Three-predicate chain patterns (PrecedenceChain12/21,
	// ResponseChain12/21).
	Q    *Expr
	TST  *Time
	CST  *Expr

	Scope *Scope
}

// ScopeKind tags a scope-restriction wrapper (spec.md §3: Globally,
// Before, After, While, BetweenAnd, AfterUntil).
type ScopeKind int

const (
	Globally ScopeKind = iota
	Before
	After
	While
	BetweenAnd
	AfterUntil
)

// Scope restricts a Spec's body to the matching trace segment. A and B
// are the bounding event expressions; only BetweenAnd/AfterUntil use both.
type Scope struct {
	Kind ScopeKind
	A, B *Expr
}
