package ast

import "github.com/rafiw/referee-sub000/internal/intern"

// Store is the hash-consed expression and time-bound repository for one
// compilation session (spec.md §4.1). Building a node of a given kind with
// structurally-equal payload and children always returns the same handle;
// position participates in the key except for the synthetic sentinel,
// so every synthesized node of identical shape collapses onto one entry.
type Store struct {
	exprs map[exprKey]*Expr
	times map[timeKey]*Time
}

// NewStore creates an empty expression store.
func NewStore() *Store {
	return &Store{
		exprs: make(map[exprKey]*Expr),
		times: make(map[timeKey]*Time),
	}
}

type exprKey struct {
	kind    Kind
	pos     position_
	a, b, c *Expr
	time    *Time
	name    intern.Symbol
	lit     any
}

// position_ mirrors position.Position's fields directly so exprKey stays
// comparable without importing a non-comparable alias indirection; kept
// private since callers only ever see *Expr.
type position_ struct {
	beginRow, beginCol, endRow, endCol int
}

func (s *Store) intern(e Expr) *Expr {
	key := exprKey{
		kind: e.Kind,
		a:    e.A, b: e.B, c: e.C,
		time: e.Time,
		name: e.Name,
		lit:  e.Lit,
	}
	if !e.Pos.IsSynthetic() {
		key.pos = position_{e.Pos.Begin.Row, e.Pos.Begin.Col, e.Pos.End.Row, e.Pos.End.Col}
	}
	if node, ok := s.exprs[key]; ok {
		return node
	}
	node := e
	s.exprs[key] = &node
	return &node
}

type timeKey struct {
	kind   TimeKind
	lo, hi *Expr
}

// NewTime returns the hash-consed Time bound for the given kind/bounds.
func (s *Store) NewTime(kind TimeKind, lo, hi *Expr) *Time {
	key := timeKey{kind, lo, hi}
	if t, ok := s.times[key]; ok {
		return t
	}
	t := &Time{Kind: kind, Lo: lo, Hi: hi}
	s.times[key] = t
	return t
}
