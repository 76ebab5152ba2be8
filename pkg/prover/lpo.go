package prover

import "fmt"

// ArgumentStatus selects how the argument vectors of same-head terms are
// compared once the head symbols and the "greater than every argument"
// conditions of LPO already hold.
type ArgumentStatus int

const (
	// StatusLexicographic compares argument vectors position by
	// position, left to right; this is the default for every symbol
	// with no explicit status.
	StatusLexicographic ArgumentStatus = iota
	// StatusMultiset requests a multiset extension of LPO. The
	// multiset comparison is not implemented (matching the original
	// engine this is ported from) and falls back to
	// StatusLexicographic.
	StatusMultiset
)

// Ordering is the contract a term-ordering implementation satisfies:
// a strict partial order extended to ground terms as a well-founded
// total order, with variables minimal.
type Ordering interface {
	Greater(s, t *Term) bool
	GreaterEqual(s, t *Term) bool
	Equivalent(s, t *Term) bool
}

// baseOrdering supplies GreaterEqual and Equivalent in terms of Greater,
// the only method concrete orderings must define.
type baseOrdering struct {
	greater func(s, t *Term) bool
}

func (b baseOrdering) GreaterEqual(s, t *Term) bool {
	return b.greater(s, t) || b.Equivalent(s, t)
}

func (b baseOrdering) Equivalent(s, t *Term) bool {
	return !b.greater(s, t) && !b.greater(t, s)
}

// LPO is a Lexicographic Path Ordering: a simplification order on terms
// extended from a Precedence on symbols, with per-symbol ArgumentStatus.
// Logical connectives and quantifiers are treated as function symbols
// under synthetic names so the ordering covers formulas as well as plain
// terms.
type LPO struct {
	precedence *Precedence
	status     map[string]ArgumentStatus
	base       baseOrdering
}

// NewLPO returns an LPO ordering backed by a fresh, empty precedence.
func NewLPO() *LPO {
	return NewLPOWithPrecedence(NewPrecedence())
}

// NewLPOWithPrecedence returns an LPO ordering backed by the given
// precedence graph.
func NewLPOWithPrecedence(p *Precedence) *LPO {
	o := &LPO{precedence: p, status: make(map[string]ArgumentStatus)}
	o.base = baseOrdering{greater: o.Greater}
	return o
}

// Precedence returns the underlying precedence graph, so callers can add
// edges with SetGreater.
func (o *LPO) Precedence() *Precedence { return o.precedence }

// SetArgumentStatus records how symbol's argument vectors compare once
// the head-symbol and domination conditions hold.
func (o *LPO) SetArgumentStatus(symbol string, status ArgumentStatus) {
	o.status[symbol] = status
}

// GreaterEqual reports whether s equals or LPO-dominates t.
func (o *LPO) GreaterEqual(s, t *Term) bool { return o.base.GreaterEqual(s, t) }

// Equivalent reports whether neither s nor t LPO-dominates the other.
func (o *LPO) Equivalent(s, t *Term) bool { return o.base.Equivalent(s, t) }

// Greater reports whether s ≻ t under the Lexicographic Path Ordering.
func (o *LPO) Greater(s, t *Term) bool {
	sVar := s.kind == KindVar
	tVar := t.kind == KindVar
	if sVar && tVar {
		return false
	}
	if sVar {
		return false
	}
	if tVar {
		return true
	}

	f, sArgs := decompose(s)
	g, tArgs := decompose(t)

	// Case 1: subterm property — some argument of s dominates t.
	for _, sArg := range sArgs {
		if sArg.Equal(t) {
			return true
		}
		if o.greaterEqualLPO(sArg, t) {
			return true
		}
	}

	// Case 2: precedence strictly orders the heads.
	if o.precedence.TotalGreater(f, g) {
		return o.allGreater(s, tArgs)
	}

	// Case 3: same head symbol.
	if o.precedence.Equal(f, g) {
		if !o.allGreater(s, tArgs) {
			return false
		}
		status, ok := o.status[f]
		if !ok {
			status = StatusLexicographic
		}
		if status == StatusLexicographic {
			return o.lexicographicGreater(sArgs, tArgs)
		}
		return o.multisetGreater(sArgs, tArgs)
	}

	return false
}

func (o *LPO) greaterEqualLPO(s, t *Term) bool {
	return s.Equal(t) || o.Greater(s, t)
}

func (o *LPO) allGreater(s *Term, terms []*Term) bool {
	for _, t := range terms {
		if !o.Greater(s, t) {
			return false
		}
	}
	return true
}

func (o *LPO) lexicographicGreater(args1, args2 []*Term) bool {
	minLen := len(args1)
	if len(args2) < minLen {
		minLen = len(args2)
	}
	for i := 0; i < minLen; i++ {
		if o.Greater(args1[i], args2[i]) {
			return true
		}
		if o.Greater(args2[i], args1[i]) {
			return false
		}
	}
	return len(args1) > len(args2)
}

// multisetGreater is an intentionally unimplemented multiset extension of
// LPO; it falls back to lexicographic comparison, matching the engine
// this ordering is ported from.
func (o *LPO) multisetGreater(args1, args2 []*Term) bool {
	return o.lexicographicGreater(args1, args2)
}

// decompose returns a term's head symbol and argument vector for ordering
// purposes. Logical connectives and quantifiers get synthetic symbol
// names; variables get an index-dependent sentinel so distinct
// variables never collide in the precedence graph.
func decompose(t *Term) (string, []*Term) {
	switch t.kind {
	case KindConst:
		return t.symbol, nil
	case KindApp:
		return t.symbol, t.args
	case KindVar:
		return fmt.Sprintf("_VAR_%d", t.index), nil
	case KindAnd:
		return "∧", []*Term{t.left, t.right}
	case KindOr:
		return "∨", []*Term{t.left, t.right}
	case KindNot:
		return "¬", []*Term{t.body}
	case KindImplies:
		return "→", []*Term{t.left, t.right}
	case KindForall:
		return "∀", []*Term{t.body}
	case KindExists:
		return "∃", []*Term{t.body}
	default:
		return "_UNKNOWN_", nil
	}
}
