package prover

import (
	"fmt"
	"strings"
)

// Position identifies a subterm by a path of child indices from the root
// of a term. The empty path denotes the root itself.
//
// Child indexing follows the term shape: App uses argument index; And, Or,
// and Implies use {0=left, 1=right}; Not uses {0}; Forall and Exists use
// {0=body}.
type Position struct {
	path []int
}

// RootPosition returns the position denoting the root of a term.
func RootPosition() Position {
	return Position{}
}

// IsRoot reports whether p denotes the root.
func (p Position) IsRoot() bool {
	return len(p.path) == 0
}

// Depth returns the number of steps from the root.
func (p Position) Depth() int {
	return len(p.path)
}

// Descend returns the position obtained by appending child index i.
func (p Position) Descend(i int) Position {
	np := make([]int, len(p.path)+1)
	copy(np, p.path)
	np[len(p.path)] = i
	return Position{path: np}
}

// IsPrefixOf reports whether p is a prefix of q (p itself included, so
// every position is a prefix of itself).
func (p Position) IsPrefixOf(q Position) bool {
	if len(p.path) > len(q.path) {
		return false
	}
	for i, v := range p.path {
		if q.path[i] != v {
			return false
		}
	}
	return true
}

// Equal reports whether two positions denote the same path.
func (p Position) Equal(q Position) bool {
	if len(p.path) != len(q.path) {
		return false
	}
	for i, v := range p.path {
		if q.path[i] != v {
			return false
		}
	}
	return true
}

// String renders the path as dot-separated indices, or "ε" for the root.
func (p Position) String() string {
	if p.IsRoot() {
		return "ε"
	}
	parts := make([]string, len(p.path))
	for i, v := range p.path {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ".")
}

// children returns the direct children of t in canonical child-index order,
// for variants with children; nil otherwise.
func children(t *Term) []*Term {
	switch t.kind {
	case KindApp:
		return t.args
	case KindAnd, KindOr, KindImplies:
		return []*Term{t.left, t.right}
	case KindNot, KindForall, KindExists:
		return []*Term{t.body}
	default:
		return nil
	}
}

// rebuild reconstructs a term of t's kind from a (possibly modified) child
// list, preserving non-child fields (symbol, hint).
func rebuild(t *Term, kids []*Term) *Term {
	switch t.kind {
	case KindApp:
		return MakeApp(t.symbol, kids)
	case KindAnd:
		return MakeAnd(kids[0], kids[1])
	case KindOr:
		return MakeOr(kids[0], kids[1])
	case KindImplies:
		return MakeImplies(kids[0], kids[1])
	case KindNot:
		return MakeNot(kids[0])
	case KindForall:
		return MakeForall(t.hint, kids[0])
	case KindExists:
		return MakeExists(t.hint, kids[0])
	default:
		return t
	}
}

// SubtermAt returns the subterm of t at position p, or (nil, false) if p
// does not denote a valid position in t.
func SubtermAt(t *Term, p Position) (*Term, bool) {
	cur := t
	for _, idx := range p.path {
		kids := children(cur)
		if idx < 0 || idx >= len(kids) {
			return nil, false
		}
		cur = kids[idx]
	}
	return cur, true
}

// ReplaceAt returns a copy of t with the subterm at position p replaced by
// repl. Returns (nil, false) if p is not a valid position in t.
func ReplaceAt(t *Term, p Position, repl *Term) (*Term, bool) {
	if p.IsRoot() {
		return repl, true
	}
	kids := children(t)
	idx := p.path[0]
	if idx < 0 || idx >= len(kids) {
		return nil, false
	}
	rest := Position{path: p.path[1:]}
	newChild, ok := ReplaceAt(kids[idx], rest, repl)
	if !ok {
		return nil, false
	}
	newKids := make([]*Term, len(kids))
	copy(newKids, kids)
	newKids[idx] = newChild
	return rebuild(t, newKids), true
}

// FindNonVariablePositions returns every position of t, including the
// root, whose subterm is not a Var. The descent is restricted to App,
// And, and Or children, matching the overlap enumeration used by
// critical-pair computation — Not, Implies, and quantifier bodies are
// treated as leaves for this purpose.
func FindNonVariablePositions(t *Term) []Position {
	var out []Position
	var walk func(cur *Term, pos Position)
	walk = func(cur *Term, pos Position) {
		if cur.kind != KindVar {
			out = append(out, pos)
		}
		switch cur.kind {
		case KindApp:
			for i, a := range cur.args {
				walk(a, pos.Descend(i))
			}
		case KindAnd, KindOr:
			walk(cur.left, pos.Descend(0))
			walk(cur.right, pos.Descend(1))
		}
	}
	walk(t, RootPosition())
	return out
}

// FindRedexPositions returns every position in t at which the given
// rule's lhs matches. Unlike FindNonVariablePositions, the traversal
// descends into the children of every variant (App, And, Or, Not,
// Implies, Forall, Exists bodies).
func FindRedexPositions(t *Term, rule RewriteRule) []Position {
	var out []Position
	var walk func(cur *Term, pos Position)
	walk = func(cur *Term, pos Position) {
		if _, ok := matchLHS(rule.lhs, cur); ok {
			out = append(out, pos)
		}
		for i, c := range children(cur) {
			walk(c, pos.Descend(i))
		}
	}
	walk(t, RootPosition())
	return out
}
