// Package prover implements an automated first-order-logic theorem prover
// built around three tightly coupled engines: a term rewriting core with a
// well-founded term ordering, a Knuth-Bendix completion procedure that
// saturates a set of equations into a confluent rewrite system, and a
// resolution/paramodulation refutation prover that proves goals by
// reducing hypotheses and the negated goal to clausal form and deriving
// the empty clause.
//
// The package is a library: it exposes Term construction, unification,
// rewriting, completion, CNF conversion, and resolution as pure,
// single-threaded operations. There is no event loop, no CLI, and no wire
// protocol — callers drive the engines directly through Complete and
// Prove.
package prover

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags the variant of a Term.
type Kind int

const (
	KindVar Kind = iota
	KindConst
	KindApp
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindForall
	KindExists
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindConst:
		return "Const"
	case KindApp:
		return "App"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindImplies:
		return "Implies"
	case KindForall:
		return "Forall"
	case KindExists:
		return "Exists"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Term is an immutable first-order term with a lazily cached structural
// hash; structurally equal terms are not shared. The concrete variant
// is identified by Kind; fields not relevant to a variant are zero-valued.
// Terms are never mutated after construction by the make* factory
// functions — every transformation (substitution, rewriting, CNF
// conversion) builds new Term values.
//
// Equality ignores the Hint carried by Forall/Exists nodes: alpha
// equivalence is decided purely by De-Bruijn structure.
type Term struct {
	kind Kind

	// KindVar
	index int

	// KindConst, KindApp: function/constant symbol
	symbol string
	// KindApp
	args []*Term

	// KindNot, KindForall, KindExists
	body *Term

	// KindAnd, KindOr, KindImplies
	left  *Term
	right *Term

	// KindForall, KindExists: debugging metadata only, excluded from
	// equality and hash
	hint string

	hash    uint64
	hashSet bool
}

// Kind returns the term's variant tag.
func (t *Term) Kind() Kind { return t.kind }

// Index returns the De-Bruijn index of a Var term.
func (t *Term) Index() int { return t.index }

// Symbol returns the function/constant symbol of a Const or App term.
func (t *Term) Symbol() string { return t.symbol }

// Args returns the argument list of an App term.
func (t *Term) Args() []*Term { return t.args }

// Body returns the body of a Not, Forall, or Exists term.
func (t *Term) Body() *Term { return t.body }

// Left returns the left operand of an And, Or, or Implies term
// (the antecedent, for Implies).
func (t *Term) Left() *Term { return t.left }

// Right returns the right operand of an And, Or, or Implies term
// (the consequent, for Implies).
func (t *Term) Right() *Term { return t.right }

// Hint returns the human-readable binder name attached to a Forall or
// Exists term. It is metadata only: two quantifiers differing only in
// Hint are Equal and hash identically.
func (t *Term) Hint() string { return t.hint }

// MakeVar constructs a De-Bruijn-indexed variable.
func MakeVar(index int) *Term {
	return &Term{kind: KindVar, index: index}
}

// MakeConst constructs a nullary constant symbol.
func MakeConst(symbol string) *Term {
	return &Term{kind: KindConst, symbol: symbol}
}

// MakeApp constructs a function application. args is copied defensively.
func MakeApp(symbol string, args []*Term) *Term {
	cp := make([]*Term, len(args))
	copy(cp, args)
	return &Term{kind: KindApp, symbol: symbol, args: cp}
}

// MakeNot constructs a negation.
func MakeNot(body *Term) *Term {
	return &Term{kind: KindNot, body: body}
}

// MakeAnd constructs a conjunction.
func MakeAnd(left, right *Term) *Term {
	return &Term{kind: KindAnd, left: left, right: right}
}

// MakeOr constructs a disjunction.
func MakeOr(left, right *Term) *Term {
	return &Term{kind: KindOr, left: left, right: right}
}

// MakeImplies constructs an implication antecedent -> consequent.
func MakeImplies(antecedent, consequent *Term) *Term {
	return &Term{kind: KindImplies, left: antecedent, right: consequent}
}

// MakeForall constructs a universally quantified formula. hint is
// debugging metadata and plays no role in equality or hashing.
func MakeForall(hint string, body *Term) *Term {
	return &Term{kind: KindForall, hint: hint, body: body}
}

// MakeExists constructs an existentially quantified formula. hint is
// debugging metadata and plays no role in equality or hashing.
func MakeExists(hint string, body *Term) *Term {
	return &Term{kind: KindExists, hint: hint, body: body}
}

// Equal reports whether two terms are structurally identical, ignoring
// quantifier hints.
func (t *Term) Equal(other *Term) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindVar:
		return t.index == other.index
	case KindConst:
		return t.symbol == other.symbol
	case KindApp:
		if t.symbol != other.symbol || len(t.args) != len(other.args) {
			return false
		}
		for i := range t.args {
			if !t.args[i].Equal(other.args[i]) {
				return false
			}
		}
		return true
	case KindNot, KindForall, KindExists:
		return t.body.Equal(other.body)
	case KindAnd, KindOr, KindImplies:
		return t.left.Equal(other.left) && t.right.Equal(other.right)
	default:
		return false
	}
}

// Hash returns the term's cached structural hash, computing it on first
// use. Equal terms always have equal hashes; the converse may fail only
// on collision, in which case callers must fall back to Equal.
func (t *Term) Hash() uint64 {
	if t.hashSet {
		return t.hash
	}
	t.hash = t.computeHash()
	t.hashSet = true
	return t.hash
}

func (t *Term) computeHash() uint64 {
	const prime = 1099511628211
	h := fnvSeed
	mix := func(h uint64, s string) uint64 {
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= prime
		}
		return h
	}
	mixInt := func(h uint64, n int) uint64 {
		return mix(h, fmt.Sprintf("%d", n))
	}

	h = mix(h, t.kind.String())
	switch t.kind {
	case KindVar:
		h = mixInt(h, t.index)
	case KindConst:
		h = mix(h, t.symbol)
	case KindApp:
		h = mix(h, t.symbol)
		for _, a := range t.args {
			h ^= a.Hash()
			h *= prime
		}
	case KindNot, KindForall, KindExists:
		h ^= t.body.Hash()
		h *= prime
	case KindAnd, KindOr, KindImplies:
		h ^= t.left.Hash()
		h *= prime
		h ^= t.right.Hash()
		h *= prime
	}
	return h
}

const fnvSeed uint64 = 14695981039346656037

// FreeVars returns the set of free De-Bruijn indices in t, i.e. the
// variable indices not bound by any enclosing quantifier within t itself.
func (t *Term) FreeVars() map[int]struct{} {
	out := make(map[int]struct{})
	t.freeVars(0, out)
	return out
}

func (t *Term) freeVars(depth int, out map[int]struct{}) {
	switch t.kind {
	case KindVar:
		if t.index >= depth {
			out[t.index-depth] = struct{}{}
		}
	case KindConst:
	case KindApp:
		for _, a := range t.args {
			a.freeVars(depth, out)
		}
	case KindNot:
		t.body.freeVars(depth, out)
	case KindForall, KindExists:
		t.body.freeVars(depth+1, out)
	case KindAnd, KindOr, KindImplies:
		t.left.freeVars(depth, out)
		t.right.freeVars(depth, out)
	}
}

// String renders t in a compact infix/prefix notation suitable for
// diagnostics and test failure messages.
func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.kind {
	case KindVar:
		return fmt.Sprintf("_%d", t.index)
	case KindConst:
		return t.symbol
	case KindApp:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", t.symbol, strings.Join(parts, ", "))
	case KindNot:
		return fmt.Sprintf("¬%s", t.body.String())
	case KindAnd:
		return fmt.Sprintf("(%s ∧ %s)", t.left.String(), t.right.String())
	case KindOr:
		return fmt.Sprintf("(%s ∨ %s)", t.left.String(), t.right.String())
	case KindImplies:
		return fmt.Sprintf("(%s → %s)", t.left.String(), t.right.String())
	case KindForall:
		return fmt.Sprintf("∀%s.%s", quantHint(t.hint), t.body.String())
	case KindExists:
		return fmt.Sprintf("∃%s.%s", quantHint(t.hint), t.body.String())
	default:
		return "?"
	}
}

func quantHint(hint string) string {
	if hint == "" {
		return "x"
	}
	return hint
}

// sortedFreeVars returns the free variables of t as a sorted slice, for
// callers that need a deterministic iteration order.
func sortedFreeVars(t *Term) []int {
	set := t.FreeVars()
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
