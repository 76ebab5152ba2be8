package prover

// Clause is an unordered multiset of literals, representing a
// disjunction. The empty clause (zero literals) represents falsity and is
// the target of refutation proofs.
type Clause struct {
	literals []Literal
}

// NewClause constructs a clause from the given literals, defensively
// copied.
func NewClause(literals []Literal) *Clause {
	cp := make([]Literal, len(literals))
	copy(cp, literals)
	return &Clause{literals: cp}
}

// EmptyClause returns the clause with zero literals.
func EmptyClause() *Clause {
	return &Clause{}
}

// Literals returns the clause's literals.
func (c *Clause) Literals() []Literal { return c.literals }

// Size returns the number of literals.
func (c *Clause) Size() int { return len(c.literals) }

// IsEmpty reports whether the clause has zero literals.
func (c *Clause) IsEmpty() bool { return len(c.literals) == 0 }

// IsUnit reports whether the clause has exactly one literal.
func (c *Clause) IsUnit() bool { return len(c.literals) == 1 }

// IsTautology reports whether the clause contains some atom both
// positively and negatively.
func (c *Clause) IsTautology() bool {
	for i := range c.literals {
		for j := range c.literals {
			if i != j && c.literals[i].IsComplementary(c.literals[j]) {
				return true
			}
		}
	}
	return false
}

// Simplify returns a copy of c with structurally duplicate literals
// removed. Callers are responsible for discarding tautologies themselves
// (Simplify does not turn a tautology into the empty clause — see
// clause.go doc and spec: tautologies are treated as discarded by
// callers, not rewritten).
func (c *Clause) Simplify() *Clause {
	var out []Literal
	for _, l := range c.literals {
		dup := false
		for _, seen := range out {
			if seen.Equal(l) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return &Clause{literals: out}
}

// Substitute applies sub to every literal.
func (c *Clause) Substitute(sub *Substitution) *Clause {
	out := make([]Literal, len(c.literals))
	for i, l := range c.literals {
		out[i] = l.Substitute(sub)
	}
	return &Clause{literals: out}
}

// RenameVariables offsets every literal's free variables by offset.
func (c *Clause) RenameVariables(offset int) *Clause {
	out := make([]Literal, len(c.literals))
	for i, l := range c.literals {
		out[i] = l.RenameVariables(offset)
	}
	return &Clause{literals: out}
}

// Equal reports whether c and other contain the same literals as
// multisets (order-independent).
func (c *Clause) Equal(other *Clause) bool {
	if len(c.literals) != len(other.literals) {
		return false
	}
	used := make([]bool, len(other.literals))
	for _, l := range c.literals {
		found := false
		for j, ol := range other.literals {
			if !used[j] && l.Equal(ol) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash: the XOR of every literal's hash,
// so permuting literals never changes the clause's hash.
func (c *Clause) Hash() uint64 {
	var h uint64
	for _, l := range c.literals {
		h ^= l.Hash()
	}
	return h
}

func (c *Clause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	s := ""
	for i, l := range c.literals {
		if i > 0 {
			s += " ∨ "
		}
		s += l.String()
	}
	return s
}

// MaxVariableIndex returns the greatest free variable index across every
// literal's atom in the clause, or -1 if the clause has no free
// variables.
func (c *Clause) MaxVariableIndex() int {
	max := -1
	for _, l := range c.literals {
		if m := MaxVariableIndex(l.atom); m > max {
			max = m
		}
	}
	return max
}

// Subsumes reports whether c subsumes other: there is a substitution sigma
// and an injection of c's literals into other's literals such that each
// mapped pair shares polarity and sigma(atom_c) = atom_other, with sigma
// globally consistent across the whole injection. The empty clause
// subsumes every clause.
func (c *Clause) Subsumes(other *Clause) bool {
	if c.IsEmpty() {
		return true
	}
	used := make([]bool, len(other.literals))
	return findConsistentMapping(c.literals, other.literals, used, 0, NewSubstitution())
}

func findConsistentMapping(cLits, dLits []Literal, used []bool, idx int, sub *Substitution) bool {
	if idx == len(cLits) {
		return true
	}
	cl := cLits[idx]
	for j, dl := range dLits {
		if used[j] || cl.positive != dl.positive {
			continue
		}
		if PredicateSymbol(cl.atom) != PredicateSymbol(dl.atom) || PredicateArity(cl.atom) != PredicateArity(dl.atom) {
			continue
		}
		newSub, ok := extendMatch(cl.atom, dl.atom, sub)
		if !ok {
			continue
		}
		used[j] = true
		if findConsistentMapping(cLits, dLits, used, idx+1, newSub) {
			return true
		}
		used[j] = false
	}
	return false
}

// extendMatch extends sub (if consistent) so that sub(pattern) equals
// subject, requiring any index already bound in sub to match subject
// exactly rather than rebind.
func extendMatch(pattern, subject *Term, sub *Substitution) (*Substitution, bool) {
	if pattern.kind == KindVar {
		if bound, ok := sub.Lookup(pattern.index); ok {
			if bound.Equal(subject) {
				return sub, true
			}
			return nil, false
		}
		return sub.Bind(pattern.index, subject), true
	}
	if pattern.kind != subject.kind {
		return nil, false
	}
	switch pattern.kind {
	case KindConst:
		if pattern.symbol == subject.symbol {
			return sub, true
		}
		return nil, false
	case KindApp:
		if pattern.symbol != subject.symbol || len(pattern.args) != len(subject.args) {
			return nil, false
		}
		cur := sub
		for i := range pattern.args {
			var ok bool
			cur, ok = extendMatch(pattern.args[i], subject.args[i], cur)
			if !ok {
				return nil, false
			}
		}
		return cur, true
	case KindNot:
		return extendMatch(pattern.body, subject.body, sub)
	case KindForall, KindExists:
		return extendMatch(pattern.body, subject.body, sub)
	case KindAnd, KindOr, KindImplies:
		cur, ok := extendMatch(pattern.left, subject.left, sub)
		if !ok {
			return nil, false
		}
		return extendMatch(pattern.right, subject.right, cur)
	default:
		return nil, false
	}
}
