package prover

// Substitution is a finite map from De-Bruijn variable index to
// replacement term. It is applied with Substitute, which descends binders by
// incrementing depth and shifting the free variables of any substituted
// term by the depth at the point of substitution, so no variable capture
// occurs.
//
// A Substitution is well-formed when its range is acyclic with respect to
// the indices it binds; acyclicity is enforced at construction time by
// Unify's occurs check.
type Substitution struct {
	bindings map[int]*Term
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[int]*Term)}
}

// Bind returns a new substitution equal to s with index bound to term
// (s itself is left unmodified).
func (s *Substitution) Bind(index int, term *Term) *Substitution {
	out := &Substitution{bindings: make(map[int]*Term, len(s.bindings)+1)}
	for k, v := range s.bindings {
		out.bindings[k] = v
	}
	out.bindings[index] = term
	return out
}

// Lookup returns the term bound to index, if any.
func (s *Substitution) Lookup(index int) (*Term, bool) {
	t, ok := s.bindings[index]
	return t, ok
}

// Size returns the number of bindings.
func (s *Substitution) Size() int {
	return len(s.bindings)
}

// Clone returns an independent copy of s.
func (s *Substitution) Clone() *Substitution {
	out := &Substitution{bindings: make(map[int]*Term, len(s.bindings))}
	for k, v := range s.bindings {
		out.bindings[k] = v
	}
	return out
}

// shift returns a copy of t with every free variable (at depth 0)
// incremented by delta. Used when a substituted term is inserted beneath
// additional binders.
func shift(t *Term, delta int) *Term {
	return shiftAt(t, 0, delta)
}

func shiftAt(t *Term, cutoff, delta int) *Term {
	switch t.kind {
	case KindVar:
		if t.index >= cutoff {
			return MakeVar(t.index + delta)
		}
		return t
	case KindConst:
		return t
	case KindApp:
		args := make([]*Term, len(t.args))
		for i, a := range t.args {
			args[i] = shiftAt(a, cutoff, delta)
		}
		return MakeApp(t.symbol, args)
	case KindNot:
		return MakeNot(shiftAt(t.body, cutoff, delta))
	case KindForall:
		return MakeForall(t.hint, shiftAt(t.body, cutoff+1, delta))
	case KindExists:
		return MakeExists(t.hint, shiftAt(t.body, cutoff+1, delta))
	case KindAnd:
		return MakeAnd(shiftAt(t.left, cutoff, delta), shiftAt(t.right, cutoff, delta))
	case KindOr:
		return MakeOr(shiftAt(t.left, cutoff, delta), shiftAt(t.right, cutoff, delta))
	case KindImplies:
		return MakeImplies(shiftAt(t.left, cutoff, delta), shiftAt(t.right, cutoff, delta))
	default:
		return t
	}
}

// Substitute applies s to t, descending binders at the given starting
// depth (callers pass 0 at the top level). On Var(i) at local depth d: if
// i >= d (the variable is free relative to this call's top level) and
// i-d is bound in s, the bound term is inserted with its own free
// variables shifted up by d so it is well-formed under the binders
// already crossed.
func Substitute(t *Term, s *Substitution, depth int) *Term {
	switch t.kind {
	case KindVar:
		if t.index >= depth {
			if repl, ok := s.Lookup(t.index - depth); ok {
				return shift(repl, depth)
			}
		}
		return t
	case KindConst:
		return t
	case KindApp:
		args := make([]*Term, len(t.args))
		for i, a := range t.args {
			args[i] = Substitute(a, s, depth)
		}
		return MakeApp(t.symbol, args)
	case KindNot:
		return MakeNot(Substitute(t.body, s, depth))
	case KindForall:
		return MakeForall(t.hint, Substitute(t.body, s, depth+1))
	case KindExists:
		return MakeExists(t.hint, Substitute(t.body, s, depth+1))
	case KindAnd:
		return MakeAnd(Substitute(t.left, s, depth), Substitute(t.right, s, depth))
	case KindOr:
		return MakeOr(Substitute(t.left, s, depth), Substitute(t.right, s, depth))
	case KindImplies:
		return MakeImplies(Substitute(t.left, s, depth), Substitute(t.right, s, depth))
	default:
		return t
	}
}

// RenameVariables returns a copy of t with every free Var index shifted up
// by offset. It is used to give clauses, rules, and formulas pairwise
// disjoint variable spaces before combining them.
func RenameVariables(t *Term, offset int) *Term {
	if offset == 0 {
		return t
	}
	return shift(t, offset)
}

// MaxVariableIndex returns the greatest De-Bruijn index occurring free in
// t, or -1 if t has no free variables.
func MaxVariableIndex(t *Term) int {
	max := -1
	for idx := range t.FreeVars() {
		if idx > max {
			max = idx
		}
	}
	return max
}
