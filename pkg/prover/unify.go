package prover

// Unify attempts to compute a most-general substitution sigma such that
// sigma(s) and sigma(t) are structurally equal. It reports (sigma, true)
// on success or (nil, false) on failure; failure is a normal result, not
// an error.
//
// Unify operates on free (unbound) variables of s and t directly — it is
// the caller's responsibility to present terms whose Var nodes are in the
// free-variable space being unified (as opposed to bound occurrences
// under a quantifier).
func Unify(s, t *Term) (*Substitution, bool) {
	return unify(s, t, NewSubstitution())
}

func unify(s, t *Term, sub *Substitution) (*Substitution, bool) {
	s = walk(s, sub)
	t = walk(t, sub)

	if s.kind == KindVar && t.kind == KindVar && s.index == t.index {
		return sub, true
	}
	if s.kind == KindVar {
		return bindVar(s.index, t, sub)
	}
	if t.kind == KindVar {
		return bindVar(t.index, s, sub)
	}
	if s.kind != t.kind {
		return nil, false
	}

	switch s.kind {
	case KindConst:
		if s.symbol == t.symbol {
			return sub, true
		}
		return nil, false
	case KindApp:
		if s.symbol != t.symbol || len(s.args) != len(t.args) {
			return nil, false
		}
		cur := sub
		for i := range s.args {
			var ok bool
			cur, ok = unify(s.args[i], t.args[i], cur)
			if !ok {
				return nil, false
			}
		}
		return cur, true
	case KindNot:
		return unify(s.body, t.body, sub)
	case KindForall, KindExists:
		return unify(s.body, t.body, sub)
	case KindAnd, KindOr, KindImplies:
		cur, ok := unify(s.left, t.left, sub)
		if !ok {
			return nil, false
		}
		return unify(s.right, t.right, cur)
	default:
		return nil, false
	}
}

// walk resolves a term through the substitution chain until it is no
// longer a bound variable. The term it lands on is returned as is; bound
// variables nested inside it are not replaced (ApplyFully does that).
func walk(t *Term, sub *Substitution) *Term {
	for t.kind == KindVar {
		repl, ok := sub.Lookup(t.index)
		if !ok {
			return t
		}
		t = repl
	}
	return t
}

func bindVar(index int, t *Term, sub *Substitution) (*Substitution, bool) {
	if t.kind == KindVar && t.index == index {
		return sub, true
	}
	if occurs(index, t, sub) {
		return nil, false
	}
	return sub.Bind(index, t), true
}

// occurs reports whether variable index appears free in t under the
// current substitution chain (the occurs check), preventing the
// infinite/cyclic binding X -> f(...X...).
func occurs(index int, t *Term, sub *Substitution) bool {
	t = walk(t, sub)
	switch t.kind {
	case KindVar:
		return t.index == index
	case KindConst:
		return false
	case KindApp:
		for _, a := range t.args {
			if occurs(index, a, sub) {
				return true
			}
		}
		return false
	case KindNot:
		return occurs(index, t.body, sub)
	case KindForall, KindExists:
		return occurs(index, t.body, sub)
	case KindAnd, KindOr, KindImplies:
		return occurs(index, t.left, sub) || occurs(index, t.right, sub)
	default:
		return false
	}
}

// ApplyFully walks t through sub to a fixed point and rebuilds it with all
// resolvable variables replaced, for callers (e.g. critical-pair and
// resolution inference) that want a fully-dereferenced result rather than
// the lazy walk() used internally by Unify.
func ApplyFully(t *Term, sub *Substitution) *Term {
	t = walk(t, sub)
	switch t.kind {
	case KindVar, KindConst:
		return t
	case KindApp:
		args := make([]*Term, len(t.args))
		for i, a := range t.args {
			args[i] = ApplyFully(a, sub)
		}
		return MakeApp(t.symbol, args)
	case KindNot:
		return MakeNot(ApplyFully(t.body, sub))
	case KindForall:
		return MakeForall(t.hint, ApplyFully(t.body, sub))
	case KindExists:
		return MakeExists(t.hint, ApplyFully(t.body, sub))
	case KindAnd:
		return MakeAnd(ApplyFully(t.left, sub), ApplyFully(t.right, sub))
	case KindOr:
		return MakeOr(ApplyFully(t.left, sub), ApplyFully(t.right, sub))
	case KindImplies:
		return MakeImplies(ApplyFully(t.left, sub), ApplyFully(t.right, sub))
	default:
		return t
	}
}

// matchLHS performs one-sided matching of pattern (whose Var nodes are
// treated as pattern variables to be bound) against subject, without
// unifying subject's own variables symmetrically. This is the "matching"
// used by rewriting: only pattern variables may be bound.
func matchLHS(pattern, subject *Term) (*Substitution, bool) {
	return matchInto(pattern, subject, NewSubstitution())
}

func matchInto(pattern, subject *Term, sub *Substitution) (*Substitution, bool) {
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
			cur, ok = matchInto(pattern.args[i], subject.args[i], cur)
			if !ok {
				return nil, false
			}
		}
		return cur, true
	case KindNot:
		return matchInto(pattern.body, subject.body, sub)
	case KindForall, KindExists:
		return matchInto(pattern.body, subject.body, sub)
	case KindAnd, KindOr, KindImplies:
		cur, ok := matchInto(pattern.left, subject.left, sub)
		if !ok {
			return nil, false
		}
		return matchInto(pattern.right, subject.right, cur)
	default:
		return nil, false
	}
}
