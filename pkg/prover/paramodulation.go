package prover

// hasEqualityLiterals reports whether c contains any equality atom,
// positive or negative.
func hasEqualityLiterals(c *Clause) bool {
	for _, l := range c.Literals() {
		if IsEqualityAtom(l.Atom()) {
			return true
		}
	}
	return false
}

// findParamodPositions returns the non-variable subterm positions of t
// eligible for a paramodulation rewrite. This reuses the same restricted
// descent as critical-pair overlap discovery (App/And/Or children only);
// see FindNonVariablePositions for the coverage gap this inherits.
func findParamodPositions(t *Term) []Position {
	return FindNonVariablePositions(t)
}

// applyEqualityAtPosition rewrites target at pos to rhs (substituted by
// sub), the result of applying the equality lhs = rhs discovered by
// unifying lhs against target's subterm at pos.
func applyEqualityAtPosition(target *Term, pos Position, rhs *Term, sub *Substitution) (*Term, bool) {
	return ReplaceAt(target, pos, ApplyFully(rhs, sub))
}

// paramodulate generates every paramodulant obtainable by rewriting a
// literal of given (or of some other clause in cs) using a
// positive equality literal from the other clause, in both directions.
// It is only invoked when ResolutionConfig.UseParamodulation is set;
// paramodulation is an expensive additional inference rule layered on
// top of ordinary resolution, disabled by default.
func (p *ResolutionProver) paramodulate(given *Clause, cs *ClauseSet) []*Clause {
	var results []*Clause
	offset := given.MaxVariableIndex() + 1
	for _, other := range cs.Clauses() {
		if other == given {
			continue
		}
		renamed := other.RenameVariables(offset)
		results = append(results, paramodulateInto(given, renamed)...)
		results = append(results, paramodulateInto(renamed, given)...)
	}
	return results
}

// paramodulateInto rewrites every non-variable subterm position of
// target's literals using each positive equality literal of eqClause,
// producing one new clause per successful unification between the
// equality's left-hand side and the subterm.
func paramodulateInto(eqClause, target *Clause) []*Clause {
	if !hasEqualityLiterals(eqClause) {
		return nil
	}

	var results []*Clause
	for ei, eqLit := range eqClause.Literals() {
		if !eqLit.IsPositive() || !IsEqualityAtom(eqLit.Atom()) {
			continue
		}
		lhs := eqLit.Atom().Args()[0]
		rhs := eqLit.Atom().Args()[1]

		for ti, tLit := range target.Literals() {
			for _, pos := range findParamodPositions(tLit.Atom()) {
				subterm, ok := SubtermAt(tLit.Atom(), pos)
				if !ok {
					continue
				}
				sub, ok := Unify(lhs, subterm)
				if !ok {
					continue
				}
				newAtom, ok := applyEqualityAtPosition(tLit.Atom(), pos, rhs, sub)
				if !ok {
					continue
				}

				var newLits []Literal
				for k, l := range eqClause.Literals() {
					if k == ei {
						continue
					}
					newLits = append(newLits, l.Substitute(sub))
				}
				for k, l := range target.Literals() {
					if k == ti {
						newLits = append(newLits, NewLiteral(ApplyFully(newAtom, sub), tLit.IsPositive()))
						continue
					}
					newLits = append(newLits, l.Substitute(sub))
				}
				results = append(results, NewClause(newLits).Simplify())
			}
		}
	}
	return results
}
