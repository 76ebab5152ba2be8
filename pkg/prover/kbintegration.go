package prover

import "fmt"

// isUnitEqualityClause reports whether clause is a single positive
// equality literal, the shape a clause must have to be mined as a
// Knuth-Bendix equation during KB preprocessing.
func isUnitEqualityClause(c *Clause) bool {
	return c.IsUnit() && c.Literals()[0].IsPositive() && IsEqualityAtom(c.Literals()[0].Atom())
}

// clauseToEquation converts a unit positive equality clause to an
// equation, reporting false if clause is not of that shape.
func clauseToEquation(c *Clause, name string) (Equation, bool) {
	if !isUnitEqualityClause(c) {
		return Equation{}, false
	}
	atom := c.Literals()[0].Atom()
	return NewEquation(atom.Args()[0], atom.Args()[1], name), true
}

// ruleToClause converts a completed rewrite rule back to the unit
// positive equality clause it represents.
func ruleToClause(r RewriteRule) *Clause {
	return NewClause([]Literal{NewLiteral(MakeEquality(r.Lhs(), r.Rhs()), true)})
}

// extractEqualityEquations scans clauses for unit positive equality
// clauses and returns the equations they encode, along with the index of
// each such clause in clauses.
func extractEqualityEquations(clauses []*Clause) ([]Equation, []int) {
	var eqs []Equation
	var idxs []int
	for i, c := range clauses {
		if eq, ok := clauseToEquation(c, fmt.Sprintf("kbeq%d", i)); ok {
			eqs = append(eqs, eq)
			idxs = append(idxs, i)
		}
	}
	return eqs, idxs
}

// integrateKBRules drops the clauses that were mined as equations
// (equalityIndices) and appends the completed rule set in their place,
// each rule converted back to a unit equality clause.
func integrateKBRules(clauses []*Clause, equalityIndices []int, rules []RewriteRule) []*Clause {
	skip := make(map[int]bool, len(equalityIndices))
	for _, i := range equalityIndices {
		skip[i] = true
	}
	out := make([]*Clause, 0, len(clauses))
	for i, c := range clauses {
		if skip[i] {
			continue
		}
		out = append(out, c)
	}
	for _, r := range rules {
		out = append(out, ruleToClause(r))
	}
	return out
}

// tryKBPreprocessing mines unit positive equality clauses out of clauses,
// runs Knuth-Bendix completion over them bounded by the prover's
// KB-preprocessing budget, and replaces those clauses with the completed
// rule set. If no equality clauses are found, or completion fails
// outright, clauses is returned unchanged — KB preprocessing is a
// best-effort simplification, never a precondition for saturation.
func (p *ResolutionProver) tryKBPreprocessing(clauses []*Clause) []*Clause {
	eqs, idxs := extractEqualityEquations(clauses)
	if len(eqs) == 0 {
		return clauses
	}

	kbConfig := p.config.KBConfig
	kbConfig.MaxRules = p.config.KBMaxRules
	kbConfig.MaxEquations = p.config.KBMaxEquations
	kbConfig.MaxTime = p.config.KBPreprocessingTimeout

	kb, err := NewKnuthBendixCompletion(NewLPO(), kbConfig)
	if err != nil {
		return clauses
	}

	result := kb.Complete(eqs)
	if p.config.Verbose {
		p.config.logger().Debug("kb preprocessing finished",
			"status", result.Status.String(),
			"rules", len(result.FinalRules),
			"mined_equations", len(eqs),
		)
	}

	switch result.Status {
	case KBSuccess, KBTimeout, KBResourceLimit:
		return integrateKBRules(clauses, idxs, result.FinalRules)
	default:
		return clauses
	}
}
