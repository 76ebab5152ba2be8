package prover

// ClauseSetStats summarizes a clause set for diagnostic reporting,
// mirroring the free-function diagnostics the resolution engine this
// package is modeled on exposes for debugging a stuck or surprising
// saturation run.
type ClauseSetStats struct {
	TotalClauses    int
	UnitClauses     int
	EmptyClauses    int
	PositiveClauses int
	NegativeClauses int
	MixedClauses    int
	MaxClauseSize   int
	EqualityClauses int
}

// AnalyzeClauseSet computes summary statistics over clauses.
func AnalyzeClauseSet(clauses []*Clause) ClauseSetStats {
	var stats ClauseSetStats
	stats.TotalClauses = len(clauses)
	for _, c := range clauses {
		if c.IsEmpty() {
			stats.EmptyClauses++
			continue
		}
		if c.IsUnit() {
			stats.UnitClauses++
		}
		if c.Size() > stats.MaxClauseSize {
			stats.MaxClauseSize = c.Size()
		}

		positive, negative := 0, 0
		for _, l := range c.Literals() {
			if IsEqualityAtom(l.Atom()) {
				stats.EqualityClauses++
			}
			if l.IsPositive() {
				positive++
			} else {
				negative++
			}
		}
		switch {
		case negative == 0:
			stats.PositiveClauses++
		case positive == 0:
			stats.NegativeClauses++
		default:
			stats.MixedClauses++
		}
	}
	return stats
}

// IsObviouslyUnsatisfiable reports whether clauses already contains the
// empty clause, the cheapest possible unsatisfiability check before
// paying for a full saturation run.
func IsObviouslyUnsatisfiable(clauses []*Clause) bool {
	for _, c := range clauses {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// IsObviouslySatisfiable reports whether clauses is trivially
// satisfiable: there are no clauses at all, or every clause is a
// tautology.
func IsObviouslySatisfiable(clauses []*Clause) bool {
	if len(clauses) == 0 {
		return true
	}
	for _, c := range clauses {
		if !c.IsTautology() {
			return false
		}
	}
	return true
}
