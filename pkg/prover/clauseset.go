package prover

// ClauseSet holds the working set of clauses during resolution
// saturation: every kept clause (for subsumption and candidate lookups)
// plus the subset not yet selected for processing. AddClause applies
// tautology deletion, duplicate-hash detection, and forward/backward
// subsumption; SelectClause hands the next clause to the saturation loop
// according to a SelectionStrategy.
type ClauseSet struct {
	all         []*Clause
	unprocessed []*Clause
	index       *literalIndex
	seenHashes  map[uint64][]*Clause

	useSubsumption       bool
	useTautologyDeletion bool
}

// NewClauseSet returns an empty clause set configured with the given
// simplification options.
func NewClauseSet(useSubsumption, useTautologyDeletion bool) *ClauseSet {
	return &ClauseSet{
		index:                newLiteralIndex(),
		seenHashes:           make(map[uint64][]*Clause),
		useSubsumption:       useSubsumption,
		useTautologyDeletion: useTautologyDeletion,
	}
}

// Clauses returns every clause currently kept in the set.
func (cs *ClauseSet) Clauses() []*Clause { return cs.all }

// Size returns the number of clauses currently kept.
func (cs *ClauseSet) Size() int { return len(cs.all) }

// Clear empties the set.
func (cs *ClauseSet) Clear() {
	cs.all = nil
	cs.unprocessed = nil
	cs.index.clear()
	cs.seenHashes = make(map[uint64][]*Clause)
}

// AddClause simplifies clause (removing duplicate literals), then
// discards it as redundant if it is a tautology (when tautology deletion
// is enabled), a structural duplicate of an already-kept clause, or
// subsumed by an already-kept clause (when subsumption is enabled).
// Otherwise it is kept, indexed, and made available to SelectClause;
// AddClause reports whether the clause was kept.
func (cs *ClauseSet) AddClause(clause *Clause) bool {
	simplified := clause.Simplify()

	if cs.useTautologyDeletion && simplified.IsTautology() {
		return false
	}

	h := simplified.Hash()
	for _, existing := range cs.seenHashes[h] {
		if existing.Equal(simplified) {
			return false
		}
	}

	if cs.useSubsumption && cs.IsSubsumed(simplified) {
		return false
	}

	if cs.useSubsumption {
		cs.RemoveSubsumedClauses(simplified)
	}

	cs.all = append(cs.all, simplified)
	cs.unprocessed = append(cs.unprocessed, simplified)
	cs.seenHashes[h] = append(cs.seenHashes[h], simplified)
	cs.index.insertClause(simplified)
	return true
}

// IsSubsumed reports whether some clause already in the set subsumes
// clause.
func (cs *ClauseSet) IsSubsumed(clause *Clause) bool {
	for _, existing := range cs.all {
		if existing.Subsumes(clause) {
			return true
		}
	}
	return false
}

// RemoveSubsumedClauses removes every kept clause (other than newClause
// itself, by identity) that newClause subsumes.
func (cs *ClauseSet) RemoveSubsumedClauses(newClause *Clause) {
	var keptAll, keptUnprocessed []*Clause
	for _, c := range cs.all {
		if c != newClause && newClause.Subsumes(c) {
			cs.index.removeClause(c)
			continue
		}
		keptAll = append(keptAll, c)
	}
	cs.all = keptAll
	for _, c := range cs.unprocessed {
		if c != newClause && newClause.Subsumes(c) {
			continue
		}
		keptUnprocessed = append(keptUnprocessed, c)
	}
	cs.unprocessed = keptUnprocessed
}

// SelectClause removes and returns the next clause to process, chosen
// according to strategy. SelectNegativeSelection falls back to FIFO,
// matching the engine this package is modeled on, which never
// implemented a true negative-selection heuristic.
func (cs *ClauseSet) SelectClause(strategy SelectionStrategy) (*Clause, bool) {
	if len(cs.unprocessed) == 0 {
		return nil, false
	}

	idx := 0
	switch strategy {
	case SelectSmallestFirst:
		for i, c := range cs.unprocessed {
			if c.Size() < cs.unprocessed[idx].Size() {
				idx = i
			}
		}
	case SelectUnitPreference:
		idx = 0
		for i, c := range cs.unprocessed {
			if c.IsUnit() {
				idx = i
				break
			}
		}
	case SelectFIFO, SelectNegativeSelection:
		idx = 0
	}

	selected := cs.unprocessed[idx]
	cs.unprocessed = append(cs.unprocessed[:idx], cs.unprocessed[idx+1:]...)
	return selected, true
}

// GetResolutionCandidates returns every kept clause containing a literal
// that could resolve against lit.
func (cs *ClauseSet) GetResolutionCandidates(lit Literal) []*Clause {
	return cs.index.getResolutionCandidates(lit)
}

// AreVariants reports whether c1 and c2 subsume each other, i.e. are
// identical up to variable renaming and literal order.
func AreVariants(c1, c2 *Clause) bool {
	return c1.Subsumes(c2) && c2.Subsumes(c1)
}
