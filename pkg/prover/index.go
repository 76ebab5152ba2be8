package prover

// literalIndex accelerates resolution candidate retrieval. Clauses are
// indexed by each literal's (polarity, predicate symbol, arity); a query
// for resolution partners of a given literal looks up the bucket of
// opposite polarity under the same symbol and arity, since only
// complementary-polarity literals sharing a predicate can possibly
// resolve.
type literalIndex struct {
	// index_[polarity][predicateSymbol][arity] -> clauses
	index map[bool]map[string]map[int][]*Clause
	count int
}

func newLiteralIndex() *literalIndex {
	return &literalIndex{index: make(map[bool]map[string]map[int][]*Clause)}
}

// insertClause adds clause under a bucket for every one of its literals.
func (li *literalIndex) insertClause(clause *Clause) {
	for _, l := range clause.Literals() {
		li.insertBucket(l.IsPositive(), PredicateSymbol(l.Atom()), PredicateArity(l.Atom()), clause)
	}
	li.count++
}

func (li *literalIndex) insertBucket(positive bool, symbol string, arity int, clause *Clause) {
	byPredicate, ok := li.index[positive]
	if !ok {
		byPredicate = make(map[string]map[int][]*Clause)
		li.index[positive] = byPredicate
	}
	byArity, ok := byPredicate[symbol]
	if !ok {
		byArity = make(map[int][]*Clause)
		byPredicate[symbol] = byArity
	}
	byArity[arity] = append(byArity[arity], clause)
}

// removeClause removes every occurrence of clause from every bucket it
// could have been inserted under.
func (li *literalIndex) removeClause(clause *Clause) {
	for _, l := range clause.Literals() {
		li.removeFromBucket(l.IsPositive(), PredicateSymbol(l.Atom()), PredicateArity(l.Atom()), clause)
	}
	if li.count > 0 {
		li.count--
	}
}

func (li *literalIndex) removeFromBucket(positive bool, symbol string, arity int, clause *Clause) {
	byPredicate, ok := li.index[positive]
	if !ok {
		return
	}
	byArity, ok := byPredicate[symbol]
	if !ok {
		return
	}
	clauses := byArity[arity]
	out := clauses[:0]
	for _, c := range clauses {
		if c != clause {
			out = append(out, c)
		}
	}
	byArity[arity] = out
}

// clear empties the index.
func (li *literalIndex) clear() {
	li.index = make(map[bool]map[string]map[int][]*Clause)
	li.count = 0
}

// getResolutionCandidates returns every indexed clause containing a
// literal that could resolve against lit: opposite polarity, same
// predicate symbol, same arity.
func (li *literalIndex) getResolutionCandidates(lit Literal) []*Clause {
	byPredicate, ok := li.index[!lit.IsPositive()]
	if !ok {
		return nil
	}
	byArity, ok := byPredicate[PredicateSymbol(lit.Atom())]
	if !ok {
		return nil
	}
	return byArity[PredicateArity(lit.Atom())]
}

// size returns the number of insertClause calls minus the number of
// removeClause calls (never below zero), a simple insert/remove counter.
func (li *literalIndex) size() int { return li.count }
