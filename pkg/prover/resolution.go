package prover

import (
	"fmt"
	"time"
)

// ResolutionProver proves a goal from a set of hypotheses by refutation:
// it clausifies the hypotheses and the negated goal, then saturates the
// resulting clause set under resolution (and, optionally, factoring and
// paramodulation) until the empty clause is derived (the goal follows),
// the clause set saturates without deriving it (the goal does not
// follow), or a resource/time budget is exhausted.
//
// A ResolutionProver instance is single-threaded and not reentrant, in
// the same style as KnuthBendixCompletion: Prove, CheckSatisfiability,
// and ProveFromClauses reject a nested call on an instance already
// running.
type ResolutionProver struct {
	config ResolutionConfig

	running              bool
	terminationRequested bool
	startTime            time.Time

	clausesGenerated int
	clausesKept      int
}

// NewResolutionProver constructs a prover with the given configuration.
func NewResolutionProver(config ResolutionConfig) *ResolutionProver {
	return &ResolutionProver{config: config}
}

// IsRunning reports whether a proof attempt is currently in progress.
func (p *ResolutionProver) IsRunning() bool { return p.running }

// RequestTermination asks a running proof attempt to stop at the next
// iteration boundary, as if the wall-clock budget had been exhausted.
func (p *ResolutionProver) RequestTermination() { p.terminationRequested = true }

func (p *ResolutionProver) elapsed() time.Duration { return time.Since(p.startTime) }

// Prove attempts to derive the empty clause from hypotheses plus the
// negated goal, establishing that goal follows from hypotheses.
func (p *ResolutionProver) Prove(hypotheses []*Term, goal *Term) ResolutionProofResult {
	if p.running {
		return resolutionUnknownResult(ErrAlreadyRunning.Error())
	}
	clauses := p.setupRefutationProblem(hypotheses, goal)
	return p.run(clauses)
}

// CheckSatisfiability attempts to derive the empty clause from formulas
// directly (no negated goal is added). Deriving the empty clause means
// formulas are jointly unsatisfiable, reported as ResolutionDisproved;
// saturating without deriving it means formulas are satisfiable, reported
// as ResolutionProved. This is the refutation status inverted: the
// underlying run is still "does the empty clause follow", but the
// caller asked "is this satisfiable", and the two questions have
// opposite answers.
func (p *ResolutionProver) CheckSatisfiability(formulas []*Term) ResolutionProofResult {
	if p.running {
		return resolutionUnknownResult(ErrAlreadyRunning.Error())
	}
	var clauses []*Clause
	offset := 0
	for _, f := range formulas {
		cs := ToCNFWithRenaming(f, offset)
		clauses = append(clauses, cs...)
		offset = nextVariableOffset(offset, cs)
	}
	result := p.run(clauses)
	switch result.Status {
	case ResolutionProved:
		inverted := disprovedResult("formulas are jointly unsatisfiable: " + result.Message)
		inverted.EmptyClauseFrom = result.EmptyClauseFrom
		result = p.finish(inverted)
	case ResolutionSaturated:
		inverted := provedResult("formulas are satisfiable: "+result.Message, nil)
		result = p.finish(inverted)
	}
	return result
}

// ProveFromClauses runs saturation directly over an already-clausified
// problem, bypassing CNF conversion. Useful for tests and for callers
// that build their own clause sets.
func (p *ResolutionProver) ProveFromClauses(clauses []*Clause) ResolutionProofResult {
	if p.running {
		return resolutionUnknownResult(ErrAlreadyRunning.Error())
	}
	return p.run(clauses)
}

func (p *ResolutionProver) run(clauses []*Clause) ResolutionProofResult {
	p.running = true
	p.terminationRequested = false
	p.clausesGenerated = 0
	p.clausesKept = 0
	p.startTime = time.Now()
	defer func() { p.running = false }()

	cs := NewClauseSet(p.config.UseSubsumption, p.config.UseTautologyDeletion)

	if p.config.UseKBPreprocessing {
		clauses = p.tryKBPreprocessing(clauses)
	}

	for _, c := range clauses {
		if c.IsEmpty() {
			return p.finish(provedResult("Empty clause present in the initial problem", nil))
		}
		if cs.AddClause(c) {
			p.clausesKept++
		}
	}

	return p.finish(p.resolutionLoop(cs))
}

func (p *ResolutionProver) finish(result ResolutionProofResult) ResolutionProofResult {
	result.ElapsedSeconds = p.elapsed().Seconds()
	result.ClausesGenerated = p.clausesGenerated
	result.ClausesKept = p.clausesKept
	return result
}

// setupRefutationProblem clausifies every hypothesis and the negated
// goal into a single disjoint-variable-space clause list.
func (p *ResolutionProver) setupRefutationProblem(hypotheses []*Term, goal *Term) []*Clause {
	var clauses []*Clause
	offset := 0
	for _, h := range hypotheses {
		cs := ToCNFWithRenaming(h, offset)
		clauses = append(clauses, cs...)
		offset = nextVariableOffset(offset, cs)
	}
	negatedGoal := MakeNot(goal)
	clauses = append(clauses, ToCNFWithRenaming(negatedGoal, offset)...)
	return clauses
}

func nextVariableOffset(current int, clauses []*Clause) int {
	max := -1
	for _, c := range clauses {
		if m := c.MaxVariableIndex(); m > max {
			max = m
		}
	}
	if max+1 > current {
		return max + 1
	}
	return current
}

func (p *ResolutionProver) resolutionLoop(cs *ClauseSet) ResolutionProofResult {
	logger := p.config.logger()
	iterations := 0

	for {
		if p.terminationRequested {
			return resolutionTimeoutResult("Termination requested")
		}
		if iterations >= p.config.MaxIterations {
			return resolutionTimeoutResult("Maximum iterations exceeded")
		}
		if p.elapsed() >= p.config.MaxTime {
			return resolutionTimeoutResult("Time limit exceeded")
		}
		if cs.Size() > p.config.MaxClauses {
			return resolutionResourceLimitResult(fmt.Sprintf("Resource limit exceeded: %d clauses", cs.Size()))
		}

		given, ok := cs.SelectClause(p.config.SelectionStrategy)
		if !ok {
			return saturatedResult("Clause set saturated without deriving the empty clause")
		}
		if given.IsEmpty() {
			return provedResult("Derived the empty clause", []string{given.String()})
		}

		var newClauses []*Clause
		for _, lit := range given.Literals() {
			for _, other := range p.getCandidates(cs, lit) {
				if other == given {
					continue
				}
				if r, ok := p.resolveClauses(given, other); ok {
					newClauses = append(newClauses, r)
				}
			}
		}
		if p.config.UseFactoring {
			newClauses = append(newClauses, p.factorClause(given)...)
		}
		if p.config.UseParamodulation {
			newClauses = append(newClauses, p.paramodulate(given, cs)...)
		}

		p.clausesGenerated += len(newClauses)
		for _, nc := range newClauses {
			if nc.IsEmpty() {
				cs.AddClause(nc)
				return provedResult("Derived the empty clause", []string{given.String()})
			}
			if cs.AddClause(nc) {
				p.clausesKept++
			}
		}

		iterations++
		if p.config.Verbose && iterations%5 == 0 {
			logger.Debug("resolution progress",
				"iteration", iterations,
				"clauses", cs.Size(),
			)
		}
	}
}

// getCandidates returns the clauses that could participate in a
// resolution or paramodulation step against lit. When paramodulation is
// enabled every kept clause is a candidate, since an equational
// rewriting step is not confined to matching predicate/arity buckets the
// way plain resolution is.
func (p *ResolutionProver) getCandidates(cs *ClauseSet, lit Literal) []*Clause {
	if p.config.UseParamodulation {
		return cs.Clauses()
	}
	return cs.GetResolutionCandidates(lit)
}

// resolveClauses resolves c1 against c2 after renaming c2's variables
// apart from c1's, returning the resolvent from the first complementary
// literal pair that unifies (matching the original's resolve_clauses,
// which returns a single ResolutionResult rather than every possible
// resolvent of the pair).
func (p *ResolutionProver) resolveClauses(c1, c2 *Clause) (*Clause, bool) {
	offset := c1.MaxVariableIndex() + 1
	r2 := c2.RenameVariables(offset)

	for i, l1 := range c1.Literals() {
		for j, l2 := range r2.Literals() {
			if l1.IsPositive() == l2.IsPositive() {
				continue
			}
			sub, ok := Unify(l1.Atom(), l2.Atom())
			if !ok {
				continue
			}
			var newLits []Literal
			for k, l := range c1.Literals() {
				if k == i {
					continue
				}
				newLits = append(newLits, l.Substitute(sub))
			}
			for k, l := range r2.Literals() {
				if k == j {
					continue
				}
				newLits = append(newLits, l.Substitute(sub))
			}
			return NewClause(newLits).Simplify(), true
		}
	}
	return nil, false
}

// factorClause unifies each pair of same-polarity literals in c,
// returning one factor per successful unification with the duplicate
// literal merged away.
func (p *ResolutionProver) factorClause(c *Clause) []*Clause {
	lits := c.Literals()
	var factors []*Clause
	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			if lits[i].IsPositive() != lits[j].IsPositive() {
				continue
			}
			sub, ok := Unify(lits[i].Atom(), lits[j].Atom())
			if !ok {
				continue
			}
			var newLits []Literal
			for k, l := range lits {
				if k == j {
					continue
				}
				newLits = append(newLits, l.Substitute(sub))
			}
			factors = append(factors, NewClause(newLits).Simplify())
		}
	}
	return factors
}
