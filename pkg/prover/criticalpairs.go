package prover

import "fmt"

// CriticalPair is the result of overlapping two rewrite rules at a
// non-variable position: rule1's lhs unifies with a subterm of rule2's
// lhs, producing two terms that must be joinable for the rule set to be
// locally confluent.
type CriticalPair struct {
	Left      *Term
	Right     *Term
	Rule1Name string
	Rule2Name string
	Position  Position
	Unifier   *Substitution
}

// ToEquation converts the critical pair to an equation with a name
// synthesized from the two rule names and the overlap position.
func (cp CriticalPair) ToEquation() Equation {
	name := fmt.Sprintf("cp_%s_%s_%s", cp.Rule1Name, cp.Rule2Name, cp.Position.String())
	return NewEquation(cp.Left, cp.Right, name)
}

// renameRuleVariables offsets every free variable of rule by offset, used
// to make two rules' variable spaces disjoint before overlap unification.
func renameRuleVariables(rule RewriteRule, offset int) RewriteRule {
	return rule.RenameVariables(offset)
}

// overlapOffset1 and overlapOffset2 mirror the offset scheme used to keep
// two rules' variables disjoint while computing critical pairs.
const (
	overlapOffset1 = 0
	overlapOffset2 = 1000
)

// ComputeCriticalPairs computes all critical pairs arising from
// overlapping rule1's lhs onto every non-variable position of rule2's
// lhs (root included), in both directions of unification.
func ComputeCriticalPairs(rule1, rule2 RewriteRule, ordering Ordering) []CriticalPair {
	r1 := renameRuleVariables(rule1, overlapOffset1)
	r2 := renameRuleVariables(rule2, overlapOffset2)

	var pairs []CriticalPair
	pairs = append(pairs, overlapInto(r1, r2)...)
	pairs = append(pairs, overlapInto(r2, r1)...)
	return pairs
}

// ComputeSelfCriticalPairs computes the critical pairs of a rule
// overlapped with itself, skipping the (trivial) root self-overlap.
func ComputeSelfCriticalPairs(rule RewriteRule) []CriticalPair {
	r1 := renameRuleVariables(rule, overlapOffset1)
	r2 := renameRuleVariables(rule, overlapOffset2)

	positions := FindNonVariablePositions(r2.lhs)
	var pairs []CriticalPair
	for _, pos := range positions {
		if pos.IsRoot() {
			continue
		}
		if pair, ok := tryOverlap(r1, r2, pos); ok {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

// overlapInto unifies outer.lhs against the subterm at every non-variable
// position of inner.lhs (inner is the rule whose lhs provides the
// positions, outer is unified wholesale against the subterm).
func overlapInto(outer, inner RewriteRule) []CriticalPair {
	positions := FindNonVariablePositions(inner.lhs)
	var pairs []CriticalPair
	for _, pos := range positions {
		if pair, ok := tryOverlap(outer, inner, pos); ok {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

func tryOverlap(outer, inner RewriteRule, pos Position) (CriticalPair, bool) {
	subterm, ok := SubtermAt(inner.lhs, pos)
	if !ok {
		return CriticalPair{}, false
	}
	sub, ok := Unify(outer.lhs, subterm)
	if !ok {
		return CriticalPair{}, false
	}

	overlapped, ok := ReplaceAt(inner.lhs, pos, ApplyFully(outer.rhs, sub))
	if !ok {
		return CriticalPair{}, false
	}
	left := ApplyFully(overlapped, sub)
	right := ApplyFully(inner.rhs, sub)

	if left.Equal(right) {
		return CriticalPair{}, false
	}

	return CriticalPair{
		Left:      left,
		Right:     right,
		Rule1Name: outer.name,
		Rule2Name: inner.name,
		Position:  pos,
		Unifier:   sub,
	}, true
}

// ComputeAllCriticalPairs pairs every distinct (i, j) index combination in
// rules (both orderings) and adds each rule's self-overlaps.
func ComputeAllCriticalPairs(rules []RewriteRule, ordering Ordering) []CriticalPair {
	var all []CriticalPair
	for i := range rules {
		for j := range rules {
			if i == j {
				continue
			}
			all = append(all, ComputeCriticalPairs(rules[i], rules[j], ordering)...)
		}
	}
	for _, r := range rules {
		all = append(all, ComputeSelfCriticalPairs(r)...)
	}
	return all
}
