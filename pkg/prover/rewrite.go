package prover

import "fmt"

// RewriteRule is an oriented rewrite rule lhs -> rhs, named for reference
// in critical pairs and completion statistics. The invariant lhs ≻ rhs
// under the active ordering is established by OrientEquation and never
// re-checked by RewriteRule itself.
type RewriteRule struct {
	lhs  *Term
	rhs  *Term
	name string
}

// NewRewriteRule constructs a rule without checking orientation; callers
// that need the orientation invariant enforced should go through
// OrientEquation.
func NewRewriteRule(lhs, rhs *Term, name string) RewriteRule {
	return RewriteRule{lhs: lhs, rhs: rhs, name: name}
}

// Lhs returns the rule's left-hand side.
func (r RewriteRule) Lhs() *Term { return r.lhs }

// Rhs returns the rule's right-hand side.
func (r RewriteRule) Rhs() *Term { return r.rhs }

// Name returns the rule's name.
func (r RewriteRule) Name() string { return r.name }

// Equal compares two rules by lhs/rhs only, ignoring name.
func (r RewriteRule) Equal(other RewriteRule) bool {
	return r.lhs.Equal(other.lhs) && r.rhs.Equal(other.rhs)
}

// RenameVariables returns a copy of r with every free variable on both
// sides shifted up by offset.
func (r RewriteRule) RenameVariables(offset int) RewriteRule {
	return RewriteRule{lhs: RenameVariables(r.lhs, offset), rhs: RenameVariables(r.rhs, offset), name: r.name}
}

func (r RewriteRule) String() string {
	return fmt.Sprintf("%s: %s → %s", r.name, r.lhs.String(), r.rhs.String())
}

// Equation is an unoriented pair (lhs, rhs), the unit of work fed to
// Knuth-Bendix completion before it becomes a RewriteRule.
type Equation struct {
	lhs  *Term
	rhs  *Term
	name string
}

// NewEquation constructs an equation. Identity equations (lhs == rhs) are
// not rejected here; callers (notably the completion loop) drop them
// silently per the simplification step's contract.
func NewEquation(lhs, rhs *Term, name string) Equation {
	return Equation{lhs: lhs, rhs: rhs, name: name}
}

func (e Equation) Lhs() *Term   { return e.lhs }
func (e Equation) Rhs() *Term   { return e.rhs }
func (e Equation) Name() string { return e.name }

func (e Equation) String() string {
	return fmt.Sprintf("%s: %s = %s", e.name, e.lhs.String(), e.rhs.String())
}

// OrientEquation compares e's two sides under ordering and returns a rule
// with the greater side as lhs. Equations with equivalent sides cannot be
// oriented and the second return value is false.
func OrientEquation(e Equation, ordering Ordering) (RewriteRule, bool) {
	if ordering.Greater(e.lhs, e.rhs) {
		return NewRewriteRule(e.lhs, e.rhs, e.name), true
	}
	if ordering.Greater(e.rhs, e.lhs) {
		return NewRewriteRule(e.rhs, e.lhs, e.name), true
	}
	return RewriteRule{}, false
}

// RewriteResult is the outcome of a single rewrite step.
type RewriteResult struct {
	Success  bool
	Result   *Term
	Position Position
	RuleName string
}

func rewriteFailure() RewriteResult {
	return RewriteResult{Success: false}
}

func rewriteSuccessAt(result *Term, pos Position, ruleName string) RewriteResult {
	return RewriteResult{Success: true, Result: result, Position: pos, RuleName: ruleName}
}

// RewriteSystem holds a set of rewrite rules and performs one-step and
// normal-form rewriting over them.
type RewriteSystem struct {
	rules []RewriteRule
}

// NewRewriteSystem returns an empty rewrite system.
func NewRewriteSystem() *RewriteSystem {
	return &RewriteSystem{}
}

// Rules returns the system's current rules.
func (rs *RewriteSystem) Rules() []RewriteRule {
	return rs.rules
}

// Clear removes every rule.
func (rs *RewriteSystem) Clear() {
	rs.rules = nil
}

// AddRule appends rule unless an equal rule (by lhs/rhs) already exists.
// Returns false when the rule was a duplicate.
func (rs *RewriteSystem) AddRule(rule RewriteRule) bool {
	for _, r := range rs.rules {
		if r.Equal(rule) {
			return false
		}
	}
	rs.rules = append(rs.rules, rule)
	return true
}

// RemoveRule deletes the named rule, reporting whether one was found.
func (rs *RewriteSystem) RemoveRule(name string) bool {
	for i, r := range rs.rules {
		if r.name == name {
			rs.rules = append(rs.rules[:i], rs.rules[i+1:]...)
			return true
		}
	}
	return false
}

// RewriteStep attempts one rewrite of term at any position, trying rules
// in registration order and positions in pre-order. Returns the first
// applicable rewrite.
func (rs *RewriteSystem) RewriteStep(term *Term) RewriteResult {
	var found RewriteResult
	var walk func(t *Term, pos Position) bool
	walk = func(t *Term, pos Position) bool {
		for _, rule := range rs.rules {
			if sub, ok := matchLHS(rule.lhs, t); ok {
				replaced := ApplyFully(rule.rhs, sub)
				newTerm, ok := ReplaceAt(term, pos, replaced)
				if ok {
					found = rewriteSuccessAt(newTerm, pos, rule.name)
					return true
				}
			}
		}
		for i, c := range children(t) {
			if walk(c, pos.Descend(i)) {
				return true
			}
		}
		return false
	}
	if walk(term, RootPosition()) {
		return found
	}
	return rewriteFailure()
}

// Normalize repeatedly applies RewriteStep to term until no rule applies
// or maxSteps single-rewrites have been performed, returning the final
// term. Termination is guaranteed when the rule set's orientation forms a
// reduction order; maxSteps is an implementation-level safety bound.
func (rs *RewriteSystem) Normalize(term *Term, maxSteps int) *Term {
	cur := term
	for i := 0; i < maxSteps; i++ {
		res := rs.RewriteStep(cur)
		if !res.Success {
			return cur
		}
		cur = res.Result
	}
	return cur
}

// IsNormalForm reports whether no rule in rs applies anywhere in term.
func (rs *RewriteSystem) IsNormalForm(term *Term) bool {
	return !rs.RewriteStep(term).Success
}

// Joinable reports whether normalizing s and t (each bounded by maxSteps)
// yields structurally equal terms.
func (rs *RewriteSystem) Joinable(s, t *Term, maxSteps int) bool {
	return rs.Normalize(s, maxSteps).Equal(rs.Normalize(t, maxSteps))
}

const defaultNormalizeSteps = 1000
