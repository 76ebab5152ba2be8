package prover

import (
	"fmt"
	"time"
)

// maxCriticalPairsPerRule bounds the critical pairs emitted per ordered
// rule pair (and per self-overlap) in a single process_equation step, to
// keep a single new rule from exploding the equation queue.
const maxCriticalPairsPerRule = 50

// KnuthBendixCompletion runs the Knuth-Bendix completion procedure: it
// orients equations into rules, computes critical pairs between rules,
// and repeats until the equation queue is empty (success), a resource
// limit is hit, or the wall-clock/iteration budget is exhausted.
//
// A KnuthBendixCompletion instance is single-threaded and not reentrant:
// Complete and CompleteFromRules reject a nested call on an instance that
// is already running.
type KnuthBendixCompletion struct {
	ordering Ordering
	config   KBConfig

	rules []RewriteRule
	queue *equationQueue
	stats KBStats

	running              bool
	terminationRequested bool
	startTime            time.Time

	ruleCounter     int
	equationCounter int
}

// NewKnuthBendixCompletion constructs a completion engine over the given
// ordering. ordering must be non-nil.
func NewKnuthBendixCompletion(ordering Ordering, config KBConfig) (*KnuthBendixCompletion, error) {
	if ordering == nil {
		return nil, ErrNilOrdering
	}
	return &KnuthBendixCompletion{
		ordering: ordering,
		config:   config,
		queue:    newEquationQueue(config.FairProcessing),
	}, nil
}

// CurrentRules returns the rule set accumulated so far.
func (kb *KnuthBendixCompletion) CurrentRules() []RewriteRule { return kb.rules }

// Statistics returns the running statistics for the current or most
// recent call.
func (kb *KnuthBendixCompletion) Statistics() KBStats { return kb.stats }

// IsRunning reports whether a completion call is currently in progress.
func (kb *KnuthBendixCompletion) IsRunning() bool { return kb.running }

// RequestTermination asks a running completion loop to stop at the next
// iteration boundary, as if the wall-clock budget had been exhausted.
func (kb *KnuthBendixCompletion) RequestTermination() { kb.terminationRequested = true }

// Complete runs completion over the given initial equations.
func (kb *KnuthBendixCompletion) Complete(equations []Equation) KBResult {
	return kb.CompleteFromRules(nil, equations)
}

// CompleteFromRules runs completion starting from an existing rule set
// plus additional equations.
func (kb *KnuthBendixCompletion) CompleteFromRules(rules []RewriteRule, equations []Equation) KBResult {
	if kb.running {
		return kbFailure(ErrAlreadyRunning.Error())
	}
	kb.running = true
	kb.terminationRequested = false
	defer func() { kb.running = false }()

	kb.rules = append([]RewriteRule{}, rules...)
	kb.queue = newEquationQueue(kb.config.FairProcessing)
	kb.stats.reset()
	kb.startTime = time.Now()

	for _, eq := range equations {
		if eq.name == "" {
			eq.name = kb.generateEquationName()
		}
		kb.queue.push(eq, 0)
	}

	return kb.completionLoop()
}

func (kb *KnuthBendixCompletion) elapsed() time.Duration {
	return time.Since(kb.startTime)
}

func (kb *KnuthBendixCompletion) completionLoop() KBResult {
	logger := kb.config.logger()
	iterations := 0

	for {
		if kb.terminationRequested {
			return kb.timeoutResult(iterations, "Termination requested")
		}
		if iterations >= kb.config.MaxIterations {
			return kb.timeoutResult(iterations, "Maximum iterations exceeded")
		}
		if kb.elapsed() >= kb.config.MaxTime {
			return kb.timeoutResult(iterations, "Time limit exceeded")
		}
		if kb.checkResourceLimits() {
			return kb.resourceLimitResult(iterations)
		}

		equation, ok := kb.queue.pop()
		if !ok {
			break
		}

		kb.processEquation(equation)
		iterations++

		if kb.config.Verbose && iterations%5 == 0 {
			logger.Debug("knuth-bendix progress",
				"iteration", iterations,
				"rules", len(kb.rules),
				"queue", kb.queue.size(),
			)
		}
	}

	result := kbSuccess(kb.rules, kb.convergenceMessage())
	result.Iterations = iterations
	result.TotalEquationsProcessed = kb.stats.EquationsProcessed
	result.TotalCriticalPairsComputed = kb.stats.CriticalPairsComputed
	result.ElapsedSeconds = kb.elapsed().Seconds()
	if kb.config.Verbose {
		logger.Info("knuth-bendix completed", "status", result.Status.String(), "rules", len(kb.rules))
	}
	return result
}

func (kb *KnuthBendixCompletion) convergenceMessage() string {
	if len(kb.rules) == 0 {
		return "Completion converged with no rules"
	}
	return "Completion converged: rule set is confluent"
}

func (kb *KnuthBendixCompletion) timeoutResult(iterations int, message string) KBResult {
	result := kbTimeout(message)
	result.FinalRules = kb.rules
	result.Iterations = iterations
	result.TotalEquationsProcessed = kb.stats.EquationsProcessed
	result.TotalCriticalPairsComputed = kb.stats.CriticalPairsComputed
	result.ElapsedSeconds = kb.elapsed().Seconds()
	return result
}

func (kb *KnuthBendixCompletion) resourceLimitResult(iterations int) KBResult {
	result := kbResourceLimit(fmt.Sprintf("Resource limit exceeded: %d rules, %d queued equations", len(kb.rules), kb.queue.size()))
	result.FinalRules = kb.rules
	result.Iterations = iterations
	result.TotalEquationsProcessed = kb.stats.EquationsProcessed
	result.TotalCriticalPairsComputed = kb.stats.CriticalPairsComputed
	result.ElapsedSeconds = kb.elapsed().Seconds()
	return result
}

// checkResourceLimits reports whether the rule or queue size caps have
// been exceeded. Distinguishing this from the wall-clock/iteration
// timeout check is an explicit clarification: rule/queue-size caps are a
// distinct resource-limit status per the interface contract, not a
// timeout.
func (kb *KnuthBendixCompletion) checkResourceLimits() bool {
	return len(kb.rules) > kb.config.MaxRules || kb.queue.size() > kb.config.MaxEquations
}

func (kb *KnuthBendixCompletion) processEquation(equation Equation) {
	kb.stats.EquationsProcessed++

	simplified, dropped := kb.simplifyEquation(equation)
	if dropped {
		kb.stats.EquationsSimplified++
		return
	}

	if kb.config.EnableSubsumption && kb.isSubsumed(simplified) {
		kb.stats.EquationsSubsumed++
		return
	}

	rule, ok := OrientEquation(simplified, kb.ordering)
	if !ok {
		kb.stats.OrientationFailures++
		return
	}
	rule.name = kb.generateRuleName()

	if kb.config.EnableSimplification {
		kb.backSimplifyWith(rule)
	}

	if !kb.addRule(rule) {
		return
	}

	newPairs := kb.computeNewCriticalPairs(rule)
	for _, cp := range newPairs {
		kb.queue.push(cp.ToEquation(), 1)
	}
}

// simplifyEquation normalizes both sides of equation against the current
// rule set. Returns (equation, true) when the normalized sides are
// identical (the equation is now trivial and should be dropped).
func (kb *KnuthBendixCompletion) simplifyEquation(equation Equation) (Equation, bool) {
	temp := NewRewriteSystem()
	for _, r := range kb.rules {
		temp.AddRule(r)
	}
	lhs := temp.Normalize(equation.lhs, defaultNormalizeSteps)
	rhs := temp.Normalize(equation.rhs, defaultNormalizeSteps)
	if lhs.Equal(rhs) {
		return Equation{}, true
	}
	return NewEquation(lhs, rhs, equation.name), false
}

func (kb *KnuthBendixCompletion) isSubsumed(equation Equation) bool {
	temp := NewRewriteSystem()
	for _, r := range kb.rules {
		temp.AddRule(r)
	}
	return temp.Joinable(equation.lhs, equation.rhs, defaultNormalizeSteps)
}

// backSimplifyWith normalizes every existing rule's rhs against newRule,
// replacing any rule whose rhs changes, and silently dropping a rule if
// its simplified form can no longer be oriented.
func (kb *KnuthBendixCompletion) backSimplifyWith(newRule RewriteRule) {
	temp := NewRewriteSystem()
	temp.AddRule(newRule)

	var kept []RewriteRule
	for _, r := range kb.rules {
		newRhs := temp.Normalize(r.rhs, defaultNormalizeSteps)
		if newRhs.Equal(r.rhs) {
			kept = append(kept, r)
			continue
		}
		simplified := NewEquation(r.lhs, newRhs, r.name)
		if reoriented, ok := OrientEquation(simplified, kb.ordering); ok {
			kept = append(kept, reoriented)
		}
		kb.stats.RulesRemoved++
	}
	kb.rules = kept
}

func (kb *KnuthBendixCompletion) addRule(rule RewriteRule) bool {
	for _, r := range kb.rules {
		if r.Equal(rule) {
			return false
		}
	}
	kb.rules = append(kb.rules, rule)
	kb.stats.RulesAdded++
	return true
}

func (kb *KnuthBendixCompletion) computeNewCriticalPairs(newRule RewriteRule) []CriticalPair {
	var pairs []CriticalPair
	for _, existing := range kb.rules {
		if existing.name == newRule.name {
			continue
		}
		r1 := renameRuleVariables(newRule, overlapOffset1)
		r2 := renameRuleVariables(existing, overlapOffset2)
		pairs = append(pairs, capPairs(overlapInto(r1, r2), maxCriticalPairsPerRule)...)
		pairs = append(pairs, capPairs(overlapInto(r2, r1), maxCriticalPairsPerRule)...)
	}
	selfPairs := ComputeSelfCriticalPairs(newRule)
	pairs = append(pairs, capPairs(selfPairs, maxCriticalPairsPerRule)...)
	kb.stats.CriticalPairsComputed += len(pairs)
	return pairs
}

func capPairs(pairs []CriticalPair, max int) []CriticalPair {
	if len(pairs) <= max {
		return pairs
	}
	return pairs[:max]
}

func (kb *KnuthBendixCompletion) generateRuleName() string {
	kb.ruleCounter++
	return fmt.Sprintf("r%d", kb.ruleCounter)
}

func (kb *KnuthBendixCompletion) generateEquationName() string {
	kb.equationCounter++
	return fmt.Sprintf("e%d", kb.equationCounter)
}

// KnuthBendixComplete is a convenience wrapper that runs completion once
// over equations with the given ordering and configuration, without
// requiring the caller to hold a KnuthBendixCompletion value.
func KnuthBendixComplete(equations []Equation, ordering Ordering, config KBConfig) KBResult {
	kb, err := NewKnuthBendixCompletion(ordering, config)
	if err != nil {
		return kbFailure(err.Error())
	}
	return kb.Complete(equations)
}

// MakeKBCompletion returns a completion engine with a default LPO
// ordering, for callers that do not need a custom precedence.
func MakeKBCompletion(config KBConfig) *KnuthBendixCompletion {
	kb, _ := NewKnuthBendixCompletion(NewLPO(), config)
	return kb
}
