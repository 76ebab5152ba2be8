package prover

// ToCNF converts formula to Conjunctive Normal Form and returns the
// resulting set of clauses, running the full seven-step pipeline
// described in ToCNFWithRenaming starting at variable offset 0.
func ToCNF(formula *Term) []*Clause {
	return ToCNFWithRenaming(formula, 0)
}

// ToCNFWithRenaming runs the CNF pipeline with its internal fresh-variable
// counter seeded at variableOffset, so callers converting several
// formulas can keep their variable spaces disjoint across calls by
// advancing the offset between calls.
//
// Pipeline: eliminate implications, move negations inward (NNF), Skolemize
// (existentials are eliminated first, while the formula still carries its
// nested quantifier structure, so each Skolem term can see exactly which
// universals are in scope), standardize variables apart (discarding the
// now-all-universal quantifier wrappers in favor of fresh free variables),
// prenex (an identity pass — by this point every quantifier is already
// gone, so a real quantifier-reordering pass would have nothing left to
// do, and is intentionally not implemented), distribute OR over AND, and
// extract clauses.
func ToCNFWithRenaming(formula *Term, variableOffset int) []*Clause {
	step1 := eliminateImplications(formula)
	step2 := moveNegationsInward(step1)
	skolemCounter := 0
	step3 := skolemize(step2, nil, &skolemCounter)
	counter := variableOffset
	step4 := standardizeVariables(step3, &counter)
	step5 := toPrenexForm(step4)
	step6 := distributeOrOverAnd(step5)
	return extractClauses(step6)
}

// eliminateImplications rewrites A -> B as ¬A ∨ B throughout formula.
func eliminateImplications(formula *Term) *Term {
	switch formula.kind {
	case KindImplies:
		return MakeOr(MakeNot(eliminateImplications(formula.left)), eliminateImplications(formula.right))
	case KindAnd:
		return MakeAnd(eliminateImplications(formula.left), eliminateImplications(formula.right))
	case KindOr:
		return MakeOr(eliminateImplications(formula.left), eliminateImplications(formula.right))
	case KindNot:
		return MakeNot(eliminateImplications(formula.body))
	case KindForall:
		return MakeForall(formula.hint, eliminateImplications(formula.body))
	case KindExists:
		return MakeExists(formula.hint, eliminateImplications(formula.body))
	default:
		return formula
	}
}

// moveNegationsInward puts formula in negation normal form: double
// negation elimination, De Morgan over And/Or, and quantifier-swap rules
// for negated quantifiers.
func moveNegationsInward(formula *Term) *Term {
	switch formula.kind {
	case KindNot:
		return pushNegation(formula.body)
	case KindAnd:
		return MakeAnd(moveNegationsInward(formula.left), moveNegationsInward(formula.right))
	case KindOr:
		return MakeOr(moveNegationsInward(formula.left), moveNegationsInward(formula.right))
	case KindForall:
		return MakeForall(formula.hint, moveNegationsInward(formula.body))
	case KindExists:
		return MakeExists(formula.hint, moveNegationsInward(formula.body))
	default:
		return formula
	}
}

// pushNegation handles moveNegationsInward's job when the outermost node
// being processed is the body of a Not.
func pushNegation(body *Term) *Term {
	switch body.kind {
	case KindNot:
		return moveNegationsInward(body.body)
	case KindAnd:
		return MakeOr(pushNegation(body.left), pushNegation(body.right))
	case KindOr:
		return MakeAnd(pushNegation(body.left), pushNegation(body.right))
	case KindForall:
		return MakeExists(body.hint, pushNegation(body.body))
	case KindExists:
		return MakeForall(body.hint, pushNegation(body.body))
	default:
		return MakeNot(moveNegationsInward(body))
	}
}

// standardizeVariables replaces every remaining quantifier binding (by
// this point in the pipeline, always universal — skolemize has already
// eliminated every existential) with a fresh global variable index,
// discarding the quantifier wrapper in favor of a free Var node.
//
// This walks the whole formula in one pass carrying bindings, a stack of
// fresh ids indexed by De-Bruijn depth (bindings[i] is the fresh id
// assigned to the binder i levels up from the current position). A
// single pass is required rather than repeatedly re-stripping the
// outermost quantifier: once a bound occurrence has been rewritten to a
// fresh Var(id), that id is an absolute identifier, not a depth-relative
// one, and a second pass started from depth 0 cannot tell it apart from
// a genuine still-bound De-Bruijn variable of the same numeric value.
func standardizeVariables(formula *Term, counter *int) *Term {
	return standardizeAt(formula, nil, counter)
}

func standardizeAt(t *Term, bindings []int, counter *int) *Term {
	switch t.kind {
	case KindVar:
		if t.index < len(bindings) {
			return MakeVar(bindings[t.index])
		}
		return t
	case KindConst:
		return t
	case KindApp:
		args := make([]*Term, len(t.args))
		for i, a := range t.args {
			args[i] = standardizeAt(a, bindings, counter)
		}
		return MakeApp(t.symbol, args)
	case KindNot:
		return MakeNot(standardizeAt(t.body, bindings, counter))
	case KindAnd:
		return MakeAnd(standardizeAt(t.left, bindings, counter), standardizeAt(t.right, bindings, counter))
	case KindOr:
		return MakeOr(standardizeAt(t.left, bindings, counter), standardizeAt(t.right, bindings, counter))
	case KindImplies:
		return MakeImplies(standardizeAt(t.left, bindings, counter), standardizeAt(t.right, bindings, counter))
	case KindForall, KindExists:
		fresh := *counter
		*counter++
		newBindings := append([]int{fresh}, bindings...)
		return standardizeAt(t.body, newBindings, counter)
	default:
		return t
	}
}

// toPrenexForm is an identity pass: by the time it runs, standardizeVariables
// has already stripped every quantifier from the formula, so there is
// nothing left for a real quantifier-hoisting transformation to do.
// Reproduce the identity rather than introduce a pass with no work.
func toPrenexForm(formula *Term) *Term {
	return formula
}

// stripBinder removes one enclosing binder from t, replacing its bound
// occurrences (De-Bruijn index equal to depth) with replacement and
// decrementing every other free-variable reference that pointed past the
// removed binder. replacement's own free variables, if any, must be
// expressed relative to the level at which the binder is being removed
// (as skolemize's Skolem terms are, by construction); each inserted copy
// has them shifted up by the number of binders crossed to reach it, so
// they are not captured by nested quantifiers.
func stripBinder(t *Term, depth int, replacement *Term) *Term {
	switch t.kind {
	case KindVar:
		switch {
		case t.index == depth:
			return shift(replacement, depth)
		case t.index > depth:
			return MakeVar(t.index - 1)
		default:
			return t
		}
	case KindConst:
		return t
	case KindApp:
		args := make([]*Term, len(t.args))
		for i, a := range t.args {
			args[i] = stripBinder(a, depth, replacement)
		}
		return MakeApp(t.symbol, args)
	case KindNot:
		return MakeNot(stripBinder(t.body, depth, replacement))
	case KindForall:
		return MakeForall(t.hint, stripBinder(t.body, depth+1, replacement))
	case KindExists:
		return MakeExists(t.hint, stripBinder(t.body, depth+1, replacement))
	case KindAnd:
		return MakeAnd(stripBinder(t.left, depth, replacement), stripBinder(t.right, depth, replacement))
	case KindOr:
		return MakeOr(stripBinder(t.left, depth, replacement), stripBinder(t.right, depth, replacement))
	case KindImplies:
		return MakeImplies(stripBinder(t.left, depth, replacement), stripBinder(t.right, depth, replacement))
	default:
		return t
	}
}

// skolemize eliminates existential quantifiers, descending while tracking
// the De-Bruijn indices of in-scope universal variables. Each ∃x.body
// becomes body with x replaced by a fresh Skolem constant (if no
// universal is in scope) or a Skolem function of the universals
// (otherwise); the quantifier wrapper is discarded. Each ∀x.body pushes a
// fresh universal index (incrementing every already-tracked universal
// index by one, since descending this binder puts them one level further
// away) and is re-wrapped around the recursively Skolemized body, so
// standardizeVariables can later strip the remaining (all-universal)
// quantifiers.
func skolemize(formula *Term, universalVars []int, skolemCounter *int) *Term {
	switch formula.kind {
	case KindExists:
		name := generateSkolemName(*skolemCounter)
		*skolemCounter++
		var skolemTerm *Term
		if len(universalVars) == 0 {
			skolemTerm = MakeConst(name)
		} else {
			args := make([]*Term, len(universalVars))
			for i, idx := range universalVars {
				args[i] = MakeVar(idx)
			}
			skolemTerm = MakeApp(name, args)
		}
		substituted := stripBinder(formula.body, 0, skolemTerm)
		return skolemize(substituted, universalVars, skolemCounter)
	case KindForall:
		shifted := make([]int, len(universalVars))
		for i, idx := range universalVars {
			shifted[i] = idx + 1
		}
		newUniversals := append(shifted, 0)
		body := skolemize(formula.body, newUniversals, skolemCounter)
		return MakeForall(formula.hint, body)
	case KindAnd:
		return MakeAnd(skolemize(formula.left, universalVars, skolemCounter), skolemize(formula.right, universalVars, skolemCounter))
	case KindOr:
		return MakeOr(skolemize(formula.left, universalVars, skolemCounter), skolemize(formula.right, universalVars, skolemCounter))
	case KindNot:
		return MakeNot(skolemize(formula.body, universalVars, skolemCounter))
	default:
		return formula
	}
}

// distributeOrOverAnd recursively pushes Or inside And so the result is a
// conjunction of disjunctions of literals.
func distributeOrOverAnd(formula *Term) *Term {
	switch formula.kind {
	case KindAnd:
		return MakeAnd(distributeOrOverAnd(formula.left), distributeOrOverAnd(formula.right))
	case KindOr:
		left := distributeOrOverAnd(formula.left)
		right := distributeOrOverAnd(formula.right)
		if left.kind == KindAnd {
			return distributeOrOverAnd(MakeAnd(MakeOr(left.left, right), MakeOr(left.right, right)))
		}
		if right.kind == KindAnd {
			return distributeOrOverAnd(MakeAnd(MakeOr(left, right.left), MakeOr(left, right.right)))
		}
		return MakeOr(left, right)
	default:
		return formula
	}
}

// extractClauses flattens the top-level conjunction of formula into
// clauses, flattening each disjunction into literals.
func extractClauses(formula *Term) []*Clause {
	var conjuncts []*Term
	var flattenAnd func(t *Term)
	flattenAnd = func(t *Term) {
		if t.kind == KindAnd {
			flattenAnd(t.left)
			flattenAnd(t.right)
			return
		}
		conjuncts = append(conjuncts, t)
	}
	flattenAnd(formula)

	clauses := make([]*Clause, 0, len(conjuncts))
	for _, c := range conjuncts {
		clauses = append(clauses, NewClause(extractLiterals(c)))
	}
	return clauses
}

// extractLiterals flattens a disjunction into literals, unwrapping a
// leading Not into a negative literal.
func extractLiterals(disjunction *Term) []Literal {
	var literals []Literal
	var flattenOr func(t *Term)
	flattenOr = func(t *Term) {
		if t.kind == KindOr {
			flattenOr(t.left)
			flattenOr(t.right)
			return
		}
		if t.kind == KindNot {
			literals = append(literals, NewLiteral(t.body, false))
			return
		}
		literals = append(literals, NewLiteral(t, true))
	}
	flattenOr(disjunction)
	return literals
}
