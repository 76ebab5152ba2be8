package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionProverModusPonens(t *testing.T) {
	p := MakeConst("p")
	q := MakeConst("q")
	prover := NewResolutionProver(DefaultResolutionConfig())
	result := prover.Prove([]*Term{p, MakeImplies(p, q)}, q)
	require.Equal(t, ResolutionProved, result.Status)
	assert.NotEmpty(t, result.EmptyClauseFrom)
}

func TestResolutionProverDisjunctiveSyllogism(t *testing.T) {
	p := MakeConst("p")
	q := MakeConst("q")
	// p or q, not p |- q
	hypotheses := []*Term{MakeOr(p, q), MakeNot(p)}
	prover := NewResolutionProver(DefaultResolutionConfig())
	result := prover.Prove(hypotheses, q)
	require.Equal(t, ResolutionProved, result.Status)
}

func TestResolutionProverUniversalInstantiation(t *testing.T) {
	// forall x. p(x) |- p(a)
	px0 := MakeApp("p", []*Term{MakeVar(0)})
	forall := MakeForall("x", px0)
	goal := MakeApp("p", []*Term{MakeConst("a")})

	prover := NewResolutionProver(DefaultResolutionConfig())
	result := prover.Prove([]*Term{forall}, goal)
	require.Equal(t, ResolutionProved, result.Status)
}

func TestResolutionProverEqualitySubstitutionViaParamodulation(t *testing.T) {
	// a = b, p(a) |- p(b)
	a := MakeConst("a")
	b := MakeConst("b")
	eq := MakeEquality(a, b)
	pa := MakeApp("p", []*Term{a})
	pb := MakeApp("p", []*Term{b})

	config := DefaultResolutionConfig()
	config.UseParamodulation = true
	prover := NewResolutionProver(config)
	result := prover.Prove([]*Term{eq, pa}, pb)
	require.Equal(t, ResolutionProved, result.Status)
}

func TestResolutionProverTransitivityChainWithKBPreprocessing(t *testing.T) {
	// {a0=a1, a1=a2, a2=a3, P(a0)}, goal P(a3): KB preprocessing mines the
	// unit equality clauses and completes them into a1=a0, a2=a0, a3=a0
	// before saturation, then paramodulation rewrites the negated goal
	// ¬P(a3) to ¬P(a0), which resolves against P(a0).
	a0 := MakeConst("a0")
	a1 := MakeConst("a1")
	a2 := MakeConst("a2")
	a3 := MakeConst("a3")
	eq1 := MakeEquality(a0, a1)
	eq2 := MakeEquality(a1, a2)
	eq3 := MakeEquality(a2, a3)
	pa0 := MakeApp("p", []*Term{a0})
	goal := MakeApp("p", []*Term{a3})

	config := DefaultResolutionConfig()
	config.UseKBPreprocessing = true
	config.UseParamodulation = true
	prover := NewResolutionProver(config)
	result := prover.Prove([]*Term{eq1, eq2, eq3, pa0}, goal)
	require.Equal(t, ResolutionProved, result.Status)
}

func TestResolutionProverUnprovableGoalSaturates(t *testing.T) {
	p := MakeConst("p")
	q := MakeConst("q")
	// p alone does not entail q.
	config := DefaultResolutionConfig()
	config.MaxIterations = 200
	prover := NewResolutionProver(config)
	result := prover.Prove([]*Term{p}, q)
	assert.Equal(t, ResolutionSaturated, result.Status)
}

func TestResolutionProverRejectsReentrantCall(t *testing.T) {
	prover := NewResolutionProver(DefaultResolutionConfig())
	prover.running = true
	result := prover.Prove([]*Term{MakeConst("p")}, MakeConst("q"))
	assert.Equal(t, ResolutionUnknown, result.Status)
}

func TestResolutionProverCheckSatisfiabilityUnsatisfiable(t *testing.T) {
	p := MakeConst("p")
	prover := NewResolutionProver(DefaultResolutionConfig())
	result := prover.CheckSatisfiability([]*Term{p, MakeNot(p)})
	assert.Equal(t, ResolutionDisproved, result.Status)
}

func TestResolutionProverCheckSatisfiabilitySatisfiable(t *testing.T) {
	p := MakeConst("p")
	config := DefaultResolutionConfig()
	config.MaxIterations = 50
	prover := NewResolutionProver(config)
	result := prover.CheckSatisfiability([]*Term{p})
	assert.Equal(t, ResolutionProved, result.Status)
}

func TestResolutionProverResourceLimit(t *testing.T) {
	p := MakeConst("p")
	q := MakeConst("q")
	config := DefaultResolutionConfig()
	config.MaxClauses = 0
	prover := NewResolutionProver(config)
	result := prover.Prove([]*Term{p}, q)
	assert.Equal(t, ResolutionResourceLimit, result.Status)
}

func TestResolutionProverFactoringMergesDuplicateLiteral(t *testing.T) {
	// P(X) or P(a): factoring should unify the two literals into a
	// single-literal clause under X -> a.
	x := MakeVar(0)
	a := MakeConst("a")
	c := NewClause([]Literal{
		NewLiteral(MakeApp("p", []*Term{x}), true),
		NewLiteral(MakeApp("p", []*Term{a}), true),
	})
	prover := NewResolutionProver(DefaultResolutionConfig())
	factors := prover.factorClause(c)
	require.Len(t, factors, 1)
	assert.Equal(t, 1, factors[0].Size())
}

func TestResolveClausesRenamesApartBeforeUnifying(t *testing.T) {
	// P(X) or Q(X), and not-P(Y): resolving must not confuse c1's X with
	// c2's Y even though both start at De-Bruijn index 0.
	x := MakeVar(0)
	y := MakeVar(0)
	c1 := NewClause([]Literal{
		NewLiteral(MakeApp("p", []*Term{x}), true),
		NewLiteral(MakeApp("q", []*Term{x}), true),
	})
	c2 := NewClause([]Literal{NewLiteral(MakeApp("p", []*Term{y}), false)})

	prover := NewResolutionProver(DefaultResolutionConfig())
	resolvent, ok := prover.resolveClauses(c1, c2)
	require.True(t, ok)
	assert.Equal(t, 1, resolvent.Size())
}
