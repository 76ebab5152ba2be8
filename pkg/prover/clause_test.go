package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(name string, args ...*Term) *Term {
	if len(args) == 0 {
		return MakeConst(name)
	}
	return MakeApp(name, args)
}

func TestClauseHashOrderIndependence(t *testing.T) {
	p := px("p", MakeVar(0))
	q := px("q", MakeVar(1))

	c1 := NewClause([]Literal{NewLiteral(p, true), NewLiteral(q, false)})
	c2 := NewClause([]Literal{NewLiteral(q, false), NewLiteral(p, true)})

	assert.Equal(t, c1.Hash(), c2.Hash())
	assert.True(t, c1.Equal(c2))
}

func TestClauseIsTautology(t *testing.T) {
	p := px("p", MakeVar(0))
	tautology := NewClause([]Literal{NewLiteral(p, true), NewLiteral(p, false)})
	assert.True(t, tautology.IsTautology())

	nonTautology := NewClause([]Literal{NewLiteral(p, true)})
	assert.False(t, nonTautology.IsTautology())
}

func TestClauseSimplifyRemovesDuplicates(t *testing.T) {
	p := px("p", MakeConst("a"))
	c := NewClause([]Literal{NewLiteral(p, true), NewLiteral(p, true)})
	simplified := c.Simplify()
	assert.Equal(t, 1, simplified.Size())
}

func TestClauseSubsumptionSoundness(t *testing.T) {
	// C = P(X) subsumes D = P(a) ∨ Q(b): sigma = {X -> a}.
	x := MakeVar(0)
	p := px("p", x)
	c := NewClause([]Literal{NewLiteral(p, true)})

	pa := px("p", MakeConst("a"))
	qb := px("q", MakeConst("b"))
	d := NewClause([]Literal{NewLiteral(pa, true), NewLiteral(qb, true)})

	assert.True(t, c.Subsumes(d))
}

func TestClauseSubsumptionRequiresPolarityMatch(t *testing.T) {
	x := MakeVar(0)
	p := px("p", x)
	c := NewClause([]Literal{NewLiteral(p, true)})

	pa := px("p", MakeConst("a"))
	d := NewClause([]Literal{NewLiteral(pa, false)})

	assert.False(t, c.Subsumes(d))
}

func TestClauseSubsumptionRequiresGloballyConsistentSubstitution(t *testing.T) {
	// C = P(X, X) should not subsume D = P(a, b): no single substitution
	// for X can make both positions match simultaneously.
	x := MakeVar(0)
	p := px("p", x, x)
	c := NewClause([]Literal{NewLiteral(p, true)})

	d := NewClause([]Literal{NewLiteral(px("p", MakeConst("a"), MakeConst("b")), true)})
	assert.False(t, c.Subsumes(d))
}

func TestEmptyClauseSubsumesEverything(t *testing.T) {
	empty := EmptyClause()
	other := NewClause([]Literal{NewLiteral(px("p"), true)})
	assert.True(t, empty.Subsumes(other))
	assert.True(t, empty.IsEmpty())
}

func TestAreVariants(t *testing.T) {
	x := MakeVar(0)
	y := MakeVar(1)
	c1 := NewClause([]Literal{NewLiteral(px("p", x), true)})
	c2 := NewClause([]Literal{NewLiteral(px("p", y), true)})
	require.True(t, AreVariants(c1, c2))
}
