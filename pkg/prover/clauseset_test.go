package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClauseSetAddClauseRejectsTautology(t *testing.T) {
	cs := NewClauseSet(true, true)
	p := px("p", MakeVar(0))
	tautology := NewClause([]Literal{NewLiteral(p, true), NewLiteral(p, false)})
	kept := cs.AddClause(tautology)
	assert.False(t, kept)
	assert.Equal(t, 0, cs.Size())
}

func TestClauseSetAddClauseRejectsDuplicate(t *testing.T) {
	cs := NewClauseSet(true, true)
	p := px("p", MakeConst("a"))
	c1 := NewClause([]Literal{NewLiteral(p, true)})
	c2 := NewClause([]Literal{NewLiteral(p, true)})

	assert.True(t, cs.AddClause(c1))
	assert.False(t, cs.AddClause(c2))
	assert.Equal(t, 1, cs.Size())
}

func TestClauseSetAddClauseAppliesSubsumption(t *testing.T) {
	cs := NewClauseSet(true, true)
	x := MakeVar(0)
	general := NewClause([]Literal{NewLiteral(px("p", x), true)})
	require.True(t, cs.AddClause(general))

	specific := NewClause([]Literal{NewLiteral(px("p", MakeConst("a")), true), NewLiteral(px("q", MakeConst("b")), true)})
	kept := cs.AddClause(specific)
	assert.False(t, kept, "specific clause subsumed by an already-kept general clause should be rejected")
	assert.Equal(t, 1, cs.Size())
}

func TestClauseSetAddClauseRemovesNewlySubsumedClauses(t *testing.T) {
	cs := NewClauseSet(true, true)
	specific := NewClause([]Literal{NewLiteral(px("p", MakeConst("a")), true), NewLiteral(px("q", MakeConst("b")), true)})
	require.True(t, cs.AddClause(specific))

	x := MakeVar(0)
	general := NewClause([]Literal{NewLiteral(px("p", x), true)})
	require.True(t, cs.AddClause(general))

	// The earlier specific clause should have been subsumed away.
	assert.Equal(t, 1, cs.Size())
	assert.Equal(t, general, cs.Clauses()[0])
}

func TestClauseSetSelectClauseFIFO(t *testing.T) {
	cs := NewClauseSet(false, false)
	c1 := NewClause([]Literal{NewLiteral(px("p", MakeConst("a")), true), NewLiteral(px("q", MakeConst("b")), true)})
	c2 := NewClause([]Literal{NewLiteral(px("r", MakeConst("c")), true)})
	cs.AddClause(c1)
	cs.AddClause(c2)

	selected, ok := cs.SelectClause(SelectFIFO)
	require.True(t, ok)
	assert.Equal(t, c1, selected)
}

func TestClauseSetSelectClauseUnitPreference(t *testing.T) {
	cs := NewClauseSet(false, false)
	multi := NewClause([]Literal{NewLiteral(px("p", MakeConst("a")), true), NewLiteral(px("q", MakeConst("b")), true)})
	unit := NewClause([]Literal{NewLiteral(px("r", MakeConst("c")), true)})
	cs.AddClause(multi)
	cs.AddClause(unit)

	selected, ok := cs.SelectClause(SelectUnitPreference)
	require.True(t, ok)
	assert.True(t, selected.IsUnit())
}

func TestClauseSetSelectClauseSmallestFirst(t *testing.T) {
	cs := NewClauseSet(false, false)
	big := NewClause([]Literal{
		NewLiteral(px("p", MakeConst("a")), true),
		NewLiteral(px("q", MakeConst("b")), true),
		NewLiteral(px("r", MakeConst("c")), true),
	})
	small := NewClause([]Literal{NewLiteral(px("s", MakeConst("d")), true)})
	cs.AddClause(big)
	cs.AddClause(small)

	selected, ok := cs.SelectClause(SelectSmallestFirst)
	require.True(t, ok)
	assert.Equal(t, small, selected)
}

func TestClauseSetSelectClauseEmptySetReturnsFalse(t *testing.T) {
	cs := NewClauseSet(false, false)
	_, ok := cs.SelectClause(SelectFIFO)
	assert.False(t, ok)
}

func TestClauseSetClear(t *testing.T) {
	cs := NewClauseSet(false, false)
	cs.AddClause(NewClause([]Literal{NewLiteral(px("p", MakeConst("a")), true)}))
	cs.Clear()
	assert.Equal(t, 0, cs.Size())
	_, ok := cs.SelectClause(SelectFIFO)
	assert.False(t, ok)
}
