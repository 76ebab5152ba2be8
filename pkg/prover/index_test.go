package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralIndexConsistency(t *testing.T) {
	p := px("p", MakeConst("a"))
	q := px("q", MakeConst("b"))

	c1 := NewClause([]Literal{NewLiteral(p, true)})
	c2 := NewClause([]Literal{NewLiteral(p, false), NewLiteral(q, true)})

	idx := newLiteralIndex()
	idx.insertClause(c1)
	idx.insertClause(c2)

	// Querying with a negative p literal should find c1 (the only clause
	// with a positive p literal).
	candidates := idx.getResolutionCandidates(NewLiteral(p, false))
	assert.Contains(t, candidates, c1)
	assert.NotContains(t, candidates, c2)

	// Querying with a negative q literal should find c2.
	candidates = idx.getResolutionCandidates(NewLiteral(q, false))
	assert.Contains(t, candidates, c2)
}

func TestLiteralIndexRemoveClause(t *testing.T) {
	p := px("p", MakeConst("a"))
	c := NewClause([]Literal{NewLiteral(p, true)})

	idx := newLiteralIndex()
	idx.insertClause(c)
	idx.removeClause(c)

	candidates := idx.getResolutionCandidates(NewLiteral(p, false))
	assert.NotContains(t, candidates, c)
}
