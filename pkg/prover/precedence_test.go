package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecedenceTransitiveClosure(t *testing.T) {
	p := NewPrecedence()
	p.SetGreater("f", "g")
	p.SetGreater("g", "h")

	assert.True(t, p.Greater("f", "g"))
	assert.True(t, p.Greater("g", "h"))
	assert.True(t, p.Greater("f", "h"), "transitive closure should derive f > h")
	assert.False(t, p.Greater("h", "f"))
}

func TestPrecedenceCacheInvalidatedOnNewEdge(t *testing.T) {
	p := NewPrecedence()
	p.SetGreater("f", "g")
	assert.False(t, p.Greater("f", "h"))

	p.SetGreater("g", "h")
	assert.True(t, p.Greater("f", "h"), "adding an edge should invalidate any cached negative result")
}

func TestPrecedenceTotalGreaterFallsBackToLexicographic(t *testing.T) {
	p := NewPrecedence()
	// No explicit edge between "x" and "y": TotalGreater must still decide.
	assert.True(t, p.TotalGreater("y", "x"))
	assert.False(t, p.TotalGreater("x", "y"))
}

func TestPrecedenceTotalGreaterPrefersExplicitEdgeOverLexicographic(t *testing.T) {
	p := NewPrecedence()
	// Lexicographically "a" < "z", but an explicit edge reverses it.
	p.SetGreater("a", "z")
	assert.True(t, p.TotalGreater("a", "z"))
	assert.False(t, p.TotalGreater("z", "a"))
}

func TestPrecedenceIrreflexive(t *testing.T) {
	p := NewPrecedence()
	p.SetGreater("f", "f")
	assert.False(t, p.Greater("f", "f"))
	assert.False(t, p.TotalGreater("f", "f"))
}
