package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkolemManagerNextSkolemNameAdvancesCounter(t *testing.T) {
	m := NewSkolemManager()
	assert.Equal(t, "sk0", m.NextSkolemName())
	assert.Equal(t, "sk1", m.NextSkolemName())
}

func TestSkolemManagerCreateSkolemFunctionConstant(t *testing.T) {
	m := NewSkolemManager()
	term := m.CreateSkolemFunction(nil)
	require.Equal(t, KindConst, term.Kind())
	assert.Equal(t, "sk0", term.Symbol())
}

func TestSkolemManagerCreateSkolemFunctionOfUniversals(t *testing.T) {
	m := NewSkolemManager()
	term := m.CreateSkolemFunction([]int{0, 1})
	require.Equal(t, KindApp, term.Kind())
	assert.Equal(t, "sk0", term.Symbol())
	require.Len(t, term.Args(), 2)
	assert.Equal(t, 0, term.Args()[0].Index())
	assert.Equal(t, 1, term.Args()[1].Index())
}

func TestSkolemManagerSharesNamespaceAcrossCalls(t *testing.T) {
	m := NewSkolemManager()
	first := m.CreateSkolemFunction(nil)
	second := m.CreateSkolemFunction([]int{0})
	assert.NotEqual(t, first.Symbol(), second.Symbol())
}
