package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientEquationSoundness(t *testing.T) {
	lpo := newTestLPO()
	a := MakeConst("a")
	fa := MakeApp("f", []*Term{a})

	rule, ok := OrientEquation(NewEquation(fa, a, "e1"), lpo)
	require.True(t, ok)
	assert.True(t, lpo.Greater(rule.Lhs(), rule.Rhs()))
}

func TestOrientEquationEquivalentFails(t *testing.T) {
	lpo := newTestLPO()
	a := MakeConst("a")
	_, ok := OrientEquation(NewEquation(a, a, "e1"), lpo)
	assert.False(t, ok)
}

func TestNormalFormIdempotence(t *testing.T) {
	lpo := newTestLPO()
	a := MakeConst("a")
	fa := MakeApp("f", []*Term{a})
	ffa := MakeApp("f", []*Term{fa})

	rs := NewRewriteSystem()
	rule, ok := OrientEquation(NewEquation(fa, a, "e1"), lpo)
	require.True(t, ok)
	rs.AddRule(rule)

	once := rs.Normalize(ffa, defaultNormalizeSteps)
	twice := rs.Normalize(once, defaultNormalizeSteps)
	assert.True(t, once.Equal(twice))
	assert.True(t, rs.IsNormalForm(once))
}

func TestRewriteStepAppliesAtSubposition(t *testing.T) {
	lpo := newTestLPO()
	a := MakeConst("a")
	fa := MakeApp("f", []*Term{a})
	rule, ok := OrientEquation(NewEquation(fa, a, "e1"), lpo)
	require.True(t, ok)

	rs := NewRewriteSystem()
	rs.AddRule(rule)

	target := MakeApp("g", []*Term{fa})
	result := rs.RewriteStep(target)
	require.True(t, result.Success)
	assert.True(t, result.Result.Equal(MakeApp("g", []*Term{a})))
}

func TestJoinable(t *testing.T) {
	lpo := newTestLPO()
	a := MakeConst("a")
	fa := MakeApp("f", []*Term{a})
	rule, ok := OrientEquation(NewEquation(fa, a, "e1"), lpo)
	require.True(t, ok)

	rs := NewRewriteSystem()
	rs.AddRule(rule)
	assert.True(t, rs.Joinable(fa, a, defaultNormalizeSteps))
}

func TestAddRuleRejectsDuplicate(t *testing.T) {
	a := MakeConst("a")
	fa := MakeApp("f", []*Term{a})
	rule := NewRewriteRule(fa, a, "e1")

	rs := NewRewriteSystem()
	assert.True(t, rs.AddRule(rule))
	assert.False(t, rs.AddRule(NewRewriteRule(fa, a, "e2")))
}
