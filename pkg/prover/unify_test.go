package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyCorrectness(t *testing.T) {
	t.Run("variable binds to constant", func(t *testing.T) {
		x := MakeVar(0)
		a := MakeConst("a")
		sub, ok := Unify(x, a)
		require.True(t, ok)
		assert.True(t, ApplyFully(x, sub).Equal(ApplyFully(a, sub)))
	})

	t.Run("function applications", func(t *testing.T) {
		left := MakeApp("f", []*Term{MakeVar(0), MakeConst("b")})
		right := MakeApp("f", []*Term{MakeConst("a"), MakeVar(1)})
		sub, ok := Unify(left, right)
		require.True(t, ok)
		assert.True(t, ApplyFully(left, sub).Equal(ApplyFully(right, sub)))
	})

	t.Run("symbol mismatch fails", func(t *testing.T) {
		_, ok := Unify(MakeConst("a"), MakeConst("b"))
		assert.False(t, ok)
	})

	t.Run("arity mismatch fails", func(t *testing.T) {
		left := MakeApp("f", []*Term{MakeVar(0)})
		right := MakeApp("f", []*Term{MakeVar(0), MakeVar(1)})
		_, ok := Unify(left, right)
		assert.False(t, ok)
	})
}

func TestUnifyOccursCheck(t *testing.T) {
	x := MakeVar(0)
	fx := MakeApp("f", []*Term{MakeVar(0)})
	_, ok := Unify(x, fx)
	assert.False(t, ok, "X should not unify with f(X)")
}

func TestMatchLHSOneSided(t *testing.T) {
	pattern := MakeApp("f", []*Term{MakeVar(0)})
	subject := MakeApp("f", []*Term{MakeConst("a")})
	sub, ok := matchLHS(pattern, subject)
	require.True(t, ok)
	assert.True(t, ApplyFully(pattern, sub).Equal(subject))

	// subject's own variables must not bind: matching a variable subject
	// against a constant pattern position fails rather than unifying.
	_, ok = matchLHS(MakeConst("a"), MakeVar(0))
	assert.False(t, ok)
}
