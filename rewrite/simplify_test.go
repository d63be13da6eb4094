package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/variable"
)

func TestSimplifyDedupsRepeatedChild(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))

	// The arena's Not already collapses Not(Not x) to x on construction,
	// and its And keeps repeated children, so root holds x twice until
	// Simplify dedups it.
	root := a.And(x, y, a.Not(a.Not(x)))
	result := rewrite.Simplify(a, root)
	assert.Equal(t, a.And(x, y), result)
}

func TestSimplifyFalseAbsorbsAnd(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	root := a.And(x, a.False())
	assert.Equal(t, a.False(), rewrite.Simplify(a, root))
}

func TestSimplifyTrueAbsorbsOr(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	root := a.Or(x, a.True())
	assert.Equal(t, a.True(), rewrite.Simplify(a, root))
}

func TestSimplifyDropsIdentityChildren(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	root := a.And(x, y, a.True())
	assert.Equal(t, a.And(x, y), rewrite.Simplify(a, root))
}

func TestSimplifyEliminatesDoubleNegation(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	assert.Equal(t, x, rewrite.Simplify(a, a.Not(a.Not(x))))
}

func TestSimplifyIsIdempotent(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	root := a.Or(a.And(x, y, a.True()), a.Not(a.Not(x)))

	once := rewrite.Simplify(a, root)
	twice := rewrite.Simplify(a, once)
	assert.Equal(t, once, twice)
}
