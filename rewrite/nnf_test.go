package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/variable"
)

func TestNNFPushesNegationToLiterals(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))

	notAnd := a.Not(a.And(x, y)) // ¬(x ∧ y)
	result := rewrite.NNF(a, notAnd)

	assertIsNNF(t, a, result)
	assert.Equal(t, a.Or(a.Not(x), a.Not(y)), result)
}

func TestNNFDoubleNegationCollapses(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	result := rewrite.NNF(a, a.Not(a.Not(x)))
	assert.Equal(t, x, result)
}

func TestNNFIsIdempotent(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	root := a.Not(a.Or(x, a.Not(y)))

	once := rewrite.NNF(a, root)
	twice := rewrite.NNF(a, once)
	assert.Equal(t, once, twice)
}

// assertIsNNF walks result and fails if any Not wraps a non-Var.
func assertIsNNF(t *testing.T, a *arena.Arena, root int) {
	t.Helper()
	var walk func(eid int)
	seen := make(map[int]bool)
	walk = func(eid int) {
		if seen[eid] {
			return
		}
		seen[eid] = true
		e := a.Get(eid)
		if e.Kind == arena.KindNot {
			assert.Equal(t, arena.KindVar, a.Get(e.Child).Kind, "Not must wrap a Var in NNF")
			return
		}
		for _, c := range a.Children(eid) {
			walk(c)
		}
	}
	walk(root)
}
