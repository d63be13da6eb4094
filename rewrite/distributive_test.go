package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/variable"
)

// assertIsCNF fails unless root is an And of Ors of literals, or a
// degenerate single clause/literal (spec §4.5).
func assertIsCNF(t *testing.T, a *arena.Arena, root int) {
	t.Helper()
	e := a.Get(root)
	if e.Kind == arena.KindAnd {
		for _, c := range e.Children {
			assertIsClause(t, a, c)
		}
		return
	}
	assertIsClause(t, a, root)
}

func assertIsClause(t *testing.T, a *arena.Arena, cid int) {
	t.Helper()
	e := a.Get(cid)
	if e.Kind == arena.KindOr {
		for _, l := range e.Children {
			assert.True(t, a.IsLiteral(l), "clause child %d is not a literal", l)
		}
		return
	}
	assert.True(t, a.IsLiteral(cid), "bare clause %d is not a literal", cid)
}

func TestDistributiveOverOrOfAnds(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	z := a.Var(vars.InternNamed("z"))
	w := a.Var(vars.InternNamed("w"))

	// (x & y) | (z & w) -> (x|z) & (x|w) & (y|z) & (y|w)
	root := a.Or(a.And(x, y), a.And(z, w))
	result := rewrite.Distributive(a, root)
	assertIsCNF(t, a, result)

	got := a.Get(result)
	assert.Equal(t, arena.KindAnd, got.Kind)
	assert.Len(t, got.Children, 4)
}

func TestDistributiveOnAlreadyCNF(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))

	clause := a.Or(x, a.Not(y))
	root := a.And(clause)
	result := rewrite.Distributive(a, root)
	assertIsCNF(t, a, result)
}

func TestDistributiveConstantTrueDisjunctCollapses(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))

	// x | true -> true, regardless of distributive expansion
	root := a.Or(x, a.True())
	result := rewrite.Distributive(a, root)
	assert.Equal(t, a.True(), result)
}
