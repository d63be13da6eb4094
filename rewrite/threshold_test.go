package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/variable"
)

func TestDistributiveThresholdBelowBudgetMatchesFullDistributive(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	z := a.Var(vars.InternNamed("z"))
	w := a.Var(vars.InternNamed("w"))

	root := a.Or(a.And(x, y), a.And(z, w))
	opts := rewrite.Options{MaxBlowup: rewrite.DefaultMaxBlowup}

	got := rewrite.DistributiveThreshold(a, vars, root, opts)
	want := rewrite.Distributive(a, root)
	assert.Equal(t, want, got)
}

// With a MaxBlowup of 1, any Or with more than one non-trivial clause per
// child must be abbreviated via Tseitin instead of expanded, so the result
// stays CNF-shaped but introduces an auxiliary rather than blowing up.
func TestDistributiveThresholdAbbreviatesPastBudget(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	z := a.Var(vars.InternNamed("z"))
	w := a.Var(vars.InternNamed("w"))

	root := a.Or(a.And(x, y), a.And(z, w))
	before := a.Len()
	opts := rewrite.Options{MaxBlowup: 1}
	result := rewrite.DistributiveThreshold(a, vars, root, opts)
	after := a.Len()

	assertIsCNF(t, a, result)
	assert.Greater(t, after, before, "abbreviation must allocate a fresh auxiliary variable/expression")
}

func TestDistributiveThresholdOnAlreadyCNFIsUnchangedInShape(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))

	root := a.And(a.Or(x, a.Not(y)), a.Or(y))
	opts := rewrite.Options{MaxBlowup: rewrite.DefaultMaxBlowup}
	result := rewrite.DistributiveThreshold(a, vars, root, opts)
	assertIsCNF(t, a, result)
}

func TestDistributiveThresholdZeroMaxBlowupFallsBackToDefault(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	z := a.Var(vars.InternNamed("z"))
	w := a.Var(vars.InternNamed("w"))

	root := a.Or(a.And(x, y), a.And(z, w))
	withZero := rewrite.DistributiveThreshold(a, vars, root, rewrite.Options{})
	withDefault := rewrite.DistributiveThreshold(a, vars, root, rewrite.Options{MaxBlowup: rewrite.DefaultMaxBlowup})
	assert.Equal(t, withDefault, withZero)
}
