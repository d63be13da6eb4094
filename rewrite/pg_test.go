package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/variable"
)

func TestPlaistedGreenbaumResultIsCNFShaped(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	z := a.Var(vars.InternNamed("z"))

	root := a.Or(a.And(x, y), z)
	nnf := rewrite.NNF(a, root)
	result := rewrite.PlaistedGreenbaum(a, vars, nnf)

	got := a.Get(result)
	assert.Equal(t, arena.KindAnd, got.Kind)
	for _, c := range got.Children {
		assertIsClause(t, a, c)
	}
}

// A root occurs only positively (it is asserted true), so an And directly
// under the root gets only its "x implies each conjunct" clauses, not the
// reverse ("each conjunct implies x") direction that full Tseitin would add.
func TestPlaistedGreenbaumOmitsUnneededDirectionForPositiveAnd(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))

	root := a.And(x, y)
	result := rewrite.PlaistedGreenbaum(a, vars, root)
	got := a.Get(result)
	assert.Equal(t, arena.KindAnd, got.Kind)

	// Full Tseitin on the same root would emit 4 clauses: the root unit
	// clause, two "aux -> conjunct" clauses, and one "conjuncts -> aux"
	// clause. Positive-only polarity drops the last one.
	assert.Len(t, got.Children, 3)
}

// A root occurring only negatively (its negation is asserted) is the
// Or-under-negative-context case: the "x -> some disjunct" direction is
// dropped since nothing downstream ever needs x to imply its disjuncts.
func TestPlaistedGreenbaumOmitsUnneededDirectionForNegativeOr(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))

	// ¬(x | y), given as is rather than pushed to NNF, puts the Or in
	// negative-only occurrence under the root's Not.
	root := a.Not(a.Or(x, y))
	result := rewrite.PlaistedGreenbaum(a, vars, root)
	got := a.Get(result)
	assert.Equal(t, arena.KindAnd, got.Kind)

	// Full Tseitin would emit 4 clauses: the root unit clause ¬aux, two
	// "disjunct -> aux" clauses, and one "aux -> some disjunct" clause.
	// Negative-only polarity drops the last one.
	assert.Len(t, got.Children, 3)
	for _, c := range got.Children {
		assertIsClause(t, a, c)
	}
}

func TestPlaistedGreenbaumEmitsBothDirectionsWhenBothPolaritiesOccur(t *testing.T) {
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	z := a.Var(vars.InternNamed("z"))

	shared := a.And(x, y)
	// shared occurs positively as the left Or-arm and negatively inside the
	// right arm, under its Not (the root is given as is, not pushed to NNF).
	root := a.Or(shared, a.Not(a.Or(shared, z)))
	result := rewrite.PlaistedGreenbaum(a, vars, root)

	got := a.Get(result)
	assert.Equal(t, arena.KindAnd, got.Kind)
	for _, c := range got.Children {
		assertIsClause(t, a, c)
	}

	// shared's auxiliary gets both the "aux -> conjunct" and the
	// "conjuncts -> aux" clauses.
	s := a.AuxCache()[shared]
	assert.Contains(t, got.Children, a.Or(a.Not(s), x))
	assert.Contains(t, got.Children, a.Or(s, a.Not(x), a.Not(y)))
}
