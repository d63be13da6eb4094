package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/clause"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/variable"
)

func TestClauseCountsCanonicalizesLiteralOrder(t *testing.T) {
	// [1,2] and [2,1] are the same clause once literals are sorted.
	ca := &clause.Set{Clauses: []clause.Clause{{1, 2}}}
	cb := &clause.Set{Clauses: []clause.Clause{{2, 1}}}

	c := clauseCounts(ca, cb)
	assert.Equal(t, Counts{Common: 1, Removed: 0, Added: 0}, c)
}

func TestClauseCountsDistinguishesRemovedAndAdded(t *testing.T) {
	ca := &clause.Set{Clauses: []clause.Clause{{1, 2}, {3}}}
	cb := &clause.Set{Clauses: []clause.Clause{{1, 2}, {-3}}}

	c := clauseCounts(ca, cb)
	assert.Equal(t, Counts{Common: 1, Removed: 1, Added: 1}, c)
}

func TestClauseCountsDedupesRepeatedClauses(t *testing.T) {
	// The same clause appearing twice in one side still counts once,
	// since clauseCounts compares sets, not multisets.
	ca := &clause.Set{Clauses: []clause.Clause{{1}, {1}}}
	cb := &clause.Set{Clauses: []clause.Clause{{1}}}

	c := clauseCounts(ca, cb)
	assert.Equal(t, Counts{Common: 1, Removed: 0, Added: 0}, c)
}

// TestReconcileInjectsDeadVariablesIntoBothSides builds two formulas over
// one shared arena/variable table whose Natural sets were snapshotted at
// different times (formula.New captures vars.Named() as of construction),
// matching how the shell loads formulas into a session's single arena one
// after another. x is named before a is built, y only after, so a's
// Natural set lacks y and b's lacks nothing of a's until reconcile runs.
func TestReconcileInjectsDeadVariablesIntoBothSides(t *testing.T) {
	vars := variable.New()
	ar := arena.New(vars)
	x := vars.InternNamed("x")

	a := formula.New(ar, vars, ar.Var(x))

	y := vars.InternNamed("y")
	b := formula.New(ar, vars, ar.Var(y))

	// b was built after y was interned, so b.Natural already has both
	// x and y (formula.New snapshots every named variable in the whole
	// table, not just the ones reachable from root); a.Natural lacks y.
	assert.False(t, a.Natural[y], "a's snapshot predates y's interning")
	assert.True(t, b.Natural[y])

	reconcile(a, b)

	assert.True(t, a.Natural[y], "reconcile injects y into a as a dead variable")
	assert.True(t, a.Natural[x] && b.Natural[x])
}
