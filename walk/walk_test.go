package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/variable"
	"github.com/boolforge/cnfkit/walk"
)

func buildShared(t *testing.T) (*arena.Arena, int) {
	t.Helper()
	vars := variable.New()
	a := arena.New(vars)
	x := a.Var(vars.InternNamed("x"))
	y := a.Var(vars.InternNamed("y"))
	shared := a.And(x, y) // referenced twice below
	root := a.Or(shared, a.Not(shared))
	return a, root
}

func TestPostorderVisitsEachNodeOnce(t *testing.T) {
	a, root := buildShared(t)
	var seen []int
	walk.Postorder(a, root, func(eid int) { seen = append(seen, eid) })

	counts := make(map[int]int)
	for _, id := range seen {
		counts[id]++
	}
	for id, c := range counts {
		assert.Equal(t, 1, c, "eid %d visited more than once", id)
	}
	assert.Equal(t, root, seen[len(seen)-1], "root visits last in postorder")
}

func TestPreorderVisitsRootFirst(t *testing.T) {
	a, root := buildShared(t)
	var seen []int
	walk.Preorder(a, root, func(eid int) bool {
		seen = append(seen, eid)
		return true
	})
	assert.Equal(t, root, seen[0])
}

func TestPreorderPruning(t *testing.T) {
	a, root := buildShared(t)
	var seen []int
	walk.Preorder(a, root, func(eid int) bool {
		seen = append(seen, eid)
		return false // prune everything below root
	})
	assert.Equal(t, []int{root}, seen)
}

func TestPrePostorderBracketsEachNode(t *testing.T) {
	a, root := buildShared(t)
	entered := make(map[int]bool)
	exited := make(map[int]bool)
	walk.PrePostorder(a, root,
		func(eid int) {
			assert.False(t, exited[eid], "entered after exit for %d", eid)
			entered[eid] = true
		},
		func(eid int) {
			assert.True(t, entered[eid])
			exited[eid] = true
		},
	)
	assert.Equal(t, entered, exited)
}
