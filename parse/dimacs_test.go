package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/clause"
	"github.com/boolforge/cnfkit/parse"
)

func TestDIMACSParsesClausesIntoAndOfOrs(t *testing.T) {
	src := "c a comment\np cnf 2 2\n1 -2 0\n2 0\n"
	f, err := parse.DIMACS(strings.NewReader(src), "t.cnf", nil)
	require.NoError(t, err)

	got := f.Arena.Get(f.Root)
	assert.Equal(t, arena.KindAnd, got.Kind)
	assert.Len(t, got.Children, 2)

	cs, err := clause.Materialize(f.Arena, f.Vars, f.Root)
	require.NoError(t, err)
	assert.Equal(t, clause.Clause{clause.Literal(1), clause.Literal(-2)}, cs.Clauses[0])
}

func TestDIMACSClauseMaySpanMultipleLines(t *testing.T) {
	src := "p cnf 2 1\n1\n-2 0\n"
	f, err := parse.DIMACS(strings.NewReader(src), "t.cnf", nil)
	require.NoError(t, err)

	got := f.Arena.Get(f.Root)
	assert.Equal(t, arena.KindOr, got.Kind)
}

func TestDIMACSRepeatedVariableNumberResolvesToSameVid(t *testing.T) {
	src := "p cnf 2 2\n1 2 0\n-1 2 0\n"
	f, err := parse.DIMACS(strings.NewReader(src), "t.cnf", nil)
	require.NoError(t, err)

	vid1, ok := f.Vars.LookupNamed("v1")
	require.True(t, ok)

	clauses := f.Arena.Children(f.Root)
	firstClauseLits := f.Arena.Children(clauses[0])
	secondClauseLits := f.Arena.Children(clauses[1])
	assert.Equal(t, f.Arena.Var(vid1), firstClauseLits[0])
	assert.Equal(t, f.Arena.Not(f.Arena.Var(vid1)), secondClauseLits[0])
}

func TestDIMACSMissingHeaderErrors(t *testing.T) {
	_, err := parse.DIMACS(strings.NewReader("1 2 0\n"), "t.cnf", nil)
	require.Error(t, err)
}

func TestDIMACSUnterminatedClauseErrors(t *testing.T) {
	_, err := parse.DIMACS(strings.NewReader("p cnf 1 1\n1\n"), "t.cnf", nil)
	require.Error(t, err)
}
