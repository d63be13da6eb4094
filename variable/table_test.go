package variable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boolforge/cnfkit/variable"
)

func TestInternNamedIsIdempotent(t *testing.T) {
	t1 := variable.New()
	id1 := t1.InternNamed("x")
	id2 := t1.InternNamed("x")
	assert.Equal(t, id1, id2)
}

func TestNewAuxAlwaysFresh(t *testing.T) {
	tbl := variable.New()
	a1 := tbl.NewAux()
	a2 := tbl.NewAux()
	assert.NotEqual(t, a1, a2)
}

func TestDenseIdsStartAtOne(t *testing.T) {
	tbl := variable.New()
	assert.Equal(t, 1, tbl.InternNamed("x"))
	assert.Equal(t, 2, tbl.InternNamed("y"))
	assert.Equal(t, 3, tbl.NewAux())
}

func TestDisplay(t *testing.T) {
	tbl := variable.New()
	x := tbl.InternNamed("x")
	aux := tbl.NewAux()
	assert.Equal(t, "x", tbl.Display(x, "_aux_"))
	assert.Equal(t, "_aux_1", tbl.Display(aux, "_aux_"))
}

func TestLookupNamedNoSideEffect(t *testing.T) {
	tbl := variable.New()
	_, ok := tbl.LookupNamed("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Len())
}
