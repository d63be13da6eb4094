package rewrite

import (
	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/variable"
)

// auxFor returns the auxiliary variable literal for eid, allocating one
// via vars.NewAux() on first use and remembering it in a.AuxCache() for
// every later call over the same arena. Spec §9 open question (a)
// settles that auxiliaries are shared across formulas in the same
// arena: two independent Tseitin/PlaistedGreenbaum/DistributiveThreshold
// calls that both reach the same hash-consed subexpression reuse one
// auxiliary rather than each minting its own, even though every call
// still emits its own copy of the defining clauses for whatever
// direction(s) it needs.
func auxFor(a *arena.Arena, vars *variable.Table, eid int) int {
	cache := a.AuxCache()
	if v, ok := cache[eid]; ok {
		return v
	}
	v := a.Var(vars.NewAux())
	cache[eid] = v
	return v
}
