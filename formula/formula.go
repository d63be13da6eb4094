// Package formula ties together an arena, a variable table, and a root
// expression into the single handle the rest of the engine operates on
// (spec §4.6). Two formulas can share an arena (and hence share
// structure and auxiliary variables) to support the diff engine.
package formula

import (
	"sort"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/variable"
)

// Formula is a named root expression over a shared arena/variable table.
type Formula struct {
	Arena   *arena.Arena
	Vars    *variable.Table
	Root    int
	Natural map[int]bool // variable ids that are "natural" to this formula, not auxiliary bookkeeping
}

// New builds a Formula from an arena already populated by a parser.
func New(a *arena.Arena, vars *variable.Table, root int) *Formula {
	natural := make(map[int]bool)
	for _, v := range vars.Named() {
		natural[v.ID] = true
	}
	return &Formula{Arena: a, Vars: vars, Root: root, Natural: natural}
}

// NaturalList returns the formula's natural (named) variable ids, sorted.
func (f *Formula) NaturalList() []int {
	out := make([]int, 0, len(f.Natural))
	for id := range f.Natural {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// WithRoot returns a new Formula sharing this one's arena and variable
// table but rooted at a different expression — the idiom every rewrite
// pass and the diff engine use to produce a derived formula without
// mutating the original.
func (f *Formula) WithRoot(root int) *Formula {
	return &Formula{Arena: f.Arena, Vars: f.Vars, Root: root, Natural: f.Natural}
}
