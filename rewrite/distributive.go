package rewrite

import "github.com/boolforge/cnfkit/arena"

// Distributive applies the total distributive CNF expansion of spec
// §4.4.2, assuming root is already in NNF. It may blow up exponentially;
// there is no guard here — see DistributiveThreshold for the bounded
// variant. Equivalent to the original.
func Distributive(a *arena.Arena, root int) int {
	memo := make(map[int]int)
	var rec func(eid int) int
	rec = func(eid int) int {
		if v, ok := memo[eid]; ok {
			return v
		}
		e := a.Get(eid)
		var result int
		switch e.Kind {
		case arena.KindVar, arena.KindNot:
			result = eid
		case arena.KindAnd:
			all := make([]int, 0, len(e.Children))
			for _, c := range e.Children {
				all = append(all, clauseList(a, rec(c))...)
			}
			result = a.And(all...)
		case arena.KindOr:
			sets := make([][]int, len(e.Children))
			for i, c := range e.Children {
				sets[i] = clauseList(a, rec(c))
			}
			result = a.And(cartesian(a, sets)...)
		}
		memo[eid] = result
		return result
	}
	return rec(root)
}

// clauseList returns the clauses of a CNF-shaped node: the children of an
// And (an empty slice for the constant true), or a single-element slice
// wrapping the node itself (covers a bare Or-of-literals, a single
// literal, or the constant false).
func clauseList(a *arena.Arena, cnfRoot int) []int {
	e := a.Get(cnfRoot)
	if e.Kind == arena.KindAnd {
		return e.Children
	}
	return []int{cnfRoot}
}

// cartesian computes the Cartesian product of per-child clause sets and
// returns the resulting Or(flatten(...)) clauses — the rewrite rule of
// spec §4.4.2. A factor with zero clauses (its child is the constant
// true) makes the whole product empty, which is the mathematically
// correct outcome: one unconditionally-true disjunct makes the entire Or
// unconditionally true, i.e. the empty conjunction.
func cartesian(a *arena.Arena, sets [][]int) []int {
	combos := [][]int{{}}
	for _, set := range sets {
		if len(set) == 0 {
			return nil
		}
		next := make([][]int, 0, len(combos)*len(set))
		for _, combo := range combos {
			for _, lit := range set {
				nc := make([]int, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = lit
				next = append(next, nc)
			}
		}
		combos = next
	}
	result := make([]int, 0, len(combos))
	for _, combo := range combos {
		result = append(result, a.Or(combo...))
	}
	return result
}
