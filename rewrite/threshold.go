package rewrite

import "github.com/boolforge/cnfkit/variable"
import "github.com/boolforge/cnfkit/arena"

// DistributiveThreshold applies the partial distributive rewrite of spec
// §4.4.5: like Distributive, but before expanding an Or node's children
// into a Cartesian product it estimates the product size, and once that
// estimate exceeds opts.MaxBlowup it abbreviates the node with a Tseitin
// definition instead of expanding it. The result is CNF-shaped overall,
// but quasi-equivalent rather than equivalent whenever at least one node
// was abbreviated (same caveat as Tseitin). Assumes root is in NNF.
func DistributiveThreshold(a *arena.Arena, vars *variable.Table, root int, opts Options) int {
	maxBlowup := opts.MaxBlowup
	if maxBlowup <= 0 {
		maxBlowup = DefaultMaxBlowup
	}

	var extra []int
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
			blowup := 1
			for i, c := range e.Children {
				sets[i] = clauseList(a, rec(c))
				n := len(sets[i])
				if n == 0 {
					n = 1
				}
				blowup *= n
			}
			if blowup > maxBlowup {
				lit, defs := tseitinDefine(a, vars, eid)
				extra = append(extra, defs...)
				result = lit
			} else {
				result = a.And(cartesian(a, sets)...)
			}
		}
		memo[eid] = result
		return result
	}

	body := rec(root)
	all := make([]int, 0, len(extra)+1)
	if e := a.Get(body); e.Kind == arena.KindAnd {
		all = append(all, e.Children...)
	} else {
		all = append(all, a.Or(body))
	}
	all = append(all, extra...)
	return a.And(all...)
}
