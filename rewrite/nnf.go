package rewrite

import "github.com/boolforge/cnfkit/arena"

// NNF pushes Not down to literals (spec §4.4.1). Every Not node in the
// result wraps exactly a Var. Equivalent to the original.
func NNF(a *arena.Arena, root int) int {
	memo := make(map[int]int)
	var rec func(eid int) int
	rec = func(eid int) int {
		if v, ok := memo[eid]; ok {
			return v
		}
		e := a.Get(eid)
		var result int
		switch e.Kind {
		case arena.KindVar:
			result = eid
		case arena.KindNot:
			if a.Get(e.Child).Kind == arena.KindVar {
				result = eid // already a literal, left alone
			} else {
				// Not(Not x) -> x, Not(And xs) -> Or(negated xs), etc.,
				// handled in one step by the arena's own negation rule,
				// then recursed so the result is fully pushed to literals.
				result = rec(a.Negate([]int{e.Child})[0])
			}
		case arena.KindAnd:
			cs := make([]int, len(e.Children))
			for i, c := range e.Children {
				cs[i] = rec(c)
			}
			result = a.And(cs...)
		case arena.KindOr:
			cs := make([]int, len(e.Children))
			for i, c := range e.Children {
				cs[i] = rec(c)
			}
			result = a.Or(cs...)
		}
		memo[eid] = result
		return result
	}
	return rec(root)
}
