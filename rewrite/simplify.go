package rewrite

import "github.com/boolforge/cnfkit/arena"

// Simplify applies the local rewrites of spec §4.4.6: flatten associative
// children (handled automatically by the arena's And/Or constructors),
// dedup (idempotency), remove And(...,false,...) -> false and
// Or(...,true,...) -> true, collapse unit And/Or to their child, and
// eliminate double negation. Repeated Simplify converges (spec §8
// Idempotence).
func Simplify(a *arena.Arena, root int) int {
	trueE, falseE := a.True(), a.False()
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
			result = a.Not(rec(e.Child))
		case arena.KindAnd:
			result = simplifyNary(a, e.Children, rec, falseE, trueE, true)
		case arena.KindOr:
			result = simplifyNary(a, e.Children, rec, trueE, falseE, false)
		}
		memo[eid] = result
		return result
	}
	return rec(root)
}

// simplifyNary dedups the (recursively simplified) children of an And/Or
// node, collapsing to absorbEid if any child equals it (false absorbs an
// And, true absorbs an Or) and dropping any child equal to identityEid
// (true is a no-op And child, false is a no-op Or child).
func simplifyNary(a *arena.Arena, children []int, rec func(int) int, absorbEid, identityEid int, isAnd bool) int {
	seen := make(map[int]bool, len(children))
	kids := make([]int, 0, len(children))
	for _, c := range children {
		sc := rec(c)
		if sc == absorbEid {
			return absorbEid
		}
		if sc == identityEid {
			continue
		}
		if !seen[sc] {
			seen[sc] = true
			kids = append(kids, sc)
		}
	}
	if isAnd {
		return a.And(kids...)
	}
	return a.Or(kids...)
}
