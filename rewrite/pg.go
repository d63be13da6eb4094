package rewrite

import "github.com/boolforge/cnfkit/variable"
import "github.com/boolforge/cnfkit/arena"

const (
	polPos = 1 << iota
	polNeg
)

// PlaistedGreenbaum applies the polarity-restricted Tseitin transform of
// spec §4.4.4: a subexpression that occurs only positively gets only the
// "x implies subexpression" defining clauses, one occurring only
// negatively gets only the reverse, and one occurring in both polarities
// gets the full Tseitin pair. Unlike Tseitin it is not quasi-equivalent:
// the result is equi-satisfiable (equi-assignable) but not equi-countable,
// since a partially-defined auxiliary can take either truth value in
// models where its subexpression's value doesn't otherwise constrain it (spec
// §9 open question (b): this implementation is unapologetically
// polarity-minimal, not padded back to equi-countable).
func PlaistedGreenbaum(a *arena.Arena, vars *variable.Table, root int) int {
	pol := make(map[int]int)
	markPolarity(a, root, polPos, pol)

	memo := make(map[int]int)
	var defs []int
	var lit func(eid int) int
	lit = func(eid int) int {
		if v, ok := memo[eid]; ok {
			return v
		}
		e := a.Get(eid)
		var result int
		switch e.Kind {
		case arena.KindVar:
			result = eid
		case arena.KindNot:
			result = a.Not(lit(e.Child))
		case arena.KindAnd:
			childLits := mapLits(e.Children, lit)
			x := auxFor(a, vars, eid)
			p := pol[eid]
			if p&polPos != 0 {
				for _, cl := range childLits {
					defs = append(defs, a.Or(a.Not(x), cl))
				}
			}
			if p&polNeg != 0 {
				defs = append(defs, a.Or(append([]int{x}, negateAll(a, childLits)...)...))
			}
			result = x
		case arena.KindOr:
			childLits := mapLits(e.Children, lit)
			x := auxFor(a, vars, eid)
			p := pol[eid]
			if p&polNeg != 0 {
				for _, cl := range childLits {
					defs = append(defs, a.Or(x, a.Not(cl)))
				}
			}
			if p&polPos != 0 {
				defs = append(defs, a.Or(append([]int{a.Not(x)}, childLits...)...))
			}
			result = x
		}
		memo[eid] = result
		return result
	}

	rootLit := lit(root)
	clauses := make([]int, 0, len(defs)+1)
	clauses = append(clauses, a.Or(rootLit))
	clauses = append(clauses, defs...)
	return a.And(clauses...)
}

// markPolarity records, for every non-literal subexpression reachable
// from root, the set of polarities (positive, negative, or both) under
// which it occurs. And/Or are polarity-monotone; Not flips it. Revisits
// a node only when a previously-unseen polarity is newly reached, so
// cost stays bounded by edges times two, not exponential in sharing.
func markPolarity(a *arena.Arena, eid int, p int, pol map[int]int) {
	e := a.Get(eid)
	if e.Kind == arena.KindVar {
		return
	}
	if pol[eid]&p == p {
		return
	}
	pol[eid] |= p
	switch e.Kind {
	case arena.KindNot:
		markPolarity(a, e.Child, flipPol(p), pol)
	case arena.KindAnd, arena.KindOr:
		for _, c := range e.Children {
			markPolarity(a, c, p, pol)
		}
	}
}

func flipPol(p int) int {
	out := 0
	if p&polPos != 0 {
		out |= polNeg
	}
	if p&polNeg != 0 {
		out |= polPos
	}
	return out
}
