package rewrite

import "github.com/boolforge/cnfkit/variable"
import "github.com/boolforge/cnfkit/arena"

// Tseitin applies the total Tseitin transformation of spec §4.4.3: every
// non-literal subexpression gets an auxiliary variable (minted on first
// use, see auxFor) and a defining equivalence. The result is L(root) AND (all definitions) —
// quasi-equivalent (equi-satisfiable, equi-countable once auxiliaries are
// projected out), not equivalent.
//
// Auxiliaries are allocated in postorder of first visit; because the
// definitional cache below is keyed by eid, identical subexpressions
// (shared via the arena) get exactly one auxiliary (spec §4.4.3
// Determinism, and open question (a): auxiliaries are shared across
// formulas in the same arena).
func Tseitin(a *arena.Arena, vars *variable.Table, root int) int {
	lit, defs := tseitinDefine(a, vars, root)
	clauses := make([]int, 0, len(defs)+1)
	clauses = append(clauses, a.Or(lit))
	clauses = append(clauses, defs...)
	return a.And(clauses...)
}

// tseitinDefine computes the defining literal and clauses for root's
// entire subtree, without the unit clause that would force the literal
// true. Shared by Tseitin (which adds that unit clause) and
// DistributiveThreshold's abbreviation step (which embeds the literal
// into a larger formula instead).
func tseitinDefine(a *arena.Arena, vars *variable.Table, root int) (int, []int) {
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
			for _, cl := range childLits {
				defs = append(defs, a.Or(a.Not(x), cl)) // ¬x ∨ L(ci)
			}
			defs = append(defs, a.Or(append([]int{x}, negateAll(a, childLits)...)...)) // x ∨ ¬L(c1) ∨ ...
			result = x
		case arena.KindOr:
			childLits := mapLits(e.Children, lit)
			x := auxFor(a, vars, eid)
			for _, cl := range childLits {
				defs = append(defs, a.Or(x, a.Not(cl))) // x ∨ ¬L(ci)
			}
			defs = append(defs, a.Or(append([]int{a.Not(x)}, childLits...)...)) // ¬x ∨ L(c1) ∨ ...
			result = x
		}
		memo[eid] = result
		return result
	}
	return lit(root), defs
}

// TseitinRoot applies Tseitin at the root node only (spec §9 open
// question (c), settled as "top-strong"): a single auxiliary variable
// defines the root connective in terms of its immediate children,
// embedded by eid exactly as they stand rather than recursively
// literalized. Used by the diff engine's top-strong clause comparison,
// not intended to feed the clause materializer directly unless the
// children already happen to be literals.
func TseitinRoot(a *arena.Arena, vars *variable.Table, root int) int {
	e := a.Get(root)
	if e.Kind == arena.KindVar || e.Kind == arena.KindNot {
		return root
	}
	x := auxFor(a, vars, root)
	var defs []int
	switch e.Kind {
	case arena.KindAnd:
		for _, c := range e.Children {
			defs = append(defs, a.Or(a.Not(x), c))
		}
		defs = append(defs, a.Or(append([]int{x}, a.Negate(e.Children)...)...))
	case arena.KindOr:
		for _, c := range e.Children {
			defs = append(defs, a.Or(x, a.Not(c)))
		}
		defs = append(defs, a.Or(append([]int{a.Not(x)}, e.Children...)...))
	}
	clauses := append([]int{a.Or(x)}, defs...)
	return a.And(clauses...)
}

func mapLits(eids []int, f func(int) int) []int {
	out := make([]int, len(eids))
	for i, e := range eids {
		out[i] = f(e)
	}
	return out
}

func negateAll(a *arena.Arena, eids []int) []int {
	out := make([]int, len(eids))
	for i, e := range eids {
		out[i] = a.Not(e)
	}
	return out
}
