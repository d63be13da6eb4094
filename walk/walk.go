// Package walk implements the traversal engine (spec §4.3): generic
// pre-/post-/pre+post-order DAG walks over an arena, each visiting every
// reachable eid exactly once. Child eids are always allocated strictly
// before their parents, so the arena's reachability graph is acyclic by
// construction — no walk here needs cycle detection.
package walk

import "github.com/boolforge/cnfkit/arena"

// Visitor is called once per visited eid in Preorder. Returning false
// tells the walk not to descend into eid's children.
type Visitor func(eid int) bool

// Postorder visits children before parents. The arena keeps no traversal
// state between calls; a visited set is rebuilt for this walk.
func Postorder(a *arena.Arena, root int, visit func(eid int)) {
	type frame struct {
		eid      int
		childIdx int
	}
	visited := make(map[int]bool)
	pushed := make(map[int]bool)
	stack := []frame{{root, 0}}
	pushed[root] = true
	for len(stack) > 0 {
		i := len(stack) - 1
		f := stack[i]
		children := a.Children(f.eid)
		if f.childIdx < len(children) {
			c := children[f.childIdx]
			stack[i].childIdx++
			if !visited[c] && !pushed[c] {
				pushed[c] = true
				stack = append(stack, frame{c, 0})
			}
			continue
		}
		stack = stack[:i]
		if !visited[f.eid] {
			visited[f.eid] = true
			visit(f.eid)
		}
	}
}

// Preorder visits parents before children. A false return from visit
// prunes eid's subtree from the walk.
func Preorder(a *arena.Arena, root int, visit Visitor) {
	visited := make(map[int]bool)
	var dfs func(eid int)
	dfs = func(eid int) {
		if visited[eid] {
			return
		}
		visited[eid] = true
		if !visit(eid) {
			return
		}
		for _, c := range a.Children(eid) {
			dfs(c)
		}
	}
	dfs(root)
}

// PrePostorder calls enter on first visit to eid (parents before
// children) and exit once all of eid's children have been fully walked
// (children before parents) — a two-pass pattern in one walk.
func PrePostorder(a *arena.Arena, root int, enter, exit func(eid int)) {
	type frame struct {
		eid      int
		childIdx int
	}
	entered := make(map[int]bool)
	done := make(map[int]bool)
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		i := len(stack) - 1
		f := stack[i]
		if !entered[f.eid] {
			entered[f.eid] = true
			enter(f.eid)
		}
		children := a.Children(f.eid)
		if f.childIdx < len(children) {
			c := children[f.childIdx]
			stack[i].childIdx++
			if !done[c] && !entered[c] {
				stack = append(stack, frame{c, 0})
			}
			continue
		}
		stack = stack[:i]
		if !done[f.eid] {
			done[f.eid] = true
			exit(f.eid)
		}
	}
}
