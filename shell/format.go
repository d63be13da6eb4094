package shell

import (
	"strings"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/variable"
)

// formatExpr renders an expression in infix .model-like syntax for the
// print command (spec §6 "Write the current formula ... to stdout").
func formatExpr(a *arena.Arena, vars *variable.Table, eid int, auxPrefix string) string {
	e := a.Get(eid)
	switch e.Kind {
	case arena.KindVar:
		return vars.Display(e.Var, auxPrefix)
	case arena.KindNot:
		return "!" + parenIfCompound(a, vars, e.Child, auxPrefix)
	case arena.KindAnd:
		if len(e.Children) == 0 {
			return "true"
		}
		return joinChildren(a, vars, e.Children, " & ", auxPrefix)
	case arena.KindOr:
		if len(e.Children) == 0 {
			return "false"
		}
		return joinChildren(a, vars, e.Children, " | ", auxPrefix)
	default:
		return "?"
	}
}

func joinChildren(a *arena.Arena, vars *variable.Table, children []int, sep, auxPrefix string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = parenIfCompound(a, vars, c, auxPrefix)
	}
	return strings.Join(parts, sep)
}

func parenIfCompound(a *arena.Arena, vars *variable.Table, eid int, auxPrefix string) string {
	e := a.Get(eid)
	s := formatExpr(a, vars, eid, auxPrefix)
	if e.Kind == arena.KindAnd || e.Kind == arena.KindOr {
		return "(" + s + ")"
	}
	return s
}
