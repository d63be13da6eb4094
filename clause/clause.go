// Package clause materializes a CNF-shaped arena expression (an And of
// Ors of literals, as produced by the rewrite package) into an explicit
// clause set and serializes it to DIMACS CNF (spec §4.5). Grounded on
// the teacher's sat.Literal/sat.Clause/sat.CNF shape (xDarkicex-logic
// sat/types.go), adapted from string variable names to the arena's dense
// integer variable ids.
package clause

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/core"
	"github.com/boolforge/cnfkit/variable"
)

// Literal is a signed variable id: positive for an unnegated occurrence,
// its negation for a negated one. Zero is never a valid literal.
type Literal int

func (l Literal) Var() int   { return int(abs(int(l))) }
func (l Literal) Negated() bool { return l < 0 }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Clause is a disjunction of literals. An empty clause is the
// contradiction (unsatisfiable under any assignment).
type Clause []Literal

// Set is a materialized CNF formula: a conjunction of clauses over a
// subset of the arena's variables.
type Set struct {
	Clauses []Clause
	vars    *variable.Table
}

// Materialize projects a CNF-shaped expression (root must be, recursively,
// an And of Ors of literals — i.e. already run through rewrite.Distributive,
// rewrite.Tseitin, rewrite.PlaistedGreenbaum, or rewrite.DistributiveThreshold)
// into an explicit Set. It does not itself clausify; a non-CNF-shaped
// subexpression produces a referential error.
func Materialize(a *arena.Arena, vars *variable.Table, root int) (*Set, error) {
	clauses, err := topClauses(a, root)
	if err != nil {
		return nil, err
	}
	out := make([]Clause, len(clauses))
	for i, c := range clauses {
		lits, err := clauseLiterals(a, c)
		if err != nil {
			return nil, err
		}
		out[i] = lits
	}
	return &Set{Clauses: out, vars: vars}, nil
}

func topClauses(a *arena.Arena, root int) ([]int, error) {
	e := a.Get(root)
	if e.Kind == arena.KindAnd {
		return e.Children, nil
	}
	// A bare clause (or literal) at the top is still a one-clause CNF.
	return []int{root}, nil
}

func clauseLiterals(a *arena.Arena, cid int) (Clause, error) {
	e := a.Get(cid)
	var lits []int
	switch e.Kind {
	case arena.KindOr:
		lits = e.Children
	case arena.KindVar, arena.KindNot:
		lits = []int{cid}
	case arena.KindAnd:
		return nil, core.NewReferentialError("clause", "Materialize",
			"expected a clause, found a nested conjunction — expression is not CNF-shaped")
	}
	out := make(Clause, len(lits))
	for i, l := range lits {
		lit, err := literalOf(a, l)
		if err != nil {
			return nil, err
		}
		out[i] = lit
	}
	return out, nil
}

func literalOf(a *arena.Arena, eid int) (Literal, error) {
	e := a.Get(eid)
	switch e.Kind {
	case arena.KindVar:
		return Literal(e.Var), nil
	case arena.KindNot:
		inner := a.Get(e.Child)
		if inner.Kind != arena.KindVar {
			return 0, core.NewReferentialError("clause", "Materialize",
				"expected a literal, found a negated non-variable — expression is not CNF-shaped")
		}
		return Literal(-inner.Var), nil
	default:
		return 0, core.NewReferentialError("clause", "Materialize",
			"expected a literal inside a clause — expression is not CNF-shaped")
	}
}

// Vars returns the set of variable ids appearing in the clause set, sorted.
func (s *Set) Vars() []int {
	seen := make(map[int]bool)
	for _, c := range s.Clauses {
		for _, l := range c {
			seen[l.Var()] = true
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// WriteDIMACS serializes the clause set as DIMACS CNF (spec §4.5): when
// natural is true, one "c <id> <name>" comment line per named variable of
// the table, written before the header; then a "p cnf <vars> <clauses>"
// header, then one line per clause, signed integers terminated by 0.
// Auxiliary variables are never given comment lines since they have no
// natural name.
func (s *Set) WriteDIMACS(w io.Writer, natural bool) error {
	bw := bufio.NewWriter(w)
	used := s.Vars()
	maxVar := 0
	for _, v := range used {
		if v > maxVar {
			maxVar = v
		}
	}
	if natural && s.vars != nil {
		for _, v := range s.vars.Named() {
			if _, err := fmt.Fprintf(bw, "c %d %s\n", v.ID, v.Name); err != nil {
				return err
			}
			if v.ID > maxVar {
				maxVar = v.ID
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(s.Clauses)); err != nil {
		return err
	}
	for _, c := range s.Clauses {
		for _, l := range c {
			if _, err := fmt.Fprintf(bw, "%d ", int(l)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
