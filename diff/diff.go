// Package diff implements the formula-to-formula comparison of spec
// §4.6: a clause-level symmetric difference between two formulas sharing
// an arena, under one of three semantic-strength kinds, plus an optional
// count-based diff delegated to an external solver.
package diff

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/boolforge/cnfkit/clause"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/solver"
)

// Kind selects the semantic-strength rewrite applied before clause
// materialization (spec §4.6 step 3 and open question (c)).
type Kind int

const (
	Weak Kind = iota
	TopStrong
	BottomStrong
)

func (k Kind) String() string {
	switch k {
	case Weak:
		return "weak"
	case TopStrong:
		return "top-strong"
	case BottomStrong:
		return "bottom-strong"
	default:
		return "unknown"
	}
}

// ParseKind maps the shell's command-line spelling to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "weak":
		return Weak, nil
	case "top-strong":
		return TopStrong, nil
	case "bottom-strong":
		return BottomStrong, nil
	default:
		return 0, fmt.Errorf("unknown diff kind %q", s)
	}
}

// Counts holds the clause-level symmetric-difference result.
type Counts struct {
	Common  int
	Removed int // in A, not in B
	Added   int // in B, not in A
}

// CountDiff holds the optional #SAT-based result (spec §4.6 step 4).
type CountDiff struct {
	Available bool
	Lost      int64 // models of A not in B
	Kept      int64 // common models
	Gained    int64 // models of B not in A
}

// Result is the full output of Diff.
type Result struct {
	Clauses Counts
	Count   CountDiff
}

// Diff computes the clause-level difference between A and B, which must
// share an arena. leftKind/rightKind select the rewrite applied to each
// side independently before materialization. Result.Count is left zero;
// the count-based comparison is CountTheDiff.
func Diff(a, b *formula.Formula, leftKind, rightKind Kind) (Result, error) {
	if a.Arena != b.Arena {
		return Result{}, fmt.Errorf("diff: formulas must share an arena")
	}
	reconcile(a, b)

	ca, err := materializeFor(a, leftKind)
	if err != nil {
		return Result{}, err
	}
	cb, err := materializeFor(b, rightKind)
	if err != nil {
		return Result{}, err
	}

	return Result{Clauses: clauseCounts(ca, cb)}, nil
}

// reconcile implements spec §4.6 step 1: every natural variable of A
// absent from B (and vice versa) is added to the other side's natural
// set as a dead variable, present for counting but unconstrained.
func reconcile(a, b *formula.Formula) {
	for id := range a.Natural {
		b.Natural[id] = true
	}
	for id := range b.Natural {
		a.Natural[id] = true
	}
}

func materializeFor(f *formula.Formula, k Kind) (*clause.Set, error) {
	root := applyKind(f, k)
	return clause.Materialize(f.Arena, f.Vars, root)
}

// applyKind runs the rewrite selected by k and returns the resulting
// CNF-shaped root, per spec §4.6 step 3 and open question (c): weak is
// the threshold-bounded partial distributive pass, top-strong is Tseitin
// applied only at the formula's root connective, bottom-strong is total
// Tseitin applied to every compound subexpression.
func applyKind(f *formula.Formula, k Kind) int {
	nnf := rewrite.NNF(f.Arena, f.Root)
	switch k {
	case Weak:
		return rewrite.DistributiveThreshold(f.Arena, f.Vars, nnf, rewrite.Options{})
	case TopStrong:
		return rewrite.TseitinRoot(f.Arena, f.Vars, nnf)
	case BottomStrong:
		return rewrite.Tseitin(f.Arena, f.Vars, nnf)
	default:
		return nnf
	}
}

// clauseCounts compares two clause sets by canonical form (sorted
// literals within a clause, then the clauses as a string-keyed set, so a
// clause repeated on one side counts once), not by eid — spec §4.6 step 2.
func clauseCounts(ca, cb *clause.Set) Counts {
	setA := canonicalSet(ca)
	setB := canonicalSet(cb)
	var c Counts
	for k := range setA {
		if setB[k] {
			c.Common++
		} else {
			c.Removed++
		}
	}
	for k := range setB {
		if !setA[k] {
			c.Added++
		}
	}
	return c
}

func canonicalSet(cs *clause.Set) map[string]bool {
	out := make(map[string]bool, len(cs.Clauses))
	for _, c := range cs.Clauses {
		lits := make([]int, len(c))
		for i, l := range c {
			lits[i] = int(l)
		}
		sort.Ints(lits)
		parts := make([]string, len(lits))
		for i, l := range lits {
			parts[i] = fmt.Sprintf("%d", l)
		}
		out[strings.Join(parts, ",")] = true
	}
	return out
}

// CountDiff computes the #SAT-based comparison of spec §4.6 step 4,
// delegating to an external solver adapter. A side is negated with the
// arena's Not; like every counted formula it is then pushed to NNF and
// clausified with total Tseitin in countOf, so negating a CNF-shaped root
// does not blow up exponentially. Failure is reported as Available=false,
// never an error —
// a missing or misbehaving solver degrades the diff, it doesn't abort it
// (spec §4.6 "Failure semantics").
func CountTheDiff(ctx context.Context, sv *solver.Adapter, a, b *formula.Formula) CountDiff {
	and := a.Arena.And(a.Root, b.Root)
	notA := negateForCounting(a)
	notB := negateForCounting(b)
	andNotB := a.Arena.And(a.Root, notB)
	notAAnd := a.Arena.And(notA, b.Root)

	countAnd, errAnd := countOf(ctx, sv, a.WithRoot(and))
	countLost, errLost := countOf(ctx, sv, a.WithRoot(andNotB))
	countGained, errGained := countOf(ctx, sv, a.WithRoot(notAAnd))

	if errAnd != nil || errLost != nil || errGained != nil {
		return CountDiff{Available: false}
	}
	return CountDiff{Available: true, Lost: countLost, Kept: countAnd, Gained: countGained}
}

func negateForCounting(f *formula.Formula) int {
	return f.Arena.Not(f.Root)
}

func countOf(ctx context.Context, sv *solver.Adapter, f *formula.Formula) (int64, error) {
	cs, err := clause.Materialize(f.Arena, f.Vars, rewrite.Tseitin(f.Arena, f.Vars, rewrite.NNF(f.Arena, f.Root)))
	if err != nil {
		return 0, err
	}
	return sv.Count(ctx, cs)
}

// WriteArtifacts serializes A and B as DIMACS into <dir>/a.dimacs and
// <dir>/b.dimacs (spec §4.6 step 5).
func WriteArtifacts(dir string, a, b *formula.Formula, leftKind, rightKind Kind) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	ca, err := materializeFor(a, leftKind)
	if err != nil {
		return err
	}
	cb, err := materializeFor(b, rightKind)
	if err != nil {
		return err
	}
	if err := writeDimacsFile(filepath.Join(dir, "a.dimacs"), ca); err != nil {
		return err
	}
	return writeDimacsFile(filepath.Join(dir, "b.dimacs"), cb)
}

func writeDimacsFile(path string, cs *clause.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return cs.WriteDIMACS(f, true)
}
