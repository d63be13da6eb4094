package shell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/clause"
	"github.com/boolforge/cnfkit/core"
	"github.com/boolforge/cnfkit/diff"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/parse"
	"github.com/boolforge/cnfkit/rewrite"
)

// load parses path (or stdin, for "-") by extension and pushes the
// result as the current formula, sharing this session's arena.
func (s *session) load(path string) error {
	var r *os.File
	var err error
	if path == "-" {
		r = os.Stdin
	} else {
		r, err = os.Open(path)
		if err != nil {
			return core.NewParseError("shell", path, 0, 0, err.Error())
		}
		defer r.Close()
	}

	var f *formula.Formula
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cnf", ".dimacs":
		f, err = parse.DIMACS(r, path, s.arena)
	case ".model":
		f, err = parse.Model(r, path, s.arena)
	case ".sat":
		f, err = parse.SAT(r, path, s.arena)
	default:
		f, err = parse.SAT(r, path, s.arena)
	}
	if err != nil {
		return err
	}
	s.setCurrent(f)
	return nil
}

func (s *session) cmdPrint() int {
	if s.clauses != nil {
		if err := s.clauses.WriteDIMACS(s.out, true); err != nil {
			fmt.Fprintln(s.out, err)
			return ExitParseError
		}
		return ExitOK
	}
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	fmt.Fprintln(s.out, formatExpr(f.Arena, f.Vars, f.Root, s.cfg.AuxPrefix))
	return ExitOK
}

func (s *session) cmdPrintSubExprs() int {
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	for eid := 1; eid <= f.Arena.Len(); eid++ {
		fmt.Fprintf(s.out, "%d: %s\n", eid, formatExpr(f.Arena, f.Vars, eid, s.cfg.AuxPrefix))
	}
	return ExitOK
}

func (s *session) cmdRewrite(fn func(*arena.Arena, int) int) int {
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	s.replaceCurrent(f.WithRoot(fn(f.Arena, f.Root)))
	return ExitOK
}

func (s *session) cmdCNFDist(args []string) int {
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	nnf := rewrite.NNF(f.Arena, f.Root)
	if len(args) > 0 {
		opts := s.cfg.RewriteOptions()
		if n, err := strconv.Atoi(args[0]); err == nil {
			opts.MaxBlowup = n
		}
		s.replaceCurrent(f.WithRoot(rewrite.DistributiveThreshold(f.Arena, f.Vars, nnf, opts)))
		return ExitOK
	}
	s.replaceCurrent(f.WithRoot(rewrite.Distributive(f.Arena, nnf)))
	return ExitOK
}

func (s *session) cmdCNFTseitin() int {
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	nnf := rewrite.NNF(f.Arena, f.Root)
	s.replaceCurrent(f.WithRoot(rewrite.Tseitin(f.Arena, f.Vars, nnf)))
	return ExitOK
}

func (s *session) cmdToClauses() int {
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	cs, err := clause.Materialize(f.Arena, f.Vars, f.Root)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitParseError
	}
	s.clauses = cs
	return ExitOK
}

func (s *session) materializedClauses() (*clause.Set, int) {
	if s.clauses != nil {
		return s.clauses, ExitOK
	}
	f, err := s.current()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil, ExitUsage
	}
	cs, err := clause.Materialize(f.Arena, f.Vars, f.Root)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil, ExitParseError
	}
	return cs, ExitOK
}

func (s *session) cmdSatisfy(ctx context.Context) int {
	cs, code := s.materializedClauses()
	if code != ExitOK {
		return code
	}
	assign, err := s.sv.Satisfy(ctx, cs)
	if err != nil {
		return reportErr(s.out, err)
	}
	printAssignment(s.out, assign)
	return ExitOK
}

func (s *session) cmdCount(ctx context.Context) int {
	cs, code := s.materializedClauses()
	if code != ExitOK {
		return code
	}
	n, err := s.sv.Count(ctx, cs)
	if err != nil {
		return reportErr(s.out, err)
	}
	fmt.Fprintln(s.out, n)
	return ExitOK
}

func (s *session) cmdEnumerate(ctx context.Context) int {
	cs, code := s.materializedClauses()
	if code != ExitOK {
		return code
	}
	models, err := s.sv.Enumerate(ctx, cs)
	if err != nil {
		return reportErr(s.out, err)
	}
	for _, m := range models {
		printAssignment(s.out, m)
	}
	return ExitOK
}

func (s *session) cmdAssertCount(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "assert_count requires an integer argument")
		return ExitUsage
	}
	want, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	cs, code := s.materializedClauses()
	if code != ExitOK {
		return code
	}
	got, err := s.sv.Count(ctx, cs)
	if err != nil {
		return reportErr(s.out, err)
	}
	if got != want {
		return reportErr(s.out, core.NewAssertionFailed("shell", want, got))
	}
	return ExitOK
}

// cmdCountInc computes the count-based diff (spec §4.6 step 4) between
// the two most recently loaded formulas, defaulting to bottom-strong
// clausification on both sides.
func (s *session) cmdCountInc(ctx context.Context, args []string) int {
	if len(s.formulas) < 2 {
		fmt.Fprintln(s.out, "count_inc requires two loaded formulas")
		return ExitUsage
	}
	a := s.formulas[len(s.formulas)-2]
	b := s.formulas[len(s.formulas)-1]
	cd := diff.CountTheDiff(ctx, s.sv, a, b)
	if !cd.Available {
		fmt.Fprintln(s.out, "count unavailable")
		return ExitOK
	}
	fmt.Fprintf(s.out, "lost=%d kept=%d gained=%d\n", cd.Lost, cd.Kept, cd.Gained)
	if len(args) > 0 {
		_ = diff.WriteArtifacts(args[0], a, b, diff.BottomStrong, diff.BottomStrong)
	}
	return ExitOK
}

func (s *session) cmdDiff(ctx context.Context, args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "diff requires <left-kind> <right-kind>")
		return ExitUsage
	}
	if len(s.formulas) < 2 {
		fmt.Fprintln(s.out, "diff requires two loaded formulas")
		return ExitUsage
	}
	left, err := diff.ParseKind(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	right, err := diff.ParseKind(args[1])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitUsage
	}
	a := s.formulas[len(s.formulas)-2]
	b := s.formulas[len(s.formulas)-1]

	result, err := diff.Diff(a, b, left, right)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ExitParseError
	}
	fmt.Fprintf(s.out, "common=%d removed=%d added=%d\n", result.Clauses.Common, result.Clauses.Removed, result.Clauses.Added)

	if len(args) > 2 {
		label := args[2]
		cd := diff.CountTheDiff(ctx, s.sv, a, b)
		if cd.Available {
			fmt.Fprintf(s.out, "lost=%d kept=%d gained=%d\n", cd.Lost, cd.Kept, cd.Gained)
		} else {
			fmt.Fprintln(s.out, "count unavailable")
		}
		if err := diff.WriteArtifacts(label, a, b, left, right); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
	return ExitOK
}

// cmdPushInline handles spec §6's final two pipeline-token forms: an
// existing file path (parsed and pushed as a new current formula) or a
// bare .sat-syntax expression (parsed over the current variable table).
func (s *session) cmdPushInline(token string) int {
	if info, err := os.Stat(token); err == nil && !info.IsDir() {
		if err := s.load(token); err != nil {
			return reportErr(s.out, err)
		}
		return ExitOK
	}
	f, err := parse.InlineSAT(token, s.arena)
	if err != nil {
		return reportErr(s.out, err)
	}
	s.setCurrent(f)
	return ExitOK
}

func printAssignment(out interface{ Write([]byte) (int, error) }, a map[int]bool) {
	ids := make([]int, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if a[id] {
			parts = append(parts, strconv.Itoa(id))
		} else {
			parts = append(parts, "-"+strconv.Itoa(id))
		}
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
}
