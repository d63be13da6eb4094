// Package shell sequences the pipeline commands of spec §6 over the
// formula engine. It is explicitly named by spec §1 as a deliberately
// out-of-scope external collaborator — a thin positional interpreter, not
// part of the engine proper — included here only so the module produces
// a runnable command. Grounded on the teacher's cobra-free CLI absence:
// there is no teacher shell to imitate, so this follows the command
// table in spec §6 directly, in the idiom of the teacher's error
// reporting (core.Error) and the pack's cobra/pflag CLI convention for
// the thin entrypoint that calls into it (cmd/cnfkit).
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/clause"
	"github.com/boolforge/cnfkit/config"
	"github.com/boolforge/cnfkit/core"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/rewrite"
	"github.com/boolforge/cnfkit/solver"
	"github.com/boolforge/cnfkit/variable"
)

// Exit codes (spec §6 "Exit codes").
const (
	ExitOK          = 0
	ExitParseError  = 1
	ExitAssertion   = 2
	ExitUnsat       = 3
	ExitUsage       = 4
	ExitSolverError = 5
)

// session is the shell's mutable state across one pipeline run: one
// shared arena for every formula loaded in the run (spec §4.6's sharing
// discipline), a stack of loaded formulas (the top is "current"), and
// the materialized clauses left behind by the last to_clauses.
type session struct {
	cfg      config.Config
	sv       *solver.Adapter
	out      io.Writer
	log      zerolog.Logger
	arena    *arena.Arena
	formulas []*formula.Formula
	clauses  *clause.Set
}

func (s *session) current() (*formula.Formula, error) {
	if len(s.formulas) == 0 {
		return nil, fmt.Errorf("no formula loaded")
	}
	return s.formulas[len(s.formulas)-1], nil
}

func (s *session) setCurrent(f *formula.Formula) {
	s.formulas = append(s.formulas, f)
}

func (s *session) replaceCurrent(f *formula.Formula) {
	if len(s.formulas) == 0 {
		s.formulas = append(s.formulas, f)
		return
	}
	s.formulas[len(s.formulas)-1] = f
}

// Run executes the pipeline: args[0] is an input path or "-" for stdin,
// args[1:] is the command sequence. Returns the process exit code.
func Run(ctx context.Context, cfg config.Config, sv *solver.Adapter, out io.Writer, log zerolog.Logger, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: cnfkit <input-path|-> [command ...]")
		return ExitUsage
	}
	s := &session{cfg: cfg, sv: sv, out: out, log: log, arena: arena.New(variable.New())}

	if err := s.load(args[0]); err != nil {
		return reportErr(out, err)
	}

	for _, cmd := range args[1:] {
		if code := s.exec(ctx, cmd); code != ExitOK {
			return code
		}
	}
	return ExitOK
}

func reportErr(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	switch {
	case core.Is(err, core.KindParse):
		return ExitParseError
	case core.Is(err, core.KindAssertion):
		return ExitAssertion
	case core.Is(err, core.KindUnsat):
		return ExitUnsat
	case core.Is(err, core.KindSolverUnavailable):
		return ExitSolverError
	default:
		return ExitParseError
	}
}

// exec dispatches one pipeline token: a known command, a path to load,
// or (falling through) an inline .sat-syntax expression (spec §6).
func (s *session) exec(ctx context.Context, cmd string) int {
	fields := strings.Fields(cmd)
	name := fields[0]
	switch name {
	case "print":
		return s.cmdPrint()
	case "print_sub_exprs":
		return s.cmdPrintSubExprs()
	case "to_nnf":
		return s.cmdRewrite(rewrite.NNF)
	case "to_canon":
		return s.cmdRewrite(rewrite.Simplify)
	case "to_cnf_dist":
		return s.cmdCNFDist(fields[1:])
	case "to_cnf_tseitin":
		return s.cmdCNFTseitin()
	case "to_clauses":
		return s.cmdToClauses()
	case "satisfy":
		return s.cmdSatisfy(ctx)
	case "count":
		return s.cmdCount(ctx)
	case "enumerate":
		return s.cmdEnumerate(ctx)
	case "assert_count":
		return s.cmdAssertCount(ctx, fields[1:])
	case "count_inc":
		return s.cmdCountInc(ctx, fields[1:])
	case "diff":
		return s.cmdDiff(ctx, fields[1:])
	default:
		return s.cmdPushInline(cmd)
	}
}
