// Package solver is the one-shot subprocess contract to the external
// SAT/#SAT/all-SAT solvers spec §1 and §6 treat as black boxes: cnfkit
// never links a solver in-process, it shells out to one and parses its
// stdout. Grounded on the teacher's sat.SolverResult/SolverStatistics
// shape (xDarkicex-logic sat/types.go) for the result types, with the
// actual solving delegated to os/exec rather than the teacher's
// in-process CDCL engine.
package solver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/boolforge/cnfkit/clause"
	"github.com/boolforge/cnfkit/core"
)

// Adapter invokes external binaries over a materialized clause set.
// Each *Cmd field is a full command line; %s is substituted with the
// path to a temporary DIMACS file holding the clauses.
type Adapter struct {
	SatCmd   string // e.g. "minisat %s /dev/stdout"
	CountCmd string // e.g. "sharpSAT %s"
	EnumCmd  string // e.g. "minisat -all %s /dev/stdout"
	Log      zerolog.Logger
}

// Assignment maps variable id to truth value.
type Assignment map[int]bool

// ErrUnavailable wraps any failure to invoke or parse a solver's output;
// callers that can tolerate a missing solver (the diff engine) should
// match it with errors.Is against core.KindSolverUnavailable via
// core.Is, not by string comparison.
var ErrUnavailable = errors.New("solver unavailable")

// Satisfy runs the configured SAT binary and returns a satisfying
// assignment, or an *core.Error of KindUnsat if the solver reports UNSAT.
func (a *Adapter) Satisfy(ctx context.Context, cs *clause.Set) (Assignment, error) {
	if a.SatCmd == "" {
		return nil, a.unavailable("satisfy", errors.New("no solver binary configured"))
	}
	out, err := a.run(ctx, a.SatCmd, cs)
	if err != nil {
		return nil, a.unavailable("satisfy", err)
	}
	return parseAssignment(out)
}

// Count runs the configured #SAT binary and returns the model count.
func (a *Adapter) Count(ctx context.Context, cs *clause.Set) (int64, error) {
	if a.CountCmd == "" {
		return 0, a.unavailable("count", errors.New("no solver binary configured"))
	}
	out, err := a.run(ctx, a.CountCmd, cs)
	if err != nil {
		return 0, a.unavailable("count", err)
	}
	return parseCount(out)
}

// Enumerate runs the configured all-SAT binary and returns every model.
func (a *Adapter) Enumerate(ctx context.Context, cs *clause.Set) ([]Assignment, error) {
	if a.EnumCmd == "" {
		return nil, a.unavailable("enumerate", errors.New("no solver binary configured"))
	}
	out, err := a.run(ctx, a.EnumCmd, cs)
	if err != nil {
		return nil, a.unavailable("enumerate", err)
	}
	return parseModels(out)
}

func (a *Adapter) unavailable(op string, cause error) error {
	a.Log.Debug().Err(cause).Str("op", op).Msg("external solver unavailable")
	return core.NewSolverUnavailable("solver", op, cause.Error(), ErrUnavailable)
}

// run materializes cs to a temp DIMACS file, substitutes it into cmdline,
// and executes via os/exec with ctx as the sole cancellation point (spec
// §5 "External solver calls ... are the only cancellation points"). No
// retry: one-shot per spec §7.
func (a *Adapter) run(ctx context.Context, cmdline string, cs *clause.Set) ([]byte, error) {
	f, err := writeTempDIMACS(cs)
	if err != nil {
		return nil, err
	}
	defer removeTemp(f)

	full := fmt.Sprintf(cmdline, f)
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return nil, errors.New("empty solver command line")
	}
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "solver invocation failed: %s", stderr.String())
	}
	return stdout.Bytes(), nil
}

// parseAssignment reads minisat-style output: a status line ("SAT" or
// "UNSATISFIABLE") followed by a line of signed literals terminated by 0.
func parseAssignment(out []byte) (Assignment, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	var satLine, litLine string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if satLine == "" {
			satLine = line
			continue
		}
		litLine = line
		break
	}
	switch satLine {
	case "SAT":
		return parseLiteralLine(litLine)
	case "UNSATISFIABLE", "UNSAT":
		return nil, core.NewUnsatRequested("solver")
	default:
		return nil, errors.Errorf("malformed solver output: %q", satLine)
	}
}

func parseLiteralLine(line string) (Assignment, error) {
	assign := make(Assignment)
	for _, tok := range strings.Fields(line) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed literal %q", tok)
		}
		if n == 0 {
			break
		}
		if n > 0 {
			assign[n] = true
		} else {
			assign[-n] = false
		}
	}
	return assign, nil
}

func parseModels(out []byte) ([]Assignment, error) {
	var models []Assignment
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == "SAT" || !looksLikeLiteralLine(line) {
			continue
		}
		a, err := parseLiteralLine(line)
		if err != nil {
			return nil, err
		}
		models = append(models, a)
	}
	return models, nil
}

func looksLikeLiteralLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.Atoi(fields[0])
	return err == nil
}

// parseCount reads a bare integer, optionally prefixed by "c" comment
// lines and/or a label such as "# solutions" or "Model count:".
func parseCount(out []byte) (int64, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		for i := len(fields) - 1; i >= 0; i-- {
			if n, err := strconv.ParseInt(fields[i], 10, 64); err == nil {
				return n, nil
			}
		}
	}
	return 0, errors.New("malformed solver output: no count found")
}
