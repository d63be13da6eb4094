package parse

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/variable"
)

// DIMACS parses standard DIMACS CNF: "c" comment lines, a "p cnf V C"
// header, then clauses of signed integers terminated by 0, a clause
// optionally spanning multiple lines.
func DIMACS(r io.Reader, file string, shared *arena.Arena) (*formula.Formula, error) {
	a := shared
	if a == nil {
		a = arena.New(variable.New())
	}
	vars := a.Vars()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	seenHeader := false
	var clauses []int
	var current []int

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			seenHeader = true
			continue
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, parseErr("parse", file, lineNo, 0, "malformed literal %q", tok)
			}
			if n == 0 {
				clauses = append(clauses, literalsToClause(a, vars, current))
				current = nil
				continue
			}
			current = append(current, n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, parseErr("parse", file, 0, 0, "missing 'p cnf' header")
	}
	if len(current) > 0 {
		return nil, parseErr("parse", file, lineNo, 0, "final clause not terminated by 0")
	}

	root := a.And(clauses...)
	return newFormula(a, vars, root), nil
}

func literalsToClause(a *arena.Arena, vars *variable.Table, lits []int) int {
	children := make([]int, len(lits))
	for i, n := range lits {
		vid := vars.InternNamed("v" + strconv.Itoa(abs(n)))
		eid := a.Var(vid)
		if n < 0 {
			eid = a.Not(eid)
		}
		children[i] = eid
	}
	return a.Or(children...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
