// Package parse implements the three input formats spec §6 fixes for
// compatibility even though the parsers themselves are out of the
// formula engine's scope (spec §1): .sat (DIMACS-extension prefix
// notation), .cnf/.dimacs (standard DIMACS CNF), and .model
// (KConfigReader's infix def(name)/!/&/| syntax). Each builds directly
// into a shared arena/variable.Table and returns a *formula.Formula, so
// a parser is a black box to the rest of the engine but still lives in
// the same arena as everything downstream of it.
//
// Grounded on the teacher's classical.Lexer/classical.Parser recursive-
// descent structure (xDarkicex-logic classical/lexer.go, parser.go),
// adapted from building a string-keyed AST to building arena nodes
// directly, and from a single expression-string input to the three file
// grammars above.
package parse

import (
	"fmt"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/core"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/variable"
)

// newFormula is the shared constructor every format parser uses once it
// has finished building a root expression.
func newFormula(a *arena.Arena, vars *variable.Table, root int) *formula.Formula {
	return formula.New(a, vars, root)
}

func parseErr(system, file string, line, col int, format string, args ...interface{}) error {
	return core.NewParseError(system, file, line, col, fmt.Sprintf(format, args...))
}
