package parse

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/variable"
)

// SAT parses the .sat format (spec §6): a DIMACS extension using prefix
// operators *(and), +(or), -(not) over integer variable ids, a header
// "p sat N", and optional "c <id> <name>" dictionary lines. Variables
// are named v1..vN unless a dictionary line overrides them.
func SAT(r io.Reader, file string, shared *arena.Arena) (*formula.Formula, error) {
	a := shared
	if a == nil {
		a = arena.New(variable.New())
	}
	vars := a.Vars()
	names := make(map[int]string)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	var bodyTokens []string
	seenHeader := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "c") {
			if err := parseSATComment(line, names); err != nil {
				return nil, parseErr("parse", file, lineNo, 0, "%v", err)
			}
			continue
		}
		if strings.HasPrefix(line, "p sat") {
			seenHeader = true
			continue
		}
		bodyTokens = append(bodyTokens, tokenizeSATLine(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, parseErr("parse", file, 0, 0, "missing 'p sat' header")
	}

	ids := make([]int, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		vars.InternNamed(names[id])
	}

	p := &satParser{toks: bodyTokens, a: a, vars: vars, file: file, names: names}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return newFormula(a, vars, root), nil
}

// tokenizeSATLine splits a .sat body line into individual tokens: '(',
// ')', '*', '+', '-' each stand alone regardless of surrounding
// whitespace, and runs of digits form a single integer token.
func tokenizeSATLine(line string) []string {
	var toks []string
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(' || c == ')' || c == '*' || c == '+' || c == '-':
			toks = append(toks, string(c))
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(line) && line[j] >= '0' && line[j] <= '9' {
				j++
			}
			toks = append(toks, line[i:j])
			i = j
		default:
			i++
		}
	}
	return toks
}

// InlineSAT parses a bare .sat-syntax expression with no "p sat" header
// or dictionary, pushed as a formula over an already-open variable table
// (spec §6 "A bare .sat-syntax expression is parsed and pushed as a
// formula over the current variable table").
func InlineSAT(expr string, shared *arena.Arena) (*formula.Formula, error) {
	a := shared
	if a == nil {
		a = arena.New(variable.New())
	}
	vars := a.Vars()
	p := &satParser{toks: tokenizeSATLine(expr), a: a, vars: vars, file: "<inline>", names: map[int]string{}}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, parseErr("parse", "<inline>", 0, 0, "unexpected trailing input")
	}
	return newFormula(a, vars, root), nil
}

func parseSATComment(line string, names map[int]string) error {
	fields := strings.Fields(strings.TrimPrefix(line, "c"))
	if len(fields) < 2 {
		return nil
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	names[id] = fields[1]
	return nil
}

// satParser reads the prefix-notation body: *( e1 e2 ... ), +( e1 e2 ... ),
// -( e ) or -e, or an integer (a variable reference).
type satParser struct {
	toks  []string
	pos   int
	a     *arena.Arena
	vars  *variable.Table
	file  string
	names map[int]string
}

func (p *satParser) parseExpr() (int, error) {
	if p.atEnd() {
		return 0, parseErr("parse", p.file, 0, 0, "unexpected end of input")
	}
	tok := p.toks[p.pos]
	switch tok {
	case "*":
		return p.parseNary(true)
	case "+":
		return p.parseNary(false)
	case "-":
		p.pos++
		if !p.atEnd() && p.toks[p.pos] == "(" {
			p.pos++
			inner, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			if p.atEnd() || p.toks[p.pos] != ")" {
				return 0, parseErr("parse", p.file, 0, 0, "expected ')'")
			}
			p.pos++
			return p.a.Not(inner), nil
		}
		inner, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		return p.a.Not(inner), nil
	default:
		p.pos++
		vid, err := strconv.Atoi(tok)
		if err != nil {
			return 0, parseErr("parse", p.file, 0, 0, "expected literal, operator, or '(', found %q", tok)
		}
		id := p.vars.InternNamed(p.varName(vid))
		return p.a.Var(id), nil
	}
}

func (p *satParser) varName(vid int) string {
	if name, ok := p.names[vid]; ok {
		return name
	}
	return "v" + strconv.Itoa(vid)
}

func (p *satParser) parseNary(isAnd bool) (int, error) {
	p.pos++ // consume '*' or '+'
	if p.atEnd() || p.toks[p.pos] != "(" {
		return 0, parseErr("parse", p.file, 0, 0, "expected '(' after operator")
	}
	p.pos++
	var children []int
	for !p.atEnd() && p.toks[p.pos] != ")" {
		child, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		children = append(children, child)
	}
	if p.atEnd() {
		return 0, parseErr("parse", p.file, 0, 0, "expected ')'")
	}
	p.pos++ // consume ')'
	if isAnd {
		return p.a.And(children...), nil
	}
	return p.a.Or(children...), nil
}

func (p *satParser) atEnd() bool { return p.pos >= len(p.toks) }
