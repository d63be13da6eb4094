package parse

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/boolforge/cnfkit/arena"
	"github.com/boolforge/cnfkit/formula"
	"github.com/boolforge/cnfkit/variable"
)

type modelTokenType int

const (
	mtDef modelTokenType = iota
	mtIdent
	mtNot
	mtAnd
	mtOr
	mtLParen
	mtRParen
	mtEOF
	mtError
)

type modelToken struct {
	typ   modelTokenType
	value string
	col   int
}

// modelLexer tokenizes one line of .model syntax: def(name), !, &, |,
// parentheses, # comments to end of line. Grounded on the teacher's
// Lexer (xDarkicex-logic classical/lexer.go), narrowed to this format's
// smaller operator set.
type modelLexer struct {
	input string
	pos   int
}

func (l *modelLexer) lex() []modelToken {
	var toks []modelToken
	for l.pos < len(l.input) {
		l.skipSpace()
		if l.pos >= len(l.input) {
			break
		}
		if l.input[l.pos] == '#' {
			break
		}
		tok := l.next()
		toks = append(toks, tok)
		if tok.typ == mtError {
			break
		}
	}
	toks = append(toks, modelToken{typ: mtEOF, col: l.pos})
	return toks
}

func (l *modelLexer) skipSpace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

func (l *modelLexer) next() modelToken {
	start := l.pos
	c := l.input[l.pos]
	switch c {
	case '(':
		l.pos++
		return modelToken{typ: mtLParen, value: "(", col: start}
	case ')':
		l.pos++
		return modelToken{typ: mtRParen, value: ")", col: start}
	case '!':
		l.pos++
		return modelToken{typ: mtNot, value: "!", col: start}
	case '&':
		l.pos++
		return modelToken{typ: mtAnd, value: "&", col: start}
	case '|':
		l.pos++
		return modelToken{typ: mtOr, value: "|", col: start}
	default:
		if unicode.IsLetter(rune(c)) || c == '_' {
			return l.readIdent(start)
		}
		return modelToken{typ: mtError, value: string(c), col: start}
	}
}

func (l *modelLexer) readIdent(start int) modelToken {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '_' {
			l.pos++
		} else {
			break
		}
	}
	value := l.input[start:l.pos]
	if value == "def" {
		return modelToken{typ: mtDef, value: value, col: start}
	}
	return modelToken{typ: mtIdent, value: value, col: start}
}

// modelParser implements the same match/check/advance/peek/previous
// recursive-descent shape as the teacher's Parser (xDarkicex-logic
// classical/parser.go), but builds arena nodes directly instead of an AST,
// over the precedence chain | (lowest) > & > ! (highest).
type modelParser struct {
	toks    []modelToken
	current int
	a       *arena.Arena
	vars    *variable.Table
	file    string
	lineNo  int
}

func (p *modelParser) parseLine() (int, error) {
	expr, err := p.parseOr()
	if err != nil {
		return 0, err
	}
	if !p.isAtEnd() {
		return 0, parseErr("parse", p.file, p.lineNo, p.peek().col,
			"unexpected token %q", p.peek().value)
	}
	return expr, nil
}

func (p *modelParser) parseOr() (int, error) {
	left, err := p.parseAnd()
	if err != nil {
		return 0, err
	}
	children := []int{left}
	for p.match(mtOr) {
		right, err := p.parseAnd()
		if err != nil {
			return 0, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return p.a.Or(children...), nil
}

func (p *modelParser) parseAnd() (int, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	children := []int{left}
	for p.match(mtAnd) {
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return p.a.And(children...), nil
}

func (p *modelParser) parseUnary() (int, error) {
	if p.match(mtNot) {
		inner, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return p.a.Not(inner), nil
	}
	return p.parsePrimary()
}

func (p *modelParser) parsePrimary() (int, error) {
	if p.match(mtDef) {
		if !p.match(mtLParen) {
			return 0, parseErr("parse", p.file, p.lineNo, p.peek().col, "expected '(' after def")
		}
		if !p.check(mtIdent) {
			return 0, parseErr("parse", p.file, p.lineNo, p.peek().col, "expected variable name")
		}
		name := p.advance().value
		if !p.match(mtRParen) {
			return 0, parseErr("parse", p.file, p.lineNo, p.peek().col, "expected ')' after def(%s", name)
		}
		vid := p.vars.InternNamed(name)
		return p.a.Var(vid), nil
	}
	if p.match(mtLParen) {
		expr, err := p.parseOr()
		if err != nil {
			return 0, err
		}
		if !p.match(mtRParen) {
			return 0, parseErr("parse", p.file, p.lineNo, p.peek().col, "expected ')'")
		}
		return expr, nil
	}
	return 0, parseErr("parse", p.file, p.lineNo, p.peek().col, "expected expression, found %q", p.peek().value)
}

func (p *modelParser) match(t modelTokenType) bool {
	if p.check(t) {
		p.current++
		return true
	}
	return false
}

func (p *modelParser) check(t modelTokenType) bool {
	return !p.isAtEnd() && p.toks[p.current].typ == t
}

func (p *modelParser) advance() modelToken {
	tok := p.toks[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *modelParser) isAtEnd() bool { return p.toks[p.current].typ == mtEOF }
func (p *modelParser) peek() modelToken { return p.toks[p.current] }

// Model parses a .model file: one constraint per line, # comments, blank
// lines ignored, the overall formula being the conjunction of every
// line's constraint. If shared is non-nil, the formula is built into
// that arena (and its variable table) instead of a fresh one, so a
// second parse can share structure and variable identity with the
// first — the discipline the shell's multi-formula session and the
// diff engine both depend on.
func Model(r io.Reader, file string, shared *arena.Arena) (*formula.Formula, error) {
	a := shared
	if a == nil {
		a = arena.New(variable.New())
	}
	vars := a.Vars()
	var constraints []int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lex := &modelLexer{input: line}
		p := &modelParser{toks: lex.lex(), a: a, vars: vars, file: file, lineNo: lineNo}
		eid, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, eid)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	root := a.And(constraints...)
	return newFormula(a, vars, root), nil
}
