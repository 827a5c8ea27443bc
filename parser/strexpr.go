package parser

import (
	"strconv"
	"strings"

	"github.com/gosuda/retrobasic/ast"
)

// printExpr parses a full PRINT expression. The plain grammar builds
// concatenation chains; a single dangling separator left over after the chain
// wraps the whole thing, so "X=";X; becomes NoNewline(Concat(...)) with the
// wrapper outermost. The dangling comma is tried before the dangling
// semicolon, then the plain form.
func (s *scanner) printExpr() (ast.StrExpr, bool) {
	e, ok := s.strChain()
	if !ok {
		return nil, false
	}
	if s.tok(",") {
		return ast.TrailingTab{Expr: e}, true
	}
	if s.tok(";") {
		return ast.NoNewline{Expr: e}, true
	}
	return e, true
}

// strChain: fragment [";" strChain | "," strChain]. The separator is only
// consumed when another string expression follows; otherwise it is left for
// the dangling forms above.
func (s *scanner) strChain() (ast.StrExpr, bool) {
	left, ok := s.strFragment()
	if !ok {
		return nil, false
	}
	mark := s.pos
	if s.tok(";") {
		if right, ok := s.strChain(); ok {
			return ast.Concat{Left: left, Right: right}, true
		}
		s.pos = mark
	}
	if s.tok(",") {
		if right, ok := s.strChain(); ok {
			return ast.TabConcat{Left: left, Right: right}, true
		}
		s.pos = mark
	}
	return left, true
}

// strFragment alternatives, in trial order: quoted literal, TAB(n), then a
// stringified arithmetic expression. TAB must come before the arithmetic
// fallback: the arithmetic grammar treats any other multi-letter name in
// call position as an unknown builtin.
func (s *scanner) strFragment() (ast.StrExpr, bool) {
	if e, ok := s.strLit(); ok {
		return e, true
	}
	if e, ok := s.tabCall(); ok {
		return e, true
	}
	if e, ok := s.arithExpr(); ok {
		return ast.ToStr{Expr: e}, true
	}
	return nil, s.fail(s.pos, "string expression")
}

// strLit matches a quoted literal. There are no escapes: the literal is
// everything up to the next quote character.
func (s *scanner) strLit() (ast.StrExpr, bool) {
	mark := s.pos
	s.skipSpaces()
	if s.pos >= len(s.src) || s.src[s.pos] != '"' {
		s.fail(s.pos, `string literal`)
		s.pos = mark
		return nil, false
	}
	end := strings.IndexByte(s.src[s.pos+1:], '"')
	if end < 0 {
		s.fail(len(s.src), `closing quote`)
		s.pos = mark
		return nil, false
	}
	lit := s.src[s.pos+1 : s.pos+1+end]
	s.pos += end + 2
	return ast.StrLit{Value: lit}, true
}

func (s *scanner) tabCall() (ast.StrExpr, bool) {
	mark := s.pos
	if !s.tok("TAB") || !s.tok("(") {
		s.pos = mark
		return nil, false
	}
	raw, ok := s.digits()
	if !ok {
		s.pos = mark
		return nil, false
	}
	col, err := strconv.Atoi(raw)
	if err != nil || !s.tok(")") {
		s.pos = mark
		return nil, false
	}
	return ast.TabCall{Col: col}, true
}
