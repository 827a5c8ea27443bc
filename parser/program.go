package parser

import (
	"sort"
	"strconv"

	"github.com/gosuda/retrobasic/ast"
)

// ParseProgram parses a complete source listing into the executable line
// table. Each source line is "<line number> <statement>"; entries are
// stable-sorted ascending and threaded so every line knows its successor,
// with ast.EndOfProgram marking the last one. When the same line number
// appears twice the later occurrence wins.
func ParseProgram(src string) (*ast.Program, error) {
	s := newScanner(src)

	type numbered struct {
		num  int
		stmt ast.Statement
	}
	var entries []numbered
	for {
		num, ok := s.lineNumber()
		if !ok {
			return nil, s.err()
		}
		stmt, ok := s.statement()
		if !ok {
			return nil, s.err()
		}
		entries = append(entries, numbered{num: num, stmt: stmt})
		s.skipSpaces()
		if s.pos < len(s.src) && s.src[s.pos] == '\r' {
			s.pos++
		}
		if s.eof() {
			break
		}
		if s.src[s.pos] != '\n' {
			s.fail(s.pos, "end of line")
			return nil, s.err()
		}
		s.pos++
		if s.eof() {
			break
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].num < entries[j].num
	})

	lines := make(map[int]ast.Line, len(entries))
	for i, e := range entries {
		next := ast.EndOfProgram
		if i+1 < len(entries) {
			next = entries[i+1].num
		}
		lines[e.num] = ast.Line{Stmt: e.stmt, Next: next}
	}
	return &ast.Program{Lines: lines, Entry: entries[0].num}, nil
}

// ParseStatement parses a single statement with no line number, for tooling
// and tests.
func ParseStatement(src string) (ast.Statement, error) {
	s := newScanner(src)
	stmt, ok := s.statement()
	if !ok {
		return nil, s.err()
	}
	s.skipSpaces()
	if !s.eof() {
		s.fail(s.pos, "end of input")
		return nil, s.err()
	}
	return stmt, nil
}

// ParseExpr parses a single arithmetic expression, for tooling and tests.
func ParseExpr(src string) (ast.Expr, error) {
	s := newScanner(src)
	e, ok := s.arithExpr()
	if !ok {
		return nil, s.err()
	}
	s.skipSpaces()
	if !s.eof() {
		s.fail(s.pos, "end of input")
		return nil, s.err()
	}
	return e, nil
}

func (s *scanner) lineNumber() (int, bool) {
	mark := s.pos
	raw, ok := s.digits()
	if !ok {
		s.pos = mark
		return 0, s.fail(s.pos, "line number")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.pos = mark
		return 0, s.fail(s.pos, "line number")
	}
	return n, true
}
