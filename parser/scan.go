package parser

import (
	"fmt"
	"strings"
)

// ParseError reports the single furthest point the grammar failed at, with
// the construct that was expected there. There is no multi-error recovery:
// one failing parse yields exactly one of these.
type ParseError struct {
	Offset   int
	Line     int
	Col      int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: expected %s", e.Line, e.Col, e.Expected)
}

// scanner is a cursor over the source text. Grammar rules save the cursor,
// try their alternatives, and restore it on failure; nothing is ever consumed
// by a failed rule. The furthest failure offset and its expectation are kept
// so the final error points at the most specific problem, not the first
// backtrack.
type scanner struct {
	src     string
	pos     int
	farPos  int
	farWant string
	hardErr *ParseError
}

func newScanner(src string) *scanner {
	return &scanner{src: src, farPos: -1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// fail records an expectation at the given offset and always returns false.
func (s *scanner) fail(pos int, want string) bool {
	if pos > s.farPos {
		s.farPos = pos
		s.farWant = want
	}
	return false
}

// abort raises a non-backtrackable failure. Used for the unknown-builtin
// path, which must surface loudly instead of being coerced into an ordinary
// alternative miss.
func (s *scanner) abort(pos int, what string) {
	if s.hardErr == nil {
		line, col := s.lineCol(pos)
		s.hardErr = &ParseError{Offset: pos, Line: line, Col: col, Expected: what}
	}
}

func (s *scanner) err() *ParseError {
	if s.hardErr != nil {
		return s.hardErr
	}
	pos := s.farPos
	if pos < 0 {
		pos = s.pos
	}
	want := s.farWant
	if want == "" {
		want = "statement"
	}
	line, col := s.lineCol(pos)
	return &ParseError{Offset: pos, Line: line, Col: col, Expected: want}
}

func (s *scanner) lineCol(pos int) (int, int) {
	if pos > len(s.src) {
		pos = len(s.src)
	}
	line := 1 + strings.Count(s.src[:pos], "\n")
	col := pos - strings.LastIndexByte(s.src[:pos], '\n')
	return line, col
}

// skipSpaces consumes ASCII spaces only. Newlines are significant to the
// statement and program grammars and are never skipped here.
func (s *scanner) skipSpaces() {
	for s.pos < len(s.src) && s.src[s.pos] == ' ' {
		s.pos++
	}
}

// tok matches a literal token after optional spaces, restoring the cursor
// when it does not match.
func (s *scanner) tok(lit string) bool {
	mark := s.pos
	s.skipSpaces()
	if strings.HasPrefix(s.src[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	s.fail(s.pos, fmt.Sprintf("%q", lit))
	s.pos = mark
	return false
}

// letter matches a single alphabetic character after optional spaces and
// reports it upper-cased.
func (s *scanner) letter() (rune, bool) {
	mark := s.pos
	s.skipSpaces()
	if s.pos < len(s.src) {
		c := s.src[s.pos]
		if c >= 'a' && c <= 'z' {
			s.pos++
			return rune(c - 'a' + 'A'), true
		}
		if c >= 'A' && c <= 'Z' {
			s.pos++
			return rune(c), true
		}
	}
	s.fail(s.pos, "letter")
	s.pos = mark
	return 0, false
}

// letters matches a maximal run of alphabetic characters after optional
// spaces, upper-cased. Used for builtin names, which need at least two
// characters to be distinguishable from array and variable references.
func (s *scanner) letters() (string, int, bool) {
	mark := s.pos
	s.skipSpaces()
	start := s.pos
	for s.pos < len(s.src) && isAlpha(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		s.pos = mark
		return "", start, false
	}
	return strings.ToUpper(s.src[start:s.pos]), start, true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digits matches a run of decimal digits after optional spaces.
func (s *scanner) digits() (string, bool) {
	mark := s.pos
	s.skipSpaces()
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		s.fail(s.pos, "number")
		s.pos = mark
		return "", false
	}
	return s.src[start:s.pos], true
}
