package parser

import (
	"strconv"

	"github.com/gosuda/retrobasic/ast"
)

// The arithmetic grammar is split into four tiers because the descent is
// written without left recursion: each operator rule restricts what may
// appear on its own left side to the tiers below it. The resulting table is
// deliberately non-conventional and is a compatibility contract: "*" nests to
// the right, "/" binds looser than "*", "-" binds loosest of all and also
// nests to the right ("a-b-c" is a-(b-c)). Do not "fix" it.

// arithExpr tries difference, sum, quotient, product, then a bare atom.
func (s *scanner) arithExpr() (ast.Expr, bool) {
	if s.hardErr != nil {
		return nil, false
	}
	if e, ok := s.difference(); ok {
		return e, true
	}
	if e, ok := s.sum(); ok {
		return e, true
	}
	if e, ok := s.quotient(); ok {
		return e, true
	}
	if e, ok := s.product(); ok {
		return e, true
	}
	return s.atom()
}

// product: atom "*" (product | atom)
func (s *scanner) product() (ast.Expr, bool) {
	mark := s.pos
	left, ok := s.atom()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("*") {
		s.pos = mark
		return nil, false
	}
	if right, ok := s.product(); ok {
		return ast.BinaryExpr{Op: "*", Left: left, Right: right}, true
	}
	if right, ok := s.atom(); ok {
		return ast.BinaryExpr{Op: "*", Left: left, Right: right}, true
	}
	s.pos = mark
	return nil, false
}

func (s *scanner) productDown() (ast.Expr, bool) {
	if e, ok := s.product(); ok {
		return e, true
	}
	return s.atom()
}

// quotient: (product | atom) "/" (quotient | product | atom)
func (s *scanner) quotient() (ast.Expr, bool) {
	mark := s.pos
	left, ok := s.productDown()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("/") {
		s.pos = mark
		return nil, false
	}
	if right, ok := s.quotientDown(); ok {
		return ast.BinaryExpr{Op: "/", Left: left, Right: right}, true
	}
	s.pos = mark
	return nil, false
}

func (s *scanner) quotientDown() (ast.Expr, bool) {
	if e, ok := s.quotient(); ok {
		return e, true
	}
	return s.productDown()
}

// sum: (quotient | product | atom) "+" (sum | quotient | product | atom)
func (s *scanner) sum() (ast.Expr, bool) {
	mark := s.pos
	left, ok := s.quotientDown()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("+") {
		s.pos = mark
		return nil, false
	}
	if right, ok := s.sumDown(); ok {
		return ast.BinaryExpr{Op: "+", Left: left, Right: right}, true
	}
	s.pos = mark
	return nil, false
}

func (s *scanner) sumDown() (ast.Expr, bool) {
	if e, ok := s.sum(); ok {
		return e, true
	}
	return s.quotientDown()
}

// difference: (sum | quotient | product | atom) "-" arithExpr
func (s *scanner) difference() (ast.Expr, bool) {
	mark := s.pos
	left, ok := s.sumDown()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("-") {
		s.pos = mark
		return nil, false
	}
	if right, ok := s.arithExpr(); ok {
		return ast.BinaryExpr{Op: "-", Left: left, Right: right}, true
	}
	s.pos = mark
	return nil, false
}

// atom alternatives, in trial order: parenthesized expression, builtin call,
// unary minus, float literal, integer literal, array reference, variable.
func (s *scanner) atom() (ast.Expr, bool) {
	if s.hardErr != nil {
		return nil, false
	}
	mark := s.pos
	if s.tok("(") {
		if e, ok := s.arithExpr(); ok && s.tok(")") {
			return e, true
		}
		s.pos = mark
	}
	if e, ok := s.builtinCall(); ok {
		return e, true
	}
	if s.hardErr != nil {
		return nil, false
	}
	if s.tok("-") {
		if e, ok := s.atom(); ok {
			return ast.BinaryExpr{Op: "*", Left: ast.IntLit{Value: -1}, Right: e}, true
		}
		s.pos = mark
	}
	if e, ok := s.floatLit(); ok {
		return e, true
	}
	if e, ok := s.intLit(); ok {
		return e, true
	}
	if e, ok := s.arrayRef(); ok {
		return e, true
	}
	if c, ok := s.letter(); ok {
		return ast.VarRef{Name: c}, true
	}
	s.fail(s.pos, "expression")
	s.pos = mark
	return nil, false
}

// builtinCall matches NAME "(" expr ")" for a name of at least two letters.
// The builtin table is closed: a multi-letter name in call position that is
// not INT or RND is a hard error, never a silent fallback. Single letters
// fall through to the array-reference alternative.
func (s *scanner) builtinCall() (ast.Expr, bool) {
	mark := s.pos
	name, at, ok := s.letters()
	if !ok || len(name) < 2 {
		s.pos = mark
		return nil, false
	}
	if !s.tok("(") {
		s.pos = mark
		return nil, false
	}
	var fn ast.Builtin
	switch name {
	case string(ast.BuiltinInt):
		fn = ast.BuiltinInt
	case string(ast.BuiltinRnd):
		fn = ast.BuiltinRnd
	default:
		s.abort(at, "builtin function INT or RND, got "+name)
		s.pos = mark
		return nil, false
	}
	arg, ok := s.arithExpr()
	if !ok || !s.tok(")") {
		s.pos = mark
		return nil, false
	}
	return ast.CallExpr{Fn: fn, Arg: arg}, true
}

func (s *scanner) floatLit() (ast.Expr, bool) {
	mark := s.pos
	whole, ok := s.digits()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if s.pos >= len(s.src) || s.src[s.pos] != '.' {
		s.pos = mark
		return nil, false
	}
	s.pos++
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		s.fail(s.pos, "fraction digits")
		s.pos = mark
		return nil, false
	}
	v, err := strconv.ParseFloat(whole+"."+s.src[start:s.pos], 64)
	if err != nil {
		s.fail(mark, "float literal")
		s.pos = mark
		return nil, false
	}
	return ast.FloatLit{Value: v}, true
}

func (s *scanner) intLit() (ast.Expr, bool) {
	mark := s.pos
	raw, ok := s.digits()
	if !ok {
		s.pos = mark
		return nil, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.fail(mark, "integer literal")
		s.pos = mark
		return nil, false
	}
	return ast.IntLit{Value: v}, true
}

// arrayRef matches C "(" [expr {"," expr}] ")". The node always carries four
// index slots: missing trailing indices become IntLit{0}, anything past the
// fourth is dropped.
func (s *scanner) arrayRef() (ast.ArrayRef, bool) {
	mark := s.pos
	name, ok := s.letter()
	if !ok {
		s.pos = mark
		return ast.ArrayRef{}, false
	}
	if !s.tok("(") {
		s.pos = mark
		return ast.ArrayRef{}, false
	}
	var given []ast.Expr
	if e, ok := s.arithExpr(); ok {
		given = append(given, e)
		for s.tok(",") {
			e, ok := s.arithExpr()
			if !ok {
				s.pos = mark
				return ast.ArrayRef{}, false
			}
			given = append(given, e)
		}
	}
	if !s.tok(")") {
		s.pos = mark
		return ast.ArrayRef{}, false
	}
	var index [4]ast.Expr
	for i := 0; i < 4; i++ {
		if i < len(given) {
			index[i] = given[i]
		} else {
			index[i] = ast.IntLit{Value: 0}
		}
	}
	return ast.ArrayRef{Name: name, Index: index}, true
}
