package parser

import (
	"strconv"

	"github.com/gosuda/retrobasic/ast"
)

// statement parses one statement, trying the ":"-sequence form before
// settling for a single statement. Sequences associate to the right:
// a:b:c parses as Seq(a, Seq(b, c)).
func (s *scanner) statement() (ast.Statement, bool) {
	first, ok := s.singleStatement()
	if !ok {
		return nil, false
	}
	mark := s.pos
	if s.tok(":") {
		if rest, ok := s.statement(); ok {
			return ast.SeqStmt{First: first, Rest: rest}, true
		}
		s.pos = mark
	}
	return first, true
}

// singleStatement tries the keyword rules in a fixed order. The order
// matters wherever surface syntax overlaps (LET's optional keyword most of
// all) and is part of the accepted-language contract: REM, PRINT, LET, END,
// GOTO, GOSUB, IF, FOR, NEXT, INPUT, RETURN, DIM, ON-GOTO.
func (s *scanner) singleStatement() (ast.Statement, bool) {
	if s.hardErr != nil {
		return nil, false
	}
	if st, ok := s.remStmt(); ok {
		return st, true
	}
	if st, ok := s.printStmt(); ok {
		return st, true
	}
	if st, ok := s.letStmt(); ok {
		return st, true
	}
	if st, ok := s.endStmt(); ok {
		return st, true
	}
	if st, ok := s.gotoStmt(); ok {
		return st, true
	}
	if st, ok := s.gosubStmt(); ok {
		return st, true
	}
	if st, ok := s.ifStmt(); ok {
		return st, true
	}
	if st, ok := s.forStmt(); ok {
		return st, true
	}
	if st, ok := s.nextStmt(); ok {
		return st, true
	}
	if st, ok := s.inputStmt(); ok {
		return st, true
	}
	if st, ok := s.returnStmt(); ok {
		return st, true
	}
	if st, ok := s.dimStmt(); ok {
		return st, true
	}
	if st, ok := s.onGotoStmt(); ok {
		return st, true
	}
	return nil, s.fail(s.pos, "statement")
}

// remStmt consumes the rest of the line unexamined.
func (s *scanner) remStmt() (ast.Statement, bool) {
	if !s.tok("REM") {
		return nil, false
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	return ast.RemStmt{}, true
}

// printStmt: a bare PRINT with nothing printable after it prints an empty
// literal.
func (s *scanner) printStmt() (ast.Statement, bool) {
	if !s.tok("PRINT") {
		return nil, false
	}
	if e, ok := s.printExpr(); ok {
		return ast.PrintStmt{Expr: e}, true
	}
	return ast.PrintStmt{Expr: ast.StrLit{Value: ""}}, true
}

// letStmt: the LET keyword itself is optional; a bare target=expr is also an
// assignment. An array reference is tried as the target before a scalar.
func (s *scanner) letStmt() (ast.Statement, bool) {
	mark := s.pos
	s.tok("LET")
	var target ast.Expr
	if a, ok := s.arrayRef(); ok {
		target = a
	} else if c, ok := s.letter(); ok {
		target = ast.VarRef{Name: c}
	} else {
		s.pos = mark
		return nil, false
	}
	if !s.tok("=") {
		s.pos = mark
		return nil, false
	}
	value, ok := s.arithExpr()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.LetStmt{Target: target, Value: value}, true
}

func (s *scanner) endStmt() (ast.Statement, bool) {
	if !s.tok("END") {
		return nil, false
	}
	return ast.EndStmt{}, true
}

func (s *scanner) gotoStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("GOTO") {
		return nil, false
	}
	n, ok := s.lineRef()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.GotoStmt{Line: n}, true
}

func (s *scanner) gosubStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("GOSUB") {
		return nil, false
	}
	n, ok := s.lineRef()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.GosubStmt{Line: n}, true
}

func (s *scanner) ifStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("IF") {
		return nil, false
	}
	cond, ok := s.boolExpr()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("THEN") {
		s.pos = mark
		return nil, false
	}
	n, ok := s.lineRef()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.IfStmt{Cond: cond, Then: n}, true
}

// forStmt: FOR v = start TO end [STEP step]; the step defaults to 1.
func (s *scanner) forStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("FOR") {
		return nil, false
	}
	v, ok := s.letter()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("=") {
		s.pos = mark
		return nil, false
	}
	start, ok := s.arithExpr()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("TO") {
		s.pos = mark
		return nil, false
	}
	end, ok := s.arithExpr()
	if !ok {
		s.pos = mark
		return nil, false
	}
	var step ast.Expr = ast.IntLit{Value: 1}
	if s.tok("STEP") {
		step, ok = s.arithExpr()
		if !ok {
			s.pos = mark
			return nil, false
		}
	}
	return ast.ForStmt{Var: v, Start: start, End: end, Step: step}, true
}

func (s *scanner) nextStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("NEXT") {
		return nil, false
	}
	vars, ok := s.varList()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.NextStmt{Vars: vars}, true
}

// inputStmt: INPUT ["prompt";] v[, v...]. The two accepted shapes are a bare
// target list and a literal prompt immediately followed by ";" and the
// target list; anything else fails the rule.
func (s *scanner) inputStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("INPUT") {
		return nil, false
	}
	prompt := ""
	after := s.pos
	if lit, ok := s.strLit(); ok {
		if s.tok(";") {
			prompt = lit.(ast.StrLit).Value
		} else {
			s.pos = after
		}
	}
	vars, ok := s.varList()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.InputStmt{Prompt: prompt, Vars: vars}, true
}

func (s *scanner) returnStmt() (ast.Statement, bool) {
	if !s.tok("RETURN") {
		return nil, false
	}
	return ast.ReturnStmt{}, true
}

func (s *scanner) dimStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("DIM") {
		return nil, false
	}
	decl, ok := s.arrayRef()
	if !ok {
		s.pos = mark
		return nil, false
	}
	decls := []ast.ArrayRef{decl}
	for s.tok(",") {
		decl, ok = s.arrayRef()
		if !ok {
			s.pos = mark
			return nil, false
		}
		decls = append(decls, decl)
	}
	return ast.DimStmt{Decls: decls}, true
}

func (s *scanner) onGotoStmt() (ast.Statement, bool) {
	mark := s.pos
	if !s.tok("ON") {
		return nil, false
	}
	v, ok := s.letter()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("GOTO") {
		s.pos = mark
		return nil, false
	}
	n, ok := s.lineRef()
	if !ok {
		s.pos = mark
		return nil, false
	}
	targets := []int{n}
	for s.tok(",") {
		n, ok = s.lineRef()
		if !ok {
			s.pos = mark
			return nil, false
		}
		targets = append(targets, n)
	}
	return ast.OnGotoStmt{Var: v, Targets: targets}, true
}

func (s *scanner) varList() ([]rune, bool) {
	mark := s.pos
	c, ok := s.letter()
	if !ok {
		s.pos = mark
		return nil, false
	}
	vars := []rune{c}
	for s.tok(",") {
		c, ok = s.letter()
		if !ok {
			s.pos = mark
			return nil, false
		}
		vars = append(vars, c)
	}
	return vars, true
}

// lineRef parses a raw target line number. Targets are not resolved against
// the program table at parse time.
func (s *scanner) lineRef() (int, bool) {
	mark := s.pos
	raw, ok := s.digits()
	if !ok {
		s.pos = mark
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(mark, "line number")
		s.pos = mark
		return 0, false
	}
	return n, true
}
