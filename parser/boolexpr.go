package parser

import "github.com/gosuda/retrobasic/ast"

// boolExpr dispatch: AND-chain, then OR-chain, then a bare comparison. The
// order is part of the accepted-language contract and must not be reordered.
// An AND-chain followed by OR becomes the left side of the disjunction, so
// "A=1 AND B=2 OR C=3" parses as Or(And(A=1,B=2), C=3).
func (s *scanner) boolExpr() (ast.BoolExpr, bool) {
	if s.hardErr != nil {
		return nil, false
	}
	if left, ok := s.andChain(); ok {
		mark := s.pos
		if s.tok("OR") {
			if right, ok := s.boolExpr(); ok {
				return ast.Or{Left: left, Right: right}, true
			}
			s.pos = mark
		}
		return left, true
	}
	if e, ok := s.orChain(); ok {
		return e, true
	}
	return s.comparison()
}

// andChain: comparison "AND" (andChain | comparison), nesting to the right.
func (s *scanner) andChain() (ast.BoolExpr, bool) {
	mark := s.pos
	left, ok := s.comparison()
	if !ok {
		s.pos = mark
		return nil, false
	}
	if !s.tok("AND") {
		s.pos = mark
		return nil, false
	}
	if right, ok := s.andChain(); ok {
		return ast.And{Left: left, Right: right}, true
	}
	if right, ok := s.comparison(); ok {
		return ast.And{Left: left, Right: right}, true
	}
	s.pos = mark
	return nil, false
}

// orChain: (andChain | comparison) "OR" boolExpr, nesting to the right over
// the full boolean grammar.
func (s *scanner) orChain() (ast.BoolExpr, bool) {
	mark := s.pos
	var left ast.BoolExpr
	if e, ok := s.andChain(); ok {
		left = e
	} else if e, ok := s.comparison(); ok {
		left = e
	} else {
		s.pos = mark
		return nil, false
	}
	if !s.tok("OR") {
		s.pos = mark
		return nil, false
	}
	right, ok := s.boolExpr()
	if !ok {
		s.pos = mark
		return nil, false
	}
	return ast.Or{Left: left, Right: right}, true
}

// comparisonOps in trial order: the two-character operators come before
// their single-character prefixes so "<=" is never read as "<".
var comparisonOps = []string{"<>", "<=", ">=", "=", "<", ">"}

func (s *scanner) comparison() (ast.BoolExpr, bool) {
	mark := s.pos
	left, ok := s.arithExpr()
	if !ok {
		s.pos = mark
		return nil, false
	}
	for _, op := range comparisonOps {
		if !s.tok(op) {
			continue
		}
		if right, ok := s.arithExpr(); ok {
			return ast.Compare{Op: op, Left: left, Right: right}, true
		}
		break
	}
	s.pos = mark
	return nil, false
}
