package parser_test

import (
	"reflect"
	"testing"

	"github.com/gosuda/retrobasic/ast"
	"github.com/gosuda/retrobasic/parser"
)

func mustStmt(t *testing.T, src string) ast.Statement {
	t.Helper()
	st, err := parser.ParseStatement(src)
	if err != nil {
		t.Fatalf("parse %q failed: %v", src, err)
	}
	return st
}

func TestLetKeywordOptional(t *testing.T) {
	want := ast.LetStmt{Target: ast.VarRef{Name: 'A'}, Value: ast.IntLit{Value: 1}}
	if got := mustStmt(t, "LET A = 1"); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
	if got := mustStmt(t, "A = 1"); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestLetArrayTarget(t *testing.T) {
	got := mustStmt(t, "LET A(1) = 2")
	want := ast.LetStmt{
		Target: ast.ArrayRef{Name: 'A', Index: [4]ast.Expr{
			ast.IntLit{Value: 1}, ast.IntLit{Value: 0}, ast.IntLit{Value: 0}, ast.IntLit{Value: 0},
		}},
		Value: ast.IntLit{Value: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPrintTrailingSemicolon(t *testing.T) {
	got := mustStmt(t, `PRINT "X=";X;`)
	want := ast.PrintStmt{Expr: ast.NoNewline{Expr: ast.Concat{
		Left:  ast.StrLit{Value: "X="},
		Right: ast.ToStr{Expr: ast.VarRef{Name: 'X'}},
	}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPrintTrailingComma(t *testing.T) {
	got := mustStmt(t, `PRINT "A",`)
	want := ast.PrintStmt{Expr: ast.TrailingTab{Expr: ast.StrLit{Value: "A"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPrintCommaAndTab(t *testing.T) {
	got := mustStmt(t, `PRINT "A","B"`)
	want := ast.PrintStmt{Expr: ast.TabConcat{Left: ast.StrLit{Value: "A"}, Right: ast.StrLit{Value: "B"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	got = mustStmt(t, `PRINT TAB(10);"B"`)
	want = ast.PrintStmt{Expr: ast.Concat{Left: ast.TabCall{Col: 10}, Right: ast.StrLit{Value: "B"}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestBarePrint(t *testing.T) {
	got := mustStmt(t, "PRINT")
	if !reflect.DeepEqual(got, ast.PrintStmt{Expr: ast.StrLit{Value: ""}}) {
		t.Fatalf("got %#v", got)
	}
}

func TestForStepDefault(t *testing.T) {
	got := mustStmt(t, "FOR I=1 TO 10 STEP 2")
	want := ast.ForStmt{Var: 'I', Start: ast.IntLit{Value: 1}, End: ast.IntLit{Value: 10}, Step: ast.IntLit{Value: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	got = mustStmt(t, "FOR I=1 TO 10")
	want.Step = ast.IntLit{Value: 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestNextMultipleVars(t *testing.T) {
	got := mustStmt(t, "NEXT I, J")
	if !reflect.DeepEqual(got, ast.NextStmt{Vars: []rune{'I', 'J'}}) {
		t.Fatalf("got %#v", got)
	}
}

func TestInputShapes(t *testing.T) {
	got := mustStmt(t, `INPUT "AGE"; A`)
	if !reflect.DeepEqual(got, ast.InputStmt{Prompt: "AGE", Vars: []rune{'A'}}) {
		t.Fatalf("got %#v", got)
	}
	got = mustStmt(t, "INPUT A, B")
	if !reflect.DeepEqual(got, ast.InputStmt{Prompt: "", Vars: []rune{'A', 'B'}}) {
		t.Fatalf("got %#v", got)
	}
}

func TestDim(t *testing.T) {
	got := mustStmt(t, "DIM A(10), B(2,3)")
	want := ast.DimStmt{Decls: []ast.ArrayRef{
		{Name: 'A', Index: [4]ast.Expr{ast.IntLit{Value: 10}, ast.IntLit{Value: 0}, ast.IntLit{Value: 0}, ast.IntLit{Value: 0}}},
		{Name: 'B', Index: [4]ast.Expr{ast.IntLit{Value: 2}, ast.IntLit{Value: 3}, ast.IntLit{Value: 0}, ast.IntLit{Value: 0}}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestOnGoto(t *testing.T) {
	got := mustStmt(t, "ON X GOTO 100, 200, 300")
	if !reflect.DeepEqual(got, ast.OnGotoStmt{Var: 'X', Targets: []int{100, 200, 300}}) {
		t.Fatalf("got %#v", got)
	}
}

func TestIfComparisons(t *testing.T) {
	got := mustStmt(t, "IF A <= 10 THEN 50")
	want := ast.IfStmt{
		Cond: ast.Compare{Op: "<=", Left: ast.VarRef{Name: 'A'}, Right: ast.IntLit{Value: 10}},
		Then: 50,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestIfAndChainNestsRight(t *testing.T) {
	got := mustStmt(t, "IF A=1 AND B=2 AND C=3 THEN 99")
	want := ast.IfStmt{
		Cond: ast.And{
			Left: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'A'}, Right: ast.IntLit{Value: 1}},
			Right: ast.And{
				Left:  ast.Compare{Op: "=", Left: ast.VarRef{Name: 'B'}, Right: ast.IntLit{Value: 2}},
				Right: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'C'}, Right: ast.IntLit{Value: 3}},
			},
		},
		Then: 99,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestIfAndChainThenOr(t *testing.T) {
	got := mustStmt(t, "IF A=1 AND B=2 OR C=3 THEN 10")
	want := ast.IfStmt{
		Cond: ast.Or{
			Left: ast.And{
				Left:  ast.Compare{Op: "=", Left: ast.VarRef{Name: 'A'}, Right: ast.IntLit{Value: 1}},
				Right: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'B'}, Right: ast.IntLit{Value: 2}},
			},
			Right: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'C'}, Right: ast.IntLit{Value: 3}},
		},
		Then: 10,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestIfOrThenAndChain(t *testing.T) {
	got := mustStmt(t, "IF A=1 OR B=2 AND C=3 THEN 20")
	want := ast.IfStmt{
		Cond: ast.Or{
			Left: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'A'}, Right: ast.IntLit{Value: 1}},
			Right: ast.And{
				Left:  ast.Compare{Op: "=", Left: ast.VarRef{Name: 'B'}, Right: ast.IntLit{Value: 2}},
				Right: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'C'}, Right: ast.IntLit{Value: 3}},
			},
		},
		Then: 20,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestIfOrChain(t *testing.T) {
	got := mustStmt(t, "IF A=1 OR B=2 THEN 40")
	want := ast.IfStmt{
		Cond: ast.Or{
			Left:  ast.Compare{Op: "=", Left: ast.VarRef{Name: 'A'}, Right: ast.IntLit{Value: 1}},
			Right: ast.Compare{Op: "=", Left: ast.VarRef{Name: 'B'}, Right: ast.IntLit{Value: 2}},
		},
		Then: 40,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestSequenceNestsRight(t *testing.T) {
	got := mustStmt(t, "A=1:PRINT A:END")
	want := ast.SeqStmt{
		First: ast.LetStmt{Target: ast.VarRef{Name: 'A'}, Value: ast.IntLit{Value: 1}},
		Rest: ast.SeqStmt{
			First: ast.PrintStmt{Expr: ast.ToStr{Expr: ast.VarRef{Name: 'A'}}},
			Rest:  ast.EndStmt{},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestRemIgnoresRestOfLine(t *testing.T) {
	got := mustStmt(t, "REM anything at all = + ; here")
	if !reflect.DeepEqual(got, ast.RemStmt{}) {
		t.Fatalf("got %#v", got)
	}
}
