package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/gosuda/retrobasic"
	"github.com/gosuda/retrobasic/ast"
)

func dumpProgram(w io.Writer, path string) error {
	src, err := loadSource(path)
	if err != nil {
		return err
	}
	prog, err := retrobasic.Parse(src)
	if err != nil {
		return err
	}
	nums := make([]int, 0, len(prog.Lines))
	for n := range prog.Lines {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	fmt.Fprintf(w, "entry %d\n", prog.Entry)
	for _, n := range nums {
		line := prog.Lines[n]
		fmt.Fprintf(w, "%5d  %-50s -> %d\n", n, stmtString(line.Stmt), line.Next)
	}
	return nil
}

func stmtString(stmt ast.Statement) string {
	switch st := stmt.(type) {
	case ast.LetStmt:
		return fmt.Sprintf("Let %v = %v", st.Target, st.Value)
	case ast.PrintStmt:
		return fmt.Sprintf("Print %v", st.Expr)
	case ast.GotoStmt:
		return fmt.Sprintf("Goto %d", st.Line)
	case ast.GosubStmt:
		return fmt.Sprintf("Gosub %d", st.Line)
	case ast.IfStmt:
		return fmt.Sprintf("If %v Then %d", st.Cond, st.Then)
	case ast.ForStmt:
		return fmt.Sprintf("For %c = %v To %v Step %v", st.Var, st.Start, st.End, st.Step)
	case ast.NextStmt:
		return fmt.Sprintf("Next %q", st.Vars)
	case ast.OnGotoStmt:
		return fmt.Sprintf("On %c Goto %v", st.Var, st.Targets)
	case ast.SeqStmt:
		return stmtString(st.First) + " : " + stmtString(st.Rest)
	default:
		return fmt.Sprintf("%T%+v", stmt, stmt)
	}
}
