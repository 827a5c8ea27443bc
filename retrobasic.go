package retrobasic

import (
	"github.com/gosuda/retrobasic/ast"
	"github.com/gosuda/retrobasic/parser"
	bruntime "github.com/gosuda/retrobasic/runtime"
)

// Compile parses a source listing and builds a Machine ready to run it.
func Compile(src string) (*bruntime.Machine, error) {
	program, err := parser.ParseProgram(src)
	if err != nil {
		return nil, err
	}
	return bruntime.New(program), nil
}

// Parse only returns the program line table for tooling use.
func Parse(src string) (*ast.Program, error) {
	return parser.ParseProgram(src)
}
