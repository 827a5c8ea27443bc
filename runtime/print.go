package bruntime

import (
	"fmt"
	"strings"

	"github.com/gosuda/retrobasic/ast"
)

// execPrint renders one PRINT statement. The machine tracks the output
// column across statements so dangling separators compose: a statement ended
// by ";" leaves the column where it is, one ended by "," advances it to the
// next tab zone, and anything else resets it with a newline.
func (m *Machine) execPrint(e ast.StrExpr) error {
	var b strings.Builder
	newline := true
	trailingZone := false
	switch w := e.(type) {
	case ast.NoNewline:
		e = w.Expr
		newline = false
	case ast.TrailingTab:
		e = w.Expr
		newline = false
		trailingZone = true
	}
	if err := m.render(&b, e); err != nil {
		return err
	}
	if trailingZone {
		m.zonePad(&b)
	}
	out := Output{Text: b.String(), NewLine: newline}
	m.outputs = append(m.outputs, out)
	if m.outputHook != nil {
		m.outputHook(out)
	}
	if newline {
		m.col = 0
	}
	return nil
}

func (m *Machine) render(b *strings.Builder, e ast.StrExpr) error {
	switch x := e.(type) {
	case ast.StrLit:
		m.write(b, x.Value)
		return nil
	case ast.ToStr:
		v, err := m.eval(x.Expr)
		if err != nil {
			return err
		}
		m.write(b, v.String())
		return nil
	case ast.TabCall:
		for m.col < x.Col {
			m.write(b, " ")
		}
		return nil
	case ast.Concat:
		if err := m.render(b, x.Left); err != nil {
			return err
		}
		return m.render(b, x.Right)
	case ast.TabConcat:
		if err := m.render(b, x.Left); err != nil {
			return err
		}
		m.zonePad(b)
		return m.render(b, x.Right)
	default:
		// Dangling wrappers are outermost by construction.
		return fmt.Errorf("unsupported print expression %T", e)
	}
}

func (m *Machine) write(b *strings.Builder, s string) {
	b.WriteString(s)
	m.col += len(s)
}

// zonePad advances output to the start of the next tab zone.
func (m *Machine) zonePad(b *strings.Builder) {
	target := (m.col/m.tabWidth + 1) * m.tabWidth
	for m.col < target {
		m.write(b, " ")
	}
}
