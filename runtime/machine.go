package bruntime

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gosuda/retrobasic/ast"
)

// Output is one emitted PRINT chunk. NewLine reports whether the chunk ends
// the output line; a dangling ";" or "," in the source suppresses it.
type Output struct {
	Text    string
	NewLine bool
}

type resultKind int

const (
	resultNone resultKind = iota
	resultJump
	resultEnd
)

type execResult struct {
	kind resultKind
	line int
}

type forState struct {
	limit  Value
	step   Value
	resume int
}

// Machine executes one immutable program. Variable and array stores are
// keyed by the single-letter names; GOSUB return lines live on a plain
// slice stack; FOR state is keyed by loop variable.
type Machine struct {
	program  *ast.Program
	vars     map[rune]Value
	arrays   map[rune]*Array
	calls    []int
	fors     map[rune]forState
	rng      *rand.Rand
	outputs  []Output
	col      int
	tabWidth int
	// stepLimit bounds total executed statements so a runaway GOTO loop
	// errors out instead of hanging the caller.
	stepLimit     int
	outputHook    func(Output)
	inputProvider func(prompt string) (string, error)
}

func New(program *ast.Program) *Machine {
	return &Machine{
		program:   program,
		vars:      map[rune]Value{},
		arrays:    map[rune]*Array{},
		calls:     nil,
		fors:      map[rune]forState{},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		tabWidth:  14,
		stepLimit: 1_000_000,
	}
}

// SetOutputHook registers a callback invoked for every Output as it is
// produced, on top of the slice Run returns.
func (m *Machine) SetOutputHook(hook func(Output)) {
	m.outputHook = hook
}

// SetInputProvider registers the source INPUT reads from. The prompt is the
// statement's literal, empty past the first variable of a statement.
func (m *Machine) SetInputProvider(provider func(prompt string) (string, error)) {
	m.inputProvider = provider
}

// SetSeed makes RND deterministic.
func (m *Machine) SetSeed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

func (m *Machine) SetTabWidth(w int) {
	if w > 0 {
		m.tabWidth = w
	}
}

func (m *Machine) SetStepLimit(n int) {
	m.stepLimit = n
}

// Run walks the program from its entry line, following each line's
// successor pointer unless the statement redirects control, and halts on END
// or the end-of-program sentinel.
func (m *Machine) Run() ([]Output, error) {
	m.outputs = m.outputs[:0]
	m.col = 0
	pc := m.program.Entry
	steps := 0
	for pc != ast.EndOfProgram {
		line, ok := m.program.Lines[pc]
		if !ok {
			return nil, fmt.Errorf("jump to undefined line %d", pc)
		}
		res, err := m.exec(pc, line.Stmt)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", pc, err)
		}
		switch res.kind {
		case resultEnd:
			return append([]Output(nil), m.outputs...), nil
		case resultJump:
			pc = res.line
		default:
			pc = line.Next
		}
		steps++
		if m.stepLimit > 0 && steps > m.stepLimit {
			return nil, fmt.Errorf("step limit %d exceeded", m.stepLimit)
		}
	}
	return append([]Output(nil), m.outputs...), nil
}

func (m *Machine) exec(pc int, stmt ast.Statement) (execResult, error) {
	switch st := stmt.(type) {
	case ast.LetStmt:
		v, err := m.eval(st.Value)
		if err != nil {
			return execResult{}, err
		}
		return execResult{}, m.assign(st.Target, v)

	case ast.PrintStmt:
		return execResult{}, m.execPrint(st.Expr)

	case ast.EndStmt:
		return execResult{kind: resultEnd}, nil

	case ast.GotoStmt:
		return execResult{kind: resultJump, line: st.Line}, nil

	case ast.IfStmt:
		hold, err := m.evalBool(st.Cond)
		if err != nil {
			return execResult{}, err
		}
		if hold {
			return execResult{kind: resultJump, line: st.Then}, nil
		}
		return execResult{}, nil

	case ast.ForStmt:
		start, err := m.eval(st.Start)
		if err != nil {
			return execResult{}, err
		}
		limit, err := m.eval(st.End)
		if err != nil {
			return execResult{}, err
		}
		step, err := m.eval(st.Step)
		if err != nil {
			return execResult{}, err
		}
		m.vars[st.Var] = start
		// NEXT resumes at the line after the FOR line, not at the next
		// statement. A FOR with its NEXT on the same line runs its body
		// once and falls through.
		m.fors[st.Var] = forState{limit: limit, step: step, resume: m.program.Lines[pc].Next}
		return execResult{}, nil

	case ast.NextStmt:
		for _, c := range st.Vars {
			loop, ok := m.fors[c]
			if !ok {
				return execResult{}, fmt.Errorf("NEXT %c without FOR", c)
			}
			v := add(m.vars[c], loop.step)
			m.vars[c] = v
			var more bool
			if loop.step.Float64() >= 0 {
				more = v.Float64() <= loop.limit.Float64()
			} else {
				more = v.Float64() >= loop.limit.Float64()
			}
			if more {
				return execResult{kind: resultJump, line: loop.resume}, nil
			}
			delete(m.fors, c)
		}
		return execResult{}, nil

	case ast.InputStmt:
		if m.inputProvider == nil {
			return execResult{}, fmt.Errorf("INPUT with no input source")
		}
		for i, c := range st.Vars {
			prompt := ""
			if i == 0 {
				prompt = st.Prompt
			}
			raw, err := m.inputProvider(prompt)
			if err != nil {
				return execResult{}, fmt.Errorf("INPUT %c: %w", c, err)
			}
			v, ok := parseInput(raw)
			if !ok {
				return execResult{}, fmt.Errorf("INPUT %c: not a number: %q", c, raw)
			}
			m.vars[c] = v
		}
		return execResult{}, nil

	case ast.GosubStmt:
		m.calls = append(m.calls, m.program.Lines[pc].Next)
		return execResult{kind: resultJump, line: st.Line}, nil

	case ast.ReturnStmt:
		if len(m.calls) == 0 {
			return execResult{}, fmt.Errorf("RETURN without GOSUB")
		}
		back := m.calls[len(m.calls)-1]
		m.calls = m.calls[:len(m.calls)-1]
		if back == ast.EndOfProgram {
			return execResult{kind: resultEnd}, nil
		}
		return execResult{kind: resultJump, line: back}, nil

	case ast.DimStmt:
		for _, decl := range st.Decls {
			if a, ok := m.arrays[decl.Name]; ok && !a.dynamic {
				return execResult{}, fmt.Errorf("array %c already dimensioned", decl.Name)
			}
			bounds, err := m.evalIndex(decl)
			if err != nil {
				return execResult{}, err
			}
			m.arrays[decl.Name] = newDeclaredArray(bounds)
		}
		return execResult{}, nil

	case ast.RemStmt:
		return execResult{}, nil

	case ast.OnGotoStmt:
		n := m.vars[st.Var].Int64()
		if n >= 1 && n <= int64(len(st.Targets)) {
			return execResult{kind: resultJump, line: st.Targets[n-1]}, nil
		}
		// Out-of-range selectors fall through to the next line.
		return execResult{}, nil

	case ast.SeqStmt:
		res, err := m.exec(pc, st.First)
		if err != nil || res.kind != resultNone {
			return res, err
		}
		return m.exec(pc, st.Rest)

	default:
		return execResult{}, fmt.Errorf("unsupported statement %T", stmt)
	}
}

func (m *Machine) assign(target ast.Expr, v Value) error {
	switch t := target.(type) {
	case ast.VarRef:
		m.vars[t.Name] = v
		return nil
	case ast.ArrayRef:
		index, err := m.evalIndex(t)
		if err != nil {
			return err
		}
		return m.array(t.Name).Set(index, v)
	default:
		return fmt.Errorf("unsupported assignment target %T", target)
	}
}

// array returns the named array store, creating a dynamic one on first
// touch when no DIM declared it.
func (m *Machine) array(name rune) *Array {
	if a, ok := m.arrays[name]; ok {
		return a
	}
	a := newDynamicArray()
	m.arrays[name] = a
	return a
}

func (m *Machine) evalIndex(ref ast.ArrayRef) ([4]int, error) {
	var index [4]int
	for i, e := range ref.Index {
		v, err := m.eval(e)
		if err != nil {
			return index, err
		}
		index[i] = int(v.Int64())
	}
	return index, nil
}

func (m *Machine) eval(e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case ast.IntLit:
		return Int(ex.Value), nil
	case ast.FloatLit:
		return Float(ex.Value), nil
	case ast.VarRef:
		if v, ok := m.vars[ex.Name]; ok {
			return v, nil
		}
		return Int(0), nil
	case ast.ArrayRef:
		index, err := m.evalIndex(ex)
		if err != nil {
			return Value{}, err
		}
		return m.array(ex.Name).Get(index)
	case ast.BinaryExpr:
		left, err := m.eval(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := m.eval(ex.Right)
		if err != nil {
			return Value{}, err
		}
		switch ex.Op {
		case "+":
			return add(left, right), nil
		case "-":
			return sub(left, right), nil
		case "*":
			return mul(left, right), nil
		case "/":
			if right.Float64() == 0 {
				return Value{}, fmt.Errorf("division by zero")
			}
			return Float(left.Float64() / right.Float64()), nil
		default:
			return Value{}, fmt.Errorf("unsupported operator %q", ex.Op)
		}
	case ast.CallExpr:
		arg, err := m.eval(ex.Arg)
		if err != nil {
			return Value{}, err
		}
		switch ex.Fn {
		case ast.BuiltinInt:
			return Int(arg.Int64()), nil
		case ast.BuiltinRnd:
			return Float(m.rng.Float64() * arg.Float64()), nil
		default:
			return Value{}, fmt.Errorf("unsupported builtin %q", ex.Fn)
		}
	default:
		return Value{}, fmt.Errorf("unsupported expression %T", e)
	}
}

func (m *Machine) evalBool(e ast.BoolExpr) (bool, error) {
	switch b := e.(type) {
	case ast.Compare:
		left, err := m.eval(b.Left)
		if err != nil {
			return false, err
		}
		right, err := m.eval(b.Right)
		if err != nil {
			return false, err
		}
		l, r := left.Float64(), right.Float64()
		switch b.Op {
		case "=":
			return l == r, nil
		case "<>":
			return l != r, nil
		case "<=":
			return l <= r, nil
		case ">=":
			return l >= r, nil
		case "<":
			return l < r, nil
		case ">":
			return l > r, nil
		default:
			return false, fmt.Errorf("unsupported comparison %q", b.Op)
		}
	case ast.And:
		left, err := m.evalBool(b.Left)
		if err != nil || !left {
			return false, err
		}
		return m.evalBool(b.Right)
	case ast.Or:
		left, err := m.evalBool(b.Left)
		if err != nil || left {
			return left, err
		}
		return m.evalBool(b.Right)
	default:
		return false, fmt.Errorf("unsupported condition %T", e)
	}
}
