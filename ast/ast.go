package ast

// EndOfProgram is the successor sentinel for the last line of a program.
// Execution reaching a line whose Next is this value halts.
const EndOfProgram = -1

// Program is the directly executable form of a source listing: every line
// number maps to its parsed statement and the line number that follows it in
// ascending order. Built once by the parser, immutable afterwards.
type Program struct {
	Lines map[int]Line
	Entry int
}

type Line struct {
	Stmt Statement
	Next int
}

type Expr interface {
	isExpr()
}

type IntLit struct {
	Value int64
}

func (IntLit) isExpr() {}

type FloatLit struct {
	Value float64
}

func (FloatLit) isExpr() {}

// VarRef names a scalar variable. Variable names are single letters; arrays
// share the same namespace but are distinguished by node type.
type VarRef struct {
	Name rune
}

func (VarRef) isExpr() {}

// ArrayRef always carries exactly four index expressions. The parser pads
// missing trailing indices with IntLit{0} and truncates anything past four.
type ArrayRef struct {
	Name  rune
	Index [4]Expr
}

func (ArrayRef) isExpr() {}

// BinaryExpr covers the four arithmetic operators: "+", "-", "*", "/".
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}

// Builtin is the closed set of callable functions. There is deliberately no
// open-ended function namespace; the parser rejects anything else.
type Builtin string

const (
	BuiltinInt Builtin = "INT"
	BuiltinRnd Builtin = "RND"
)

type CallExpr struct {
	Fn  Builtin
	Arg Expr
}

func (CallExpr) isExpr() {}

// StrExpr is a PRINT formatting expression. It describes output shape only;
// rendering (tab stops, newline suppression) happens in the runtime.
type StrExpr interface {
	isStrExpr()
}

// StrLit holds the raw text between two quotes. There is no escape
// mechanism: the literal ends at the first quote after the opening one.
type StrLit struct {
	Value string
}

func (StrLit) isStrExpr() {}

// ToStr renders an arithmetic expression as text.
type ToStr struct {
	Expr Expr
}

func (ToStr) isStrExpr() {}

// TabCall jumps output to an absolute column.
type TabCall struct {
	Col int
}

func (TabCall) isStrExpr() {}

// Concat joins two fragments written with ";": rendered with no separator.
type Concat struct {
	Left  StrExpr
	Right StrExpr
}

func (Concat) isStrExpr() {}

// TabConcat joins two fragments written with ",": rendering advances to the
// next tab zone before the right part.
type TabConcat struct {
	Left  StrExpr
	Right StrExpr
}

func (TabConcat) isStrExpr() {}

// NoNewline wraps an expression followed by a dangling ";": the statement
// must not emit a trailing line break.
type NoNewline struct {
	Expr StrExpr
}

func (NoNewline) isStrExpr() {}

// TrailingTab wraps an expression followed by a dangling ",": output advances
// to the next tab zone instead of breaking the line.
type TrailingTab struct {
	Expr StrExpr
}

func (TrailingTab) isStrExpr() {}

type BoolExpr interface {
	isBoolExpr()
}

// Compare holds one of "=", "<>", "<=", ">=", "<", ">".
type Compare struct {
	Op    string
	Left  Expr
	Right Expr
}

func (Compare) isBoolExpr() {}

type And struct {
	Left  BoolExpr
	Right BoolExpr
}

func (And) isBoolExpr() {}

type Or struct {
	Left  BoolExpr
	Right BoolExpr
}

func (Or) isBoolExpr() {}

type Statement interface {
	isStatement()
}

// LetStmt assigns to a scalar variable or an array cell. Target is either
// VarRef or ArrayRef.
type LetStmt struct {
	Target Expr
	Value  Expr
}

func (LetStmt) isStatement() {}

type PrintStmt struct {
	Expr StrExpr
}

func (PrintStmt) isStatement() {}

type EndStmt struct{}

func (EndStmt) isStatement() {}

type GotoStmt struct {
	Line int
}

func (GotoStmt) isStatement() {}

// IfStmt jumps to Then when Cond holds; there is no ELSE arm.
type IfStmt struct {
	Cond BoolExpr
	Then int
}

func (IfStmt) isStatement() {}

type ForStmt struct {
	Var   rune
	Start Expr
	End   Expr
	Step  Expr
}

func (ForStmt) isStatement() {}

type NextStmt struct {
	Vars []rune
}

func (NextStmt) isStatement() {}

// InputStmt reads one value per target variable, optionally printing the
// prompt literal first.
type InputStmt struct {
	Prompt string
	Vars   []rune
}

func (InputStmt) isStatement() {}

type GosubStmt struct {
	Line int
}

func (GosubStmt) isStatement() {}

type ReturnStmt struct{}

func (ReturnStmt) isStatement() {}

// DimStmt declares array bounds. Each declaration reuses ArrayRef with the
// four index slots holding the bound expressions.
type DimStmt struct {
	Decls []ArrayRef
}

func (DimStmt) isStatement() {}

type RemStmt struct{}

func (RemStmt) isStatement() {}

// OnGotoStmt selects a 1-based entry of Targets by the variable's value.
// Resolution is deferred to execution.
type OnGotoStmt struct {
	Var     rune
	Targets []int
}

func (OnGotoStmt) isStatement() {}

// SeqStmt chains two statements separated by ":" on one source line. Chains
// associate to the right: a:b:c is Seq(a, Seq(b, c)).
type SeqStmt struct {
	First Statement
	Rest  Statement
}

func (SeqStmt) isStatement() {}
