package cst

import "github.com/cwbudde/gdcst/pkg/token"

// StmtKind is the closed set of statement shapes (spec.md §4.6).
type StmtKind int

const (
	StmtBad StmtKind = iota
	StmtVarDecl
	StmtConstDecl
	StmtSignal
	StmtEnum
	StmtFunc
	StmtClass // inner class
	StmtIf
	StmtWhile
	StmtFor
	StmtMatch
	StmtReturn
	StmtPass
	StmtBreak
	StmtContinue
	StmtBreakpoint
	StmtExpr
)

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	StmtKind() StmtKind
}

type stmtBase struct {
	base
	kind StmtKind
}

func (s *stmtBase) StmtKind() StmtKind { return s.kind }

// Block is the uniform body of every colon-introduced construct: either one
// or more `;`-separated statements on the header's own line, or a newline
// followed by an indented block of statements (spec.md §4.4 "Colon-
// introduced bodies"). Both are represented identically; which one was
// written is recoverable from the trivia in Form() (a Newline token right
// after the colon vs none).
type Block struct {
	base
	Stmts []Stmt
}

func NewBlock(stmts []Stmt, form []Node) *Block {
	b := &Block{Stmts: stmts}
	b.SetForm(form)
	return b
}

// PropertyAccessor is one `get:`/`set(value):` clause attached inline to a
// var declaration (spec.md §4.6 "optional inline ':' introducing property
// accessors").
type PropertyAccessor struct {
	base
	Kind  token.Token // KwGet or KwSet
	Param *token.Token // setter's parameter name, e.g. `set(v):`
	Body  *Block
}

func NewPropertyAccessor(kind token.Token, param *token.Token, body *Block, form []Node) *PropertyAccessor {
	a := &PropertyAccessor{Kind: kind, Param: param, Body: body}
	a.SetForm(form)
	return a
}

// VarDeclStmt is `var name [: Type] [= value]` or `var name := value`, with
// optional `: get/set accessors`.
type VarDeclStmt struct {
	stmtBase
	Name       token.Token
	Type       TypeNode
	Inferred   bool
	Value      Expr
	HasValue   bool
	Getter     *PropertyAccessor
	Setter     *PropertyAccessor
	Onready    bool
}

func NewVarDeclStmt(name token.Token, typ TypeNode, inferred bool, value Expr, hasValue bool, getter, setter *PropertyAccessor, onready bool, form []Node) *VarDeclStmt {
	n := &VarDeclStmt{Name: name, Type: typ, Inferred: inferred, Value: value, HasValue: hasValue, Getter: getter, Setter: setter, Onready: onready}
	n.kind = StmtVarDecl
	n.SetForm(form)
	return n
}

// ConstDeclStmt is `const name [: Type] = value`.
type ConstDeclStmt struct {
	stmtBase
	Name  token.Token
	Type  TypeNode
	Value Expr
}

func NewConstDeclStmt(name token.Token, typ TypeNode, value Expr, form []Node) *ConstDeclStmt {
	n := &ConstDeclStmt{Name: name, Type: typ, Value: value}
	n.kind = StmtConstDecl
	n.SetForm(form)
	return n
}

// SignalStmt is `signal name [(params)]`.
type SignalStmt struct {
	stmtBase
	Name   token.Token
	Params []*Param
}

func NewSignalStmt(name token.Token, params []*Param, form []Node) *SignalStmt {
	n := &SignalStmt{Name: name, Params: params}
	n.kind = StmtSignal
	n.SetForm(form)
	return n
}

// EnumEntry is one `Name [= value]` member of an enum.
type EnumEntry struct {
	base
	Name     token.Token
	Value    Expr
	HasValue bool
}

func NewEnumEntry(name token.Token, value Expr, hasValue bool, form []Node) *EnumEntry {
	e := &EnumEntry{Name: name, Value: value, HasValue: hasValue}
	e.SetForm(form)
	return e
}

// EnumStmt is `enum [Name] { entry, entry, ... }`.
type EnumStmt struct {
	stmtBase
	Name    *token.Token
	Entries []*EnumEntry
}

func NewEnumStmt(name *token.Token, entries []*EnumEntry, form []Node) *EnumStmt {
	n := &EnumStmt{Name: name, Entries: entries}
	n.kind = StmtEnum
	n.SetForm(form)
	return n
}

// FuncStmt is a named function/method declaration. Body is nil for an
// abstract method header (`@abstract` `func` header with no trailing
// colon — spec.md §9 Open Questions), in which case the header simply ends
// at the statement terminator.
type FuncStmt struct {
	stmtBase
	Static bool
	Name   token.Token
	Params []*Param
	Return TypeNode
	Body   *Block
}

func NewFuncStmt(static bool, name token.Token, params []*Param, ret TypeNode, body *Block, form []Node) *FuncStmt {
	n := &FuncStmt{Static: static, Name: name, Params: params, Return: ret, Body: body}
	n.kind = StmtFunc
	n.SetForm(form)
	return n
}

// ClassStmt is an inner `class Name [extends Base]: members`.
type ClassStmt struct {
	stmtBase
	Name    token.Token
	Extends TypeNode
	Members []Stmt
}

func NewClassStmt(name token.Token, extends TypeNode, members []Stmt, form []Node) *ClassStmt {
	n := &ClassStmt{Name: name, Extends: extends, Members: members}
	n.kind = StmtClass
	n.SetForm(form)
	return n
}

// ElifClause is one `elif cond: body` arm of an if-statement.
type ElifClause struct {
	base
	Cond Expr
	Body *Block
}

func NewElifClause(cond Expr, body *Block, form []Node) *ElifClause {
	e := &ElifClause{Cond: cond, Body: body}
	e.SetForm(form)
	return e
}

// IfStmt is `if cond: body (elif cond: body)* (else: body)?`.
type IfStmt struct {
	stmtBase
	Cond  Expr
	Body  *Block
	Elifs []*ElifClause
	Else  *Block
}

func NewIfStmt(cond Expr, body *Block, elifs []*ElifClause, els *Block, form []Node) *IfStmt {
	n := &IfStmt{Cond: cond, Body: body, Elifs: elifs, Else: els}
	n.kind = StmtIf
	n.SetForm(form)
	return n
}

// WhileStmt is `while cond: body`.
type WhileStmt struct {
	stmtBase
	Cond Expr
	Body *Block
}

func NewWhileStmt(cond Expr, body *Block, form []Node) *WhileStmt {
	n := &WhileStmt{Cond: cond, Body: body}
	n.kind = StmtWhile
	n.SetForm(form)
	return n
}

// ForStmt is `for name [: Type] in collection: body`.
type ForStmt struct {
	stmtBase
	Name       token.Token
	VarType    TypeNode
	Collection Expr
	Body       *Block
}

func NewForStmt(name token.Token, varType TypeNode, collection Expr, body *Block, form []Node) *ForStmt {
	n := &ForStmt{Name: name, VarType: varType, Collection: collection, Body: body}
	n.kind = StmtFor
	n.SetForm(form)
	return n
}

// MatchStmt is `match subject: case*`.
type MatchStmt struct {
	stmtBase
	Subject Expr
	Cases   []*MatchCase
}

func NewMatchStmt(subject Expr, cases []*MatchCase, form []Node) *MatchStmt {
	n := &MatchStmt{Subject: subject, Cases: cases}
	n.kind = StmtMatch
	n.SetForm(form)
	return n
}

// ReturnStmt is `return [value]`.
type ReturnStmt struct {
	stmtBase
	Value    Expr
	HasValue bool
}

func NewReturnStmt(value Expr, hasValue bool, form []Node) *ReturnStmt {
	n := &ReturnStmt{Value: value, HasValue: hasValue}
	n.kind = StmtReturn
	n.SetForm(form)
	return n
}

// PassStmt, BreakStmt, ContinueStmt, BreakpointStmt are bare keyword
// statements.
type (
	PassStmt       struct{ stmtBase; Tok token.Token }
	BreakStmt      struct{ stmtBase; Tok token.Token }
	ContinueStmt   struct{ stmtBase; Tok token.Token }
	BreakpointStmt struct{ stmtBase; Tok token.Token }
)

func NewPassStmt(tok token.Token, form []Node) *PassStmt {
	n := &PassStmt{Tok: tok}
	n.kind = StmtPass
	n.SetForm(form)
	return n
}

func NewBreakStmt(tok token.Token, form []Node) *BreakStmt {
	n := &BreakStmt{Tok: tok}
	n.kind = StmtBreak
	n.SetForm(form)
	return n
}

func NewContinueStmt(tok token.Token, form []Node) *ContinueStmt {
	n := &ContinueStmt{Tok: tok}
	n.kind = StmtContinue
	n.SetForm(form)
	return n
}

func NewBreakpointStmt(tok token.Token, form []Node) *BreakpointStmt {
	n := &BreakpointStmt{Tok: tok}
	n.kind = StmtBreakpoint
	n.SetForm(form)
	return n
}

// ExprStmt is a bare expression used as a statement: calls, assignments
// (assignment is the lowest-precedence infix operator, spec.md §4.5 point
// 4), await-expressions, etc.
type ExprStmt struct {
	stmtBase
	X Expr
}

func NewExprStmt(x Expr, form []Node) *ExprStmt {
	n := &ExprStmt{X: x}
	n.kind = StmtExpr
	n.SetForm(form)
	return n
}

// BadStmt wraps invalid tokens consumed while looking for a statement that
// never materialized.
type BadStmt struct {
	stmtBase
}

func NewBadStmt(form []Node) *BadStmt {
	n := &BadStmt{}
	n.kind = StmtBad
	n.SetForm(form)
	return n
}
