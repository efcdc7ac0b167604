package cst

import "github.com/cwbudde/gdcst/pkg/token"

// ExprKind is the closed set of expression node shapes (spec.md §4.5).
type ExprKind int

const (
	ExprBad ExprKind = iota // error-recovery placeholder: invalid tokens with no usable primary
	ExprIdent
	ExprInt
	ExprFloat
	ExprString
	ExprStringName // &"..." — Amp prefix + string
	ExprNodePath   // ^"..." — Caret prefix + string
	ExprGetNode    // $path  — Dollar prefix + dotted/slashed path
	ExprUniqueNode // %name  — Percent prefix + identifier
	ExprBool
	ExprNull
	ExprSelf
	ExprSuper
	ExprParen
	ExprArray
	ExprDict
	ExprLambda
	ExprUnary
	ExprBinary
	ExprTernary
	ExprMember
	ExprIndex
	ExprCall
)

// Expr is implemented by every expression node.
type Expr interface {
	Node
	ExprKind() ExprKind
}

type exprBase struct {
	base
	kind ExprKind
}

func (e *exprBase) ExprKind() ExprKind { return e.kind }

// LiteralExpr covers every expression that is exactly one literal or
// keyword token: identifiers, numbers, strings, true/false/null, self,
// super.
type LiteralExpr struct {
	exprBase
	Tok token.Token
}

func NewLiteralExpr(kind ExprKind, tok token.Token, form []Node) *LiteralExpr {
	n := &LiteralExpr{Tok: tok}
	n.kind = kind
	n.SetForm(form)
	return n
}

// PrefixedLiteralExpr covers the four sigil-prefixed literal forms:
// &"name" (string-name), ^"path" (node-path), $path (get-node — Value is
// the quoted path, or the leaf of the first identifier of a bare path; the
// full path is in Form()), %name (unique node).
type PrefixedLiteralExpr struct {
	exprBase
	Sigil token.Token // the &, ^, $, or % token
	Value Node        // the string literal / identifier-path that follows
}

func NewPrefixedLiteralExpr(kind ExprKind, sigil token.Token, value Node, form []Node) *PrefixedLiteralExpr {
	n := &PrefixedLiteralExpr{Sigil: sigil, Value: value}
	n.kind = kind
	n.SetForm(form)
	return n
}

// ParenExpr is a parenthesized expression: '(' expr ')'.
type ParenExpr struct {
	exprBase
	Inner Expr
}

func NewParenExpr(inner Expr, form []Node) *ParenExpr {
	n := &ParenExpr{Inner: inner}
	n.kind = ExprParen
	n.SetForm(form)
	return n
}

// ArrayExpr is an array literal: '[' elem (',' elem)* ','? ']'.
// Trailing commas attach to the list, not to the last element (spec.md
// §4.5 point 8) — they simply live in Form() between the last element and
// the closing bracket.
type ArrayExpr struct {
	exprBase
	Elements []Expr
}

func NewArrayExpr(elements []Expr, form []Node) *ArrayExpr {
	n := &ArrayExpr{Elements: elements}
	n.kind = ExprArray
	n.SetForm(form)
	return n
}

// DictEntry is one key/value pair of a dictionary literal. Sep records
// whichever separator actually appeared (':' or '=' — spec.md §4.5 point
// 7); mixing separator styles within one dictionary is permitted.
type DictEntry struct {
	base
	Key   Expr
	Sep   token.Token // Colon or Eq
	Value Expr
}

func NewDictEntry(key Expr, sep token.Token, value Expr, form []Node) *DictEntry {
	e := &DictEntry{Key: key, Sep: sep, Value: value}
	e.SetForm(form)
	return e
}

// DictExpr is a dictionary literal: '{' entry (',' entry)* ','? '}'.
type DictExpr struct {
	exprBase
	Entries []*DictEntry
}

func NewDictExpr(entries []*DictEntry, form []Node) *DictExpr {
	n := &DictExpr{Entries: entries}
	n.kind = ExprDict
	n.SetForm(form)
	return n
}

// Param is one parameter of a function/lambda header: name [':' type]
// [('='|':=') default].
type Param struct {
	base
	Name       token.Token
	Type       TypeNode
	Inferred   bool // ':=' was used instead of a separate type+'=' default
	Default    Expr
	HasDefault bool
}

func NewParam(name token.Token, typ TypeNode, inferred bool, def Expr, hasDefault bool, form []Node) *Param {
	p := &Param{Name: name, Type: typ, Inferred: inferred, Default: def, HasDefault: hasDefault}
	p.SetForm(form)
	return p
}

// LambdaExpr is an anonymous (optionally named) function expression:
// 'func' [ident]? '(' params ')' ['->' type]? ':' body. Body is either a
// *Block (multiline or inline-`;`-separated) per spec.md §4.4's uniform
// colon-body handling.
type LambdaExpr struct {
	exprBase
	Name    *token.Token // nil when anonymous
	Params  []*Param
	Return  TypeNode
	Body    *Block
}

func NewLambdaExpr(name *token.Token, params []*Param, ret TypeNode, body *Block, form []Node) *LambdaExpr {
	n := &LambdaExpr{Name: name, Params: params, Return: ret, Body: body}
	n.kind = ExprLambda
	n.SetForm(form)
	return n
}

// UnaryExpr is a prefix operator applied to an operand: -x, !x, ~x, not x,
// await x.
type UnaryExpr struct {
	exprBase
	Op      token.Token
	Operand Expr
}

func NewUnaryExpr(op token.Token, operand Expr, form []Node) *UnaryExpr {
	n := &UnaryExpr{Op: op, Operand: operand}
	n.kind = ExprUnary
	n.SetForm(form)
	return n
}

// BinaryExpr is every infix operator, including the comparators `is`, `as`,
// `in`, and the synthetic `not in` (IsNotIn=true, NotTok holding the `not`
// keyword — spec.md §4.5 point 6), plus assignment and compound-assignment
// operators.
type BinaryExpr struct {
	exprBase
	Left    Expr
	NotTok  *token.Token // set only when IsNotIn
	Op      token.Token
	IsNotIn bool
	Right   Expr
}

func NewBinaryExpr(left Expr, notTok *token.Token, op token.Token, isNotIn bool, right Expr, form []Node) *BinaryExpr {
	n := &BinaryExpr{Left: left, NotTok: notTok, Op: op, IsNotIn: isNotIn, Right: right}
	n.kind = ExprBinary
	n.SetForm(form)
	return n
}

// TernaryExpr is GDScript's `x if c else y` conditional expression,
// right-associative (spec.md §4.5 point 5).
type TernaryExpr struct {
	exprBase
	Then Expr
	Cond Expr
	Else Expr
}

func NewTernaryExpr(then, cond, els Expr, form []Node) *TernaryExpr {
	n := &TernaryExpr{Then: then, Cond: cond, Else: els}
	n.kind = ExprTernary
	n.SetForm(form)
	return n
}

// MemberExpr is a postfix member access: receiver '.' name.
type MemberExpr struct {
	exprBase
	Receiver Expr
	Name     token.Token
}

func NewMemberExpr(receiver Expr, name token.Token, form []Node) *MemberExpr {
	n := &MemberExpr{Receiver: receiver, Name: name}
	n.kind = ExprMember
	n.SetForm(form)
	return n
}

// IndexExpr is a postfix indexer: receiver '[' index ']'.
type IndexExpr struct {
	exprBase
	Receiver Expr
	Index    Expr
}

func NewIndexExpr(receiver, index Expr, form []Node) *IndexExpr {
	n := &IndexExpr{Receiver: receiver, Index: index}
	n.kind = ExprIndex
	n.SetForm(form)
	return n
}

// CallArg is one argument of a call-argument list. A named argument
// (`name = expr`) has NameTok set; otherwise it is a plain positional
// expression (spec.md §4.5 point 9).
type CallArg struct {
	base
	NameTok *token.Token
	Value   Expr
}

func NewCallArg(name *token.Token, value Expr, form []Node) *CallArg {
	a := &CallArg{NameTok: name, Value: value}
	a.SetForm(form)
	return a
}

// CallExpr is a postfix call: callee '(' args ')'.
type CallExpr struct {
	exprBase
	Callee Expr
	Args   []*CallArg
}

func NewCallExpr(callee Expr, args []*CallArg, form []Node) *CallExpr {
	n := &CallExpr{Callee: callee, Args: args}
	n.kind = ExprCall
	n.SetForm(form)
	return n
}

// BadExpr wraps a run of invalid tokens consumed while looking for a
// primary expression that never materialized — error recovery keeps the
// expression reader from looping forever on unparsable input while still
// attaching every character somewhere (spec.md §4.8, §7 category 1).
type BadExpr struct {
	exprBase
}

func NewBadExpr(form []Node) *BadExpr {
	n := &BadExpr{}
	n.kind = ExprBad
	n.SetForm(form)
	return n
}
