package cst

import "github.com/cwbudde/gdcst/pkg/token"

// PatternKind is the closed set of match-case pattern shapes (spec.md
// §4.6).
type PatternKind int

const (
	PatternBad PatternKind = iota
	PatternWildcard  // _
	PatternBinding   // var x
	PatternExpr      // any expression used for equality (literal, enum const, array/dict literal used as a value pattern)
	PatternArray     // [a, b, ..]
	PatternDict      // {k: v, ..}
)

// Pattern is implemented by every match-case pattern node.
type Pattern interface {
	Node
	PatternKind() PatternKind
}

type patternBase struct {
	base
	kind PatternKind
}

func (p *patternBase) PatternKind() PatternKind { return p.kind }

// WildcardPattern matches anything: `_`.
type WildcardPattern struct {
	patternBase
	Tok token.Token
}

func NewWildcardPattern(tok token.Token, form []Node) *WildcardPattern {
	n := &WildcardPattern{Tok: tok}
	n.kind = PatternWildcard
	n.SetForm(form)
	return n
}

// BindingPattern binds the matched value to a new variable: `var x`.
type BindingPattern struct {
	patternBase
	Name token.Token
}

func NewBindingPattern(name token.Token, form []Node) *BindingPattern {
	n := &BindingPattern{Name: name}
	n.kind = PatternBinding
	n.SetForm(form)
	return n
}

// ExprPattern matches by value equality against an arbitrary expression
// (a literal, an enum-qualified constant, a bare identifier naming a
// constant in scope, …).
type ExprPattern struct {
	patternBase
	Value Expr
}

func NewExprPattern(value Expr, form []Node) *ExprPattern {
	n := &ExprPattern{Value: value}
	n.kind = PatternExpr
	n.SetForm(form)
	return n
}

// ArrayPattern destructures an array value. Rest is true when the pattern
// ends with the `..` rest marker, in which case RestTok holds it.
type ArrayPattern struct {
	patternBase
	Elements []Pattern
	Rest     bool
	RestTok  *token.Token
}

func NewArrayPattern(elements []Pattern, rest bool, restTok *token.Token, form []Node) *ArrayPattern {
	n := &ArrayPattern{Elements: elements, Rest: rest, RestTok: restTok}
	n.kind = PatternArray
	n.SetForm(form)
	return n
}

// DictPatternEntry is one key:pattern pair of a dictionary pattern.
type DictPatternEntry struct {
	base
	Key   Expr
	Value Pattern
}

func NewDictPatternEntry(key Expr, value Pattern, form []Node) *DictPatternEntry {
	e := &DictPatternEntry{Key: key, Value: value}
	e.SetForm(form)
	return e
}

// DictPattern destructures a dictionary value, optionally ending in `..`.
type DictPattern struct {
	patternBase
	Entries []*DictPatternEntry
	Rest    bool
	RestTok *token.Token
}

func NewDictPattern(entries []*DictPatternEntry, rest bool, restTok *token.Token, form []Node) *DictPattern {
	n := &DictPattern{Entries: entries, Rest: rest, RestTok: restTok}
	n.kind = PatternDict
	n.SetForm(form)
	return n
}

// BadPattern wraps invalid tokens consumed while looking for a pattern.
type BadPattern struct {
	patternBase
}

func NewBadPattern(form []Node) *BadPattern {
	n := &BadPattern{}
	n.kind = PatternBad
	n.SetForm(form)
	return n
}

// MatchCase is one `pattern, pattern2 [when guard]: body` arm of a match
// statement. Multiple comma-separated patterns are alternatives within one
// case (spec.md §4.6).
type MatchCase struct {
	base
	Patterns []Pattern
	When     Expr // nil if no guard
	Body     *Block
}

func NewMatchCase(patterns []Pattern, when Expr, body *Block, form []Node) *MatchCase {
	c := &MatchCase{Patterns: patterns, When: when, Body: body}
	c.SetForm(form)
	return c
}
