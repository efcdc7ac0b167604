// Package gdparse exposes the public entry points for parsing GDScript text
// into a concrete syntax tree (spec.md §6): ParseFile, ParseStatement,
// ParseStatements, ParseExpression, and ParseType, plus the Tree wrapper
// that carries the round-trip contract and the invalid-token surface.
package gdparse

import (
	"github.com/cwbudde/gdcst/internal/parse"
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/printer"
	"github.com/cwbudde/gdcst/pkg/settings"
	"github.com/cwbudde/gdcst/pkg/token"
	"github.com/cwbudde/gdcst/pkg/visitor"
)

// Tree wraps a parsed root node, as returned by ParseFile, with round-trip
// serialization and the invalid-token surface (spec.md §6 "Invalid-token
// surface").
type Tree struct {
	Root cst.Node
}

// Serialize reproduces the exact source text the tree was parsed from
// (modulo the \r normalization the round-trip contract allows).
func (t *Tree) Serialize() string {
	return printer.Serialize(t.Root)
}

// InvalidTokens returns every invalid-token leaf in the tree, in source
// order, each retaining its verbatim text — `all_invalid_tokens` in
// spec.md §6.
func (t *Tree) InvalidTokens() []token.Token {
	return visitor.InvalidTokens(t.Root)
}

// ParseFile parses a complete GDScript source file.
func ParseFile(text string, opts ...settings.Option) (*Tree, error) {
	s := settings.New(opts...)
	p := parse.New(text, s)
	file := p.ParseFile()
	if err := p.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return &Tree{Root: file}, nil
}

// ParseStatement parses exactly one statement from text; any trailing
// content beyond it is attached as invalid trivia on the returned node
// rather than rejected (spec.md §6).
func ParseStatement(text string, opts ...settings.Option) (cst.Stmt, error) {
	s := settings.New(opts...)
	p := parse.New(text, s)
	stmt := p.ParseStatement()
	if err := p.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return stmt, nil
}

// ParseStatements parses a sequence of statements governed by the off-side
// rule, as if text were the body of a file (threshold -1).
func ParseStatements(text string, opts ...settings.Option) ([]cst.Stmt, error) {
	s := settings.New(opts...)
	p := parse.New(text, s)
	stmts := p.ParseStatements()
	if err := p.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return stmts, nil
}

// ParseExpression parses a single expression from text.
func ParseExpression(text string, opts ...settings.Option) (cst.Expr, error) {
	s := settings.New(opts...)
	p := parse.New(text, s)
	expr := p.ParseExpression()
	if err := p.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return expr, nil
}

// ParseType parses a single type expression from text.
func ParseType(text string, opts ...settings.Option) (cst.TypeNode, error) {
	s := settings.New(opts...)
	p := parse.New(text, s)
	typ := p.ParseTypeTop()
	if err := p.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return typ, nil
}
