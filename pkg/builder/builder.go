// Package builder is a node-factory façade over pkg/cst for callers that
// construct trees programmatically instead of via internal/parse — code
// generators, test fixtures, and tree-rewriting tools. It mirrors the
// teacher's internal/parser.NodeBuilder in spirit (a single place that
// knows how to assemble a well-formed node) but adapted to this tree's
// shape: instead of stamping start/end source positions onto a mutable AST
// node via reflection, it stamps synthetic tokens and a minimal valid Form()
// onto an otherwise-identical cst node, so the result both type-checks
// against the rest of the package and serializes back to readable source
// via pkg/printer.
package builder

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// synthTok builds a zero-position token of the given kind and text — used
// for punctuation and keywords a caller doesn't need to individually place.
func synthTok(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: text}
}

func leaf(kind token.Kind, text string) *cst.Leaf {
	return cst.NewLeaf(synthTok(kind, text))
}

func space() *cst.Leaf { return leaf(token.Whitespace, " ") }
func newline() *cst.Leaf { return leaf(token.Newline, "\n") }

// Ident returns a bare identifier token, for use as a name wherever the cst
// API expects a token.Token (var/func/param names, member names, …).
func Ident(name string) token.Token {
	return synthTok(token.Ident, name)
}

// Int builds an integer literal expression.
func Int(text string) cst.Expr {
	tok := synthTok(token.Int, text)
	return cst.NewLiteralExpr(cst.ExprInt, tok, []cst.Node{cst.NewLeaf(tok)})
}

// Float builds a float literal expression.
func Float(text string) cst.Expr {
	tok := synthTok(token.Float, text)
	return cst.NewLiteralExpr(cst.ExprFloat, tok, []cst.Node{cst.NewLeaf(tok)})
}

// String builds a string literal expression; text is the verbatim token
// text including its surrounding quotes, whichever quote style they use.
func String(text string) cst.Expr {
	tok := synthTok(token.String, text)
	return cst.NewLiteralExpr(cst.ExprString, tok, []cst.Node{cst.NewLeaf(tok)})
}

// Bool builds a `true`/`false` literal expression.
func Bool(v bool) cst.Expr {
	kind, text := token.KwFalse, "false"
	if v {
		kind, text = token.KwTrue, "true"
	}
	tok := synthTok(kind, text)
	return cst.NewLiteralExpr(cst.ExprBool, tok, []cst.Node{cst.NewLeaf(tok)})
}

// Name builds a bare identifier expression referencing name.
func Name(name string) cst.Expr {
	tok := Ident(name)
	return cst.NewLiteralExpr(cst.ExprIdent, tok, []cst.Node{cst.NewLeaf(tok)})
}

// Member builds `receiver.name`.
func Member(receiver cst.Expr, name string) cst.Expr {
	nameTok := Ident(name)
	form := []cst.Node{receiver, leaf(token.Dot, "."), cst.NewLeaf(nameTok)}
	return cst.NewMemberExpr(receiver, nameTok, form)
}

// Call builds `callee(args...)`, each positional (unnamed).
func Call(callee cst.Expr, args ...cst.Expr) cst.Expr {
	form := []cst.Node{callee, leaf(token.LParen, "(")}
	callArgs := make([]*cst.CallArg, 0, len(args))
	for i, a := range args {
		if i > 0 {
			form = append(form, leaf(token.Comma, ","), space())
		}
		arg := cst.NewCallArg(nil, a, []cst.Node{a})
		callArgs = append(callArgs, arg)
		form = append(form, arg)
	}
	form = append(form, leaf(token.RParen, ")"))
	return cst.NewCallExpr(callee, callArgs, form)
}

// Binary builds `left op right` with single-space padding around op, e.g.
// Binary(Name("x"), token.Plus, "+", Int("1")) for `x + 1`.
func Binary(left cst.Expr, opKind token.Kind, opText string, right cst.Expr) cst.Expr {
	opTok := synthTok(opKind, opText)
	form := []cst.Node{left, space(), cst.NewLeaf(opTok), space(), right}
	return cst.NewBinaryExpr(left, nil, opTok, false, right, form)
}

// ExprStmt wraps an expression as a statement occupying its own line.
func ExprStmt(x cst.Expr) cst.Stmt {
	form := []cst.Node{x, newline()}
	return cst.NewExprStmt(x, form)
}

// VarDecl builds `var name = value` (no type annotation, no accessors).
func VarDecl(name string, value cst.Expr) cst.Stmt {
	nameTok := Ident(name)
	form := []cst.Node{
		leaf(token.KwVar, "var"), space(), cst.NewLeaf(nameTok),
		space(), leaf(token.Eq, "="), space(), value, newline(),
	}
	return cst.NewVarDeclStmt(nameTok, nil, false, value, true, nil, nil, false, form)
}

// Return builds `return value`.
func Return(value cst.Expr) cst.Stmt {
	form := []cst.Node{leaf(token.KwReturn, "return"), space(), value, newline()}
	return cst.NewReturnStmt(value, true, form)
}

// Block assembles stmts into a *cst.Block with no extra trivia beyond each
// statement's own form.
func Block(stmts ...cst.Stmt) *cst.Block {
	form := make([]cst.Node, len(stmts))
	for i, s := range stmts {
		form[i] = s
	}
	return cst.NewBlock(stmts, form)
}
