package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// formSetter is satisfied by every concrete cst node (they all embed the
// shared base/exprBase/stmtBase/typeBase struct, which promotes SetForm).
// Used here to splice leading blank-line trivia and ParseStatement's
// trailing-content capture into an already-built node's form.
type formSetter interface {
	SetForm([]cst.Node)
}

func prependForm(n formSetter, lead []cst.Node, form cst.Node) {
	if len(lead) == 0 {
		return
	}
	n.SetForm(append(lead, form.Form()...))
}

// ParseStatement reads exactly one statement from the input; any content
// remaining after it (valid-looking or not) is attached to the returned
// node as invalid trailing trivia rather than rejected (spec.md §6).
func (p *Parser) ParseStatement() cst.Stmt {
	if !p.enter() {
		return cst.NewBadStmt(nil)
	}
	defer p.leave()

	var lead []cst.Node
	p.skipBlankLines(&lead)
	lead = append(lead, p.trivia()...)

	if p.current().Kind == token.EOF {
		return cst.NewBadStmt(lead)
	}

	stmt := p.parseStmt()
	if fs, ok := stmt.(formSetter); ok {
		prependForm(fs, lead, stmt)
	}

	var trailing []cst.Node
	trailing = append(trailing, p.trivia()...)
	lt := newLoopTracker()
	for p.current().Kind != token.EOF {
		if p.failed() || p.tick(&lt) {
			break
		}
		trailing = append(trailing, p.invalidRun(nil)...)
		trailing = append(trailing, p.trivia()...)
	}
	if len(trailing) > 0 {
		if fs, ok := stmt.(formSetter); ok {
			fs.SetForm(append(stmt.Form(), trailing...))
		}
	}
	return stmt
}

// ParseStatements reads a sequence of statements governed by the off-side
// rule, as if the input were the body of a file.
func (p *Parser) ParseStatements() []cst.Stmt {
	block := p.parseBlock(-1)
	return block.Stmts
}

// ParseExpression reads a single expression from the input.
func (p *Parser) ParseExpression() cst.Expr {
	if !p.enter() {
		return cst.NewBadExpr(nil)
	}
	defer p.leave()

	var lead []cst.Node
	p.skipBlankLines(&lead)
	lead = append(lead, p.trivia()...)

	expr := p.parseExpr(LOWEST)
	if fs, ok := expr.(formSetter); ok {
		prependForm(fs, lead, expr)
	}
	return expr
}

// ParseTypeTop reads a single type expression from the input. Named
// distinctly from the internal parseType reader it wraps, which is also
// called mid-statement (e.g. for `var x: T`, `extends T`).
func (p *Parser) ParseTypeTop() cst.TypeNode {
	if !p.enter() {
		return cst.NewBadType(nil)
	}
	defer p.leave()

	var lead []cst.Node
	p.skipBlankLines(&lead)
	lead = append(lead, p.trivia()...)

	typ := p.parseType()
	if fs, ok := typ.(formSetter); ok {
		prependForm(fs, lead, typ)
	}
	return typ
}
