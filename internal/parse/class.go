package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// ParseFile reads an ordered header (attributes, tool, class_name, extends)
// followed by the ordered top-level member list (spec.md §4.7).
func (p *Parser) ParseFile() *cst.FileNode {
	if !p.enter() {
		return cst.NewFileNode(nil, nil, nil)
	}
	defer p.leave()

	var header []cst.Node
	var form []cst.Node

	prevThreshold := p.curThreshold
	p.curThreshold = -1
	defer func() { p.curThreshold = prevThreshold }()

	lt := newLoopTracker()
headerLoop:
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		if p.skipBlankLines(&form) {
			break
		}
		if p.current().Kind == token.EOF {
			break
		}

		var item cst.Node
		switch p.current().Kind {
		case token.At:
			item = p.parseAttribute()
		case token.KwTool:
			t, leaf := p.advance()
			item = cst.NewToolDecl(t, []cst.Node{leaf})
		case token.KwClassName:
			item = p.parseClassNameDecl()
		case token.KwExtends:
			item = p.parseExtendsDecl()
		default:
			break headerLoop
		}
		header = append(header, item)
		form = append(form, item)

		if p.current().Kind == token.Newline {
			_, nlLeaf := p.advance()
			form = append(form, nlLeaf)
		}
	}

	block := p.parseBlock(-1)
	form = append(form, block.Form()...)
	return cst.NewFileNode(header, block.Stmts, form)
}

// parseAttribute reads `@identifier ['(' args ')']` (spec.md §4.7), e.g.
// `@export`, `@export_range(0, 100)`, `@abstract`, `@icon("res://foo.svg")`.
func (p *Parser) parseAttribute() *cst.Attribute {
	if !p.enter() {
		return cst.NewAttribute(token.Token{}, token.Token{}, nil, nil)
	}
	defer p.leave()

	atTok, atLeaf := p.advance()
	form := []cst.Node{atLeaf}
	form = append(form, p.trivia()...)

	// A keyword immediately following `@` is still a valid attribute name
	// (`@abstract`, `@onready`, ...): GDScript's hard keywords are ordinary
	// identifiers in this position, not reserved out of it.
	if cur := p.current().Kind; cur != token.Ident && !cur.IsKeyword() {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewAttribute(atTok, token.Token{}, nil, form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)

	var args []*cst.CallArg
	if p.peekSignificant(0).Kind == token.LParen {
		form = append(form, p.trivia()...)
		_, lp := p.advance()
		form = append(form, lp)
		p.bracketDepth++

		lt := newLoopTracker()
		for {
			if p.failed() || p.tick(&lt) {
				break
			}
			lead := p.trivia()
			if k := p.current().Kind; k == token.RParen || k == token.EOF {
				form = append(form, lead...)
				break
			}
			form = append(form, lead...)

			val := p.parseExpr(LOWEST)
			arg := cst.NewCallArg(nil, val, []cst.Node{val})
			args = append(args, arg)
			form = append(form, arg)

			trailLead := p.trivia()
			if p.current().Kind == token.Comma {
				form = append(form, trailLead...)
				_, c := p.advance()
				form = append(form, c)
				continue
			}
			form = append(form, trailLead...)
			break
		}

		p.bracketDepth--
		if p.current().Kind == token.RParen {
			_, rp := p.advance()
			form = append(form, rp)
		} else {
			form = append(form, p.invalidRun(nil)...)
		}
	}
	return cst.NewAttribute(atTok, nameTok, args, form)
}

func (p *Parser) parseClassNameDecl() *cst.ClassNameDecl {
	tok, leaf := p.advance()
	form := []cst.Node{leaf}
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewClassNameDecl(tok, token.Token{}, form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)
	return cst.NewClassNameDecl(tok, nameTok, form)
}

func (p *Parser) parseExtendsDecl() *cst.ExtendsDecl {
	tok, leaf := p.advance()
	form := []cst.Node{leaf}
	form = append(form, p.trivia()...)

	if p.current().Kind == token.String {
		strTok, strLeaf := p.advance()
		form = append(form, strLeaf)
		return cst.NewExtendsDecl(tok, nil, &strTok, form)
	}
	typ := p.parseType()
	form = append(form, typ)
	return cst.NewExtendsDecl(tok, typ, nil, form)
}
