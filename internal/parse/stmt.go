package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// parseStmt reads one statement (spec.md §4.6), dispatching on the leading
// keyword; anything else is a bare expression statement.
func (p *Parser) parseStmt() cst.Stmt {
	if !p.enter() {
		return cst.NewBadStmt(nil)
	}
	defer p.leave()

	form := p.trivia()
	switch p.current().Kind {
	case token.KwVar:
		return p.parseVarDecl(form, false)
	case token.KwOnready:
		_, onreadyLeaf := p.advance()
		form = append(form, onreadyLeaf)
		form = append(form, p.trivia()...)
		if p.current().Kind == token.KwVar {
			return p.parseVarDecl(form, true)
		}
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	case token.KwConst:
		return p.parseConstDecl(form)
	case token.KwSignal:
		return p.parseSignal(form)
	case token.KwEnum:
		return p.parseEnum(form)
	case token.KwStatic:
		_, staticLeaf := p.advance()
		form = append(form, staticLeaf)
		form = append(form, p.trivia()...)
		if p.current().Kind == token.KwFunc {
			return p.parseFunc(form, true)
		}
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	case token.KwFunc:
		return p.parseFunc(form, false)
	case token.KwClass:
		return p.parseClassStmt(form)
	case token.KwIf:
		return p.parseIf(form)
	case token.KwWhile:
		return p.parseWhile(form)
	case token.KwFor:
		return p.parseFor(form)
	case token.KwMatch:
		return p.parseMatch(form)
	case token.KwReturn:
		return p.parseReturn(form)
	case token.KwPass:
		t, leaf := p.advance()
		return cst.NewPassStmt(t, append(form, leaf))
	case token.KwBreak:
		t, leaf := p.advance()
		return cst.NewBreakStmt(t, append(form, leaf))
	case token.KwContinue:
		t, leaf := p.advance()
		return cst.NewContinueStmt(t, append(form, leaf))
	case token.KwBreakpoint:
		t, leaf := p.advance()
		return cst.NewBreakpointStmt(t, append(form, leaf))
	default:
		expr := p.parseExpr(LOWEST)
		form = append(form, expr)
		return cst.NewExprStmt(expr, form)
	}
}

// parseVarDecl reads `var name [':' type] ['=' value]` or `var name ':=' value`,
// either followed by an optional `':' accessors`
// (spec.md §4.6). The `var` keyword is the current token; onready records
// whether a preceding `onready` keyword was already consumed by the caller.
func (p *Parser) parseVarDecl(form []cst.Node, onready bool) cst.Stmt {
	_, varLeaf := p.advance()
	form = append(form, varLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)
	form = append(form, p.trivia()...)

	var typ cst.TypeNode
	inferred := false
	switch p.current().Kind {
	case token.Colon:
		_, colonLeaf := p.advance()
		form = append(form, colonLeaf)
		form = append(form, p.trivia()...)
		typ = p.parseType()
		form = append(form, typ)
		form = append(form, p.trivia()...)
	case token.Assign:
		inferred = true
		_, assignLeaf := p.advance()
		form = append(form, assignLeaf)
		form = append(form, p.trivia()...)
	}

	var value cst.Expr
	hasValue := false
	if inferred || p.current().Kind == token.Eq {
		hasValue = true
		if !inferred {
			_, eqLeaf := p.advance()
			form = append(form, eqLeaf)
			form = append(form, p.trivia()...)
		}
		value = p.parseExpr(LOWEST)
		form = append(form, value)
		form = append(form, p.trivia()...)
	}

	var getter, setter *cst.PropertyAccessor
	if p.current().Kind == token.Colon {
		getter, setter = p.parsePropertyAccessors(&form)
	}

	return cst.NewVarDeclStmt(nameTok, typ, inferred, value, hasValue, getter, setter, onready, form)
}

// parsePropertyAccessors reads the inline `:` block of `get:`/`set(value):`
// clauses attached to a var declaration (spec.md §4.6). Grounded on the
// same indentation mechanics as parseBlock, but specialized: get/set are
// not members of the closed Stmt set, so they get their own small reader
// rather than going through parseStmt.
func (p *Parser) parsePropertyAccessors(form *[]cst.Node) (getter, setter *cst.PropertyAccessor) {
	_, colonLeaf := p.advance()
	*form = append(*form, colonLeaf)
	*form = append(*form, p.trivia()...)

	if p.current().Kind != token.Newline {
		*form = append(*form, p.invalidRun(nil)...)
		return nil, nil
	}
	_, nlLeaf := p.advance()
	*form = append(*form, nlLeaf)

	threshold := p.currentBlockThreshold()
	prevThreshold := p.curThreshold
	p.curThreshold = threshold
	defer func() { p.curThreshold = prevThreshold }()

	intrinsic := -1
	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		if p.skipBlankLines(form) {
			break
		}
		if p.current().Kind == token.EOF {
			break
		}

		width := p.lineIndentWidth()
		if intrinsic == -1 {
			if width <= threshold {
				break
			}
			intrinsic = width
			p.curThreshold = intrinsic
		} else if width != intrinsic {
			break
		}

		lead := p.trivia()
		*form = append(*form, lead...)

		kTok := p.current()
		if kTok.Kind != token.KwGet && kTok.Kind != token.KwSet {
			*form = append(*form, p.invalidRun(nil)...)
			continue
		}
		kTok, kLeaf := p.advance()
		accForm := []cst.Node{kLeaf}

		var param *token.Token
		if kTok.Kind == token.KwSet {
			accForm = append(accForm, p.trivia()...)
			if p.current().Kind == token.LParen {
				_, lpLeaf := p.advance()
				accForm = append(accForm, lpLeaf)
				accForm = append(accForm, p.trivia()...)
				if p.current().Kind == token.Ident {
					pt, pLeaf := p.advance()
					param = &pt
					accForm = append(accForm, pLeaf)
				}
				accForm = append(accForm, p.trivia()...)
				if p.current().Kind == token.RParen {
					_, rpLeaf := p.advance()
					accForm = append(accForm, rpLeaf)
				} else {
					accForm = append(accForm, p.invalidRun(nil)...)
				}
			}
		}

		var body *cst.Block
		if p.current().Kind == token.Colon {
			body = p.parseColonBody()
			accForm = append(accForm, body)
		} else {
			accForm = append(accForm, p.invalidRun(nil)...)
		}

		acc := cst.NewPropertyAccessor(kTok, param, body, accForm)
		*form = append(*form, acc)
		if kTok.Kind == token.KwGet {
			getter = acc
		} else {
			setter = acc
		}

		if p.current().Kind == token.Newline {
			_, t := p.advance()
			*form = append(*form, t)
		}
	}
	return getter, setter
}

// parseConstDecl reads `const name [':' type] '=' value`.
func (p *Parser) parseConstDecl(form []cst.Node) cst.Stmt {
	_, constLeaf := p.advance()
	form = append(form, constLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)
	form = append(form, p.trivia()...)

	var typ cst.TypeNode
	if p.current().Kind == token.Colon {
		_, colonLeaf := p.advance()
		form = append(form, colonLeaf)
		form = append(form, p.trivia()...)
		typ = p.parseType()
		form = append(form, typ)
		form = append(form, p.trivia()...)
	}

	var value cst.Expr
	if p.current().Kind == token.Eq {
		_, eqLeaf := p.advance()
		form = append(form, eqLeaf)
		form = append(form, p.trivia()...)
		value = p.parseExpr(LOWEST)
		form = append(form, value)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewConstDeclStmt(nameTok, typ, value, form)
}

// parseSignal reads `signal name ['(' params ')']`.
func (p *Parser) parseSignal(form []cst.Node) cst.Stmt {
	_, sigLeaf := p.advance()
	form = append(form, sigLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)

	var params []*cst.Param
	if p.peekSignificant(0).Kind == token.LParen {
		form = append(form, p.trivia()...)
		var pform []cst.Node
		params, pform = p.parseParamList()
		form = append(form, pform...)
	}
	return cst.NewSignalStmt(nameTok, params, form)
}

// parseEnum reads `enum [Name] '{' entry (',' entry)* ','? '}'`.
func (p *Parser) parseEnum(form []cst.Node) cst.Stmt {
	_, enumLeaf := p.advance()
	form = append(form, enumLeaf)
	form = append(form, p.trivia()...)

	var name *token.Token
	if p.current().Kind == token.Ident && p.peekSignificant(1).Kind == token.LBrace {
		nt, nLeaf := p.advance()
		name = &nt
		form = append(form, nLeaf)
		form = append(form, p.trivia()...)
	}

	if p.current().Kind != token.LBrace {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewEnumStmt(name, nil, form)
	}
	_, lb := p.advance()
	form = append(form, lb)
	p.bracketDepth++

	var entries []*cst.EnumEntry
	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		lead := p.trivia()
		if k := p.current().Kind; k == token.RBrace || k == token.EOF {
			form = append(form, lead...)
			break
		}
		form = append(form, lead...)

		if p.current().Kind != token.Ident {
			bad := p.invalidRun(func(k token.Kind) bool { return k == token.Comma || k == token.RBrace })
			form = append(form, bad...)
			if p.current().Kind == token.Comma {
				_, c := p.advance()
				form = append(form, c)
				continue
			}
			break
		}
		entryNameTok, entryNameLeaf := p.advance()
		var eform []cst.Node
		eform = append(eform, entryNameLeaf)
		eform = append(eform, p.trivia()...)

		var value cst.Expr
		hasValue := false
		if p.current().Kind == token.Eq {
			hasValue = true
			_, eqLeaf := p.advance()
			eform = append(eform, eqLeaf)
			eform = append(eform, p.trivia()...)
			value = p.parseExpr(LOWEST)
			eform = append(eform, value)
		}
		entry := cst.NewEnumEntry(entryNameTok, value, hasValue, eform)
		entries = append(entries, entry)
		form = append(form, entry)

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
	if p.current().Kind == token.RBrace {
		_, rb := p.advance()
		form = append(form, rb)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewEnumStmt(name, entries, form)
}

// parseFunc reads a named function/method declaration. A missing colon
// leaves Body nil: an abstract method header (spec.md §4.7).
func (p *Parser) parseFunc(form []cst.Node, static bool) cst.Stmt {
	_, funcLeaf := p.advance()
	form = append(form, funcLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)
	form = append(form, p.trivia()...)

	var params []*cst.Param
	if p.current().Kind == token.LParen {
		var pform []cst.Node
		params, pform = p.parseParamList()
		form = append(form, pform...)
		form = append(form, p.trivia()...)
	} else {
		form = append(form, p.invalidRun(func(k token.Kind) bool { return k == token.Colon || k == token.Arrow })...)
	}

	var ret cst.TypeNode
	if p.current().Kind == token.Arrow {
		_, arrowLeaf := p.advance()
		form = append(form, arrowLeaf)
		form = append(form, p.trivia()...)
		ret = p.parseType()
		form = append(form, ret)
		form = append(form, p.trivia()...)
	}

	var body *cst.Block
	if p.current().Kind == token.Colon {
		body = p.parseColonBody()
		form = append(form, body)
	}
	return cst.NewFuncStmt(static, nameTok, params, ret, body, form)
}

// parseClassStmt reads an inner `class Name ['extends' Base] ':' members`.
func (p *Parser) parseClassStmt(form []cst.Node) cst.Stmt {
	_, classLeaf := p.advance()
	form = append(form, classLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)
	form = append(form, p.trivia()...)

	var extends cst.TypeNode
	if p.current().Kind == token.KwExtends {
		_, extLeaf := p.advance()
		form = append(form, extLeaf)
		form = append(form, p.trivia()...)
		extends = p.parseType()
		form = append(form, extends)
		form = append(form, p.trivia()...)
	}

	var members []cst.Stmt
	if p.current().Kind == token.Colon {
		body := p.parseColonBody()
		members = body.Stmts
		form = append(form, body)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewClassStmt(nameTok, extends, members, form)
}

// parseIf reads `if cond: body (elif cond: body)* (else: body)?`. elif/else
// only attach when found at the same indentation as the `if` itself
// (matchesAtThreshold), so an out-dented `elif` belongs to an enclosing
// construct instead.
func (p *Parser) parseIf(form []cst.Node) cst.Stmt {
	_, ifLeaf := p.advance()
	form = append(form, ifLeaf)
	form = append(form, p.trivia()...)

	cond := p.parseExpr(LOWEST)
	form = append(form, cond)
	form = append(form, p.trivia()...)

	var body *cst.Block
	if p.current().Kind == token.Colon {
		body = p.parseColonBody()
		form = append(form, body)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}

	var elifs []*cst.ElifClause
	lt := newLoopTracker()
	for p.matchesAtThreshold(token.KwElif) {
		if p.failed() || p.tick(&lt) {
			break
		}
		lead := p.trivia()
		_, elifLeaf := p.advance()
		eform := append(lead, elifLeaf)
		eform = append(eform, p.trivia()...)
		econd := p.parseExpr(LOWEST)
		eform = append(eform, econd)
		eform = append(eform, p.trivia()...)
		var ebody *cst.Block
		if p.current().Kind == token.Colon {
			ebody = p.parseColonBody()
			eform = append(eform, ebody)
		} else {
			eform = append(eform, p.invalidRun(nil)...)
		}
		elif := cst.NewElifClause(econd, ebody, eform)
		elifs = append(elifs, elif)
		form = append(form, elif)
	}

	var els *cst.Block
	if p.matchesAtThreshold(token.KwElse) {
		lead := p.trivia()
		_, elseLeaf := p.advance()
		form = append(form, lead...)
		form = append(form, elseLeaf)
		form = append(form, p.trivia()...)
		if p.current().Kind == token.Colon {
			els = p.parseColonBody()
			form = append(form, els)
		} else {
			form = append(form, p.invalidRun(nil)...)
		}
	}

	return cst.NewIfStmt(cond, body, elifs, els, form)
}

// matchesAtThreshold peeks whether the next non-blank line sits at exactly
// the current block's intrinsic indentation and starts with kind, without
// consuming anything.
func (p *Parser) matchesAtThreshold(kind token.Kind) bool {
	mark := p.cur.Mark()
	defer p.cur.ResetTo(mark)

	var discard []cst.Node
	if p.skipBlankLines(&discard) {
		return false
	}
	if p.current().Kind == token.EOF {
		return false
	}
	if p.lineIndentWidth() != p.curThreshold {
		return false
	}
	if p.cur.Current().Kind == token.Whitespace {
		p.cur.Advance()
	}
	return p.cur.Current().Kind == kind
}

// parseWhile reads `while cond: body`.
func (p *Parser) parseWhile(form []cst.Node) cst.Stmt {
	_, whileLeaf := p.advance()
	form = append(form, whileLeaf)
	form = append(form, p.trivia()...)

	cond := p.parseExpr(LOWEST)
	form = append(form, cond)
	form = append(form, p.trivia()...)

	var body *cst.Block
	if p.current().Kind == token.Colon {
		body = p.parseColonBody()
		form = append(form, body)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewWhileStmt(cond, body, form)
}

// parseFor reads `for name [':' Type] 'in' collection ':' body`.
func (p *Parser) parseFor(form []cst.Node) cst.Stmt {
	_, forLeaf := p.advance()
	form = append(form, forLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadStmt(form)
	}
	nameTok, nameLeaf := p.advance()
	form = append(form, nameLeaf)
	form = append(form, p.trivia()...)

	var varType cst.TypeNode
	if p.current().Kind == token.Colon {
		_, colonLeaf := p.advance()
		form = append(form, colonLeaf)
		form = append(form, p.trivia()...)
		varType = p.parseType()
		form = append(form, varType)
		form = append(form, p.trivia()...)
	}

	if p.current().Kind == token.KwIn {
		_, inLeaf := p.advance()
		form = append(form, inLeaf)
		form = append(form, p.trivia()...)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}

	collection := p.parseExpr(LOWEST)
	form = append(form, collection)
	form = append(form, p.trivia()...)

	var body *cst.Block
	if p.current().Kind == token.Colon {
		body = p.parseColonBody()
		form = append(form, body)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewForStmt(nameTok, varType, collection, body, form)
}

// parseMatch reads `match subject: case*`, each case at a shared
// indentation greater than the match statement's own (spec.md §4.6).
func (p *Parser) parseMatch(form []cst.Node) cst.Stmt {
	_, matchLeaf := p.advance()
	form = append(form, matchLeaf)
	form = append(form, p.trivia()...)

	subject := p.parseExpr(LOWEST)
	form = append(form, subject)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Colon {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewMatchStmt(subject, nil, form)
	}
	_, colonLeaf := p.advance()
	form = append(form, colonLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind != token.Newline {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewMatchStmt(subject, nil, form)
	}
	_, nlLeaf := p.advance()
	form = append(form, nlLeaf)

	threshold := p.currentBlockThreshold()
	prevThreshold := p.curThreshold
	p.curThreshold = threshold
	defer func() { p.curThreshold = prevThreshold }()

	var cases []*cst.MatchCase
	intrinsic := -1
	lt := newLoopTracker()
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

		width := p.lineIndentWidth()
		if intrinsic == -1 {
			if width <= threshold {
				break
			}
			intrinsic = width
			p.curThreshold = intrinsic
		} else if width != intrinsic {
			break
		}

		lead := p.trivia()
		form = append(form, lead...)

		c := p.parseMatchCase()
		cases = append(cases, c)
		form = append(form, c)

		if p.current().Kind == token.Newline {
			_, t := p.advance()
			form = append(form, t)
		}
	}
	return cst.NewMatchStmt(subject, cases, form)
}

// parseMatchCase reads `pattern (',' pattern)* ('when' guard)? ':' body`.
func (p *Parser) parseMatchCase() *cst.MatchCase {
	if !p.enter() {
		return cst.NewMatchCase(nil, nil, nil, nil)
	}
	defer p.leave()

	var form []cst.Node
	first := p.parsePattern()
	patterns := []cst.Pattern{first}
	form = append(form, first)

	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		lead := p.trivia()
		if p.current().Kind != token.Comma {
			form = append(form, lead...)
			break
		}
		form = append(form, lead...)
		_, c := p.advance()
		form = append(form, c)
		form = append(form, p.trivia()...)
		pat := p.parsePattern()
		patterns = append(patterns, pat)
		form = append(form, pat)
	}

	var when cst.Expr
	if p.current().Kind == token.KwWhen {
		_, whenLeaf := p.advance()
		form = append(form, whenLeaf)
		form = append(form, p.trivia()...)
		when = p.parseExpr(LOWEST)
		form = append(form, when)
		form = append(form, p.trivia()...)
	}

	var body *cst.Block
	if p.current().Kind == token.Colon {
		body = p.parseColonBody()
		form = append(form, body)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewMatchCase(patterns, when, body, form)
}

// parseReturn reads `return [value]`.
func (p *Parser) parseReturn(form []cst.Node) cst.Stmt {
	_, retLeaf := p.advance()
	form = append(form, retLeaf)

	lead := p.trivia()
	switch p.current().Kind {
	case token.Newline, token.Semicolon, token.EOF, token.RParen, token.RBracket, token.RBrace:
		form = append(form, lead...)
		return cst.NewReturnStmt(nil, false, form)
	}
	form = append(form, lead...)
	value := p.parseExpr(LOWEST)
	form = append(form, value)
	return cst.NewReturnStmt(value, true, form)
}
