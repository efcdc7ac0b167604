package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// parseExpr is the Pratt expression reader (spec.md §4.5): a primary, any
// postfix chain bound to it, then a loop consuming infix operators whose
// precedence is at least minPrec.
func (p *Parser) parseExpr(minPrec int) cst.Expr {
	if !p.enter() {
		return cst.NewBadExpr(nil)
	}
	defer p.leave()

	left := p.parsePrimary()
	left = p.parsePostfix(left)

	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}

		opTok := p.peekSignificant(0)
		isNotIn := opTok.Kind == token.KwNot && p.peekSignificant(1).Kind == token.KwIn

		prec := precedenceOf(opTok.Kind)
		if isNotIn {
			prec = COMPARE
		}
		if prec == LOWEST || prec < minPrec {
			break
		}

		lead := p.trivia()

		if isNotIn {
			notTok, _ := p.advance()
			afterNot := p.trivia()
			inTok, inLeaf := p.advance()
			right := p.parseExpr(prec + 1)

			form := []cst.Node{left}
			form = append(form, lead...)
			notLeaf := cst.NewLeaf(notTok)
			form = append(form, notLeaf)
			form = append(form, afterNot...)
			form = append(form, inLeaf, right)

			left = cst.NewBinaryExpr(left, &notTok, inTok, true, right, form)
			continue
		}

		if opTok.Kind == token.KwIf {
			left = p.parseTernary(left, lead)
			continue
		}

		opVal, opLeaf := p.advance()
		next := prec + 1
		if rightAssoc(opVal.Kind) {
			next = prec
		}
		right := p.parseExpr(next)

		form := []cst.Node{left}
		form = append(form, lead...)
		form = append(form, opLeaf, right)

		left = cst.NewBinaryExpr(left, nil, opVal, false, right, form)
	}
	return left
}

// parseTernary handles GDScript's `then if cond else other`, right-assoc
// (spec.md §4.5 point 5). then has already been parsed; leadBeforeIf is the
// trivia sitting between it and `if`.
func (p *Parser) parseTernary(then cst.Expr, leadBeforeIf []cst.Node) cst.Expr {
	_, ifLeaf := p.advance()
	cond := p.parseExpr(TERNARY + 1)
	afterCond := p.trivia()

	form := []cst.Node{then}
	form = append(form, leadBeforeIf...)
	form = append(form, ifLeaf, cond)
	form = append(form, afterCond...)

	if p.current().Kind == token.KwElse {
		_, elseLeaf := p.advance()
		elseExpr := p.parseExpr(TERNARY)
		form = append(form, elseLeaf, elseExpr)
		return cst.NewTernaryExpr(then, cond, elseExpr, form)
	}

	// No `else`: malformed but tolerated (spec.md §4.8) — invalid tokens up
	// to whatever follows are folded into a placeholder else-branch.
	bad := cst.NewBadExpr(p.invalidRun(nil))
	form = append(form, bad)
	return cst.NewTernaryExpr(then, cond, bad, form)
}

// parsePrimary reads one atomic or bracketed expression: literal, paren
// group, array/dict literal, lambda, sigil-prefixed literal, or prefix
// operator application. Never recurses into postfix chaining — that is the
// caller's job (parsePostfix).
func (p *Parser) parsePrimary() cst.Expr {
	if !p.enter() {
		return cst.NewBadExpr(nil)
	}
	defer p.leave()

	form := p.trivia()
	tok := p.current()

	switch tok.Kind {
	case token.Ident:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprIdent, t, append(form, leaf))
	case token.Int:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprInt, t, append(form, leaf))
	case token.Float:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprFloat, t, append(form, leaf))
	case token.String:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprString, t, append(form, leaf))
	case token.KwTrue, token.KwFalse:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprBool, t, append(form, leaf))
	case token.KwNull:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprNull, t, append(form, leaf))
	case token.KwSelf:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprSelf, t, append(form, leaf))
	case token.KwSuper:
		t, leaf := p.advance()
		return cst.NewLiteralExpr(cst.ExprSuper, t, append(form, leaf))
	case token.LParen:
		return p.parseParenExpr(form)
	case token.LBracket:
		return p.parseArrayExpr(form)
	case token.LBrace:
		return p.parseDictExpr(form)
	case token.KwFunc:
		return p.parseLambdaExpr(form)
	case token.Amp:
		return p.parsePrefixedLiteral(cst.ExprStringName, form)
	case token.Caret:
		return p.parsePrefixedLiteral(cst.ExprNodePath, form)
	case token.Dollar:
		return p.parseGetNode(form)
	case token.Percent:
		return p.parseUniqueNode(form)
	case token.Minus, token.Bang, token.Tilde, token.KwNot, token.KwAwait:
		return p.parseUnary(form)
	default:
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadExpr(form)
	}
}

// parsePostfix repeatedly applies `.name`, `[index]`, and `(args)` to left.
func (p *Parser) parsePostfix(left cst.Expr) cst.Expr {
	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		switch p.peekSignificant(0).Kind {
		case token.Dot:
			left = p.parseMember(left)
		case token.LBracket:
			left = p.parseIndex(left)
		case token.LParen:
			left = p.parseCall(left)
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parseMember(left cst.Expr) cst.Expr {
	lead := p.trivia()
	_, dotLeaf := p.advance()
	afterDot := p.trivia()

	form := []cst.Node{left}
	form = append(form, lead...)
	form = append(form, dotLeaf)
	form = append(form, afterDot...)

	nameTok := p.current()
	if nameTok.Kind == token.Ident || nameTok.Kind.IsKeyword() {
		nameTok, nameLeaf := p.advance()
		form = append(form, nameLeaf)
		return cst.NewMemberExpr(left, nameTok, form)
	}
	form = append(form, p.invalidRun(nil)...)
	return cst.NewMemberExpr(left, nameTok, form)
}

func (p *Parser) parseIndex(left cst.Expr) cst.Expr {
	lead := p.trivia()
	_, lb := p.advance()
	p.bracketDepth++
	idx := p.parseExpr(LOWEST)
	afterIdx := p.trivia()
	p.bracketDepth--

	form := []cst.Node{left}
	form = append(form, lead...)
	form = append(form, lb, idx)
	form = append(form, afterIdx...)

	if p.current().Kind == token.RBracket {
		_, rb := p.advance()
		form = append(form, rb)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewIndexExpr(left, idx, form)
}

func (p *Parser) parseCall(left cst.Expr) cst.Expr {
	lead := p.trivia()
	_, lp := p.advance()
	p.bracketDepth++

	form := []cst.Node{left}
	form = append(form, lead...)
	form = append(form, lp)

	var args []*cst.CallArg
	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		argLead := p.trivia()
		if k := p.current().Kind; k == token.RParen || k == token.EOF {
			form = append(form, argLead...)
			break
		}
		form = append(form, argLead...)

		var nameTok *token.Token
		var argForm []cst.Node
		if p.current().Kind == token.Ident && p.peekSignificant(1).Kind == token.Eq {
			nt, nLeaf := p.advance()
			nameTok = &nt
			argForm = append(argForm, nLeaf)
			argForm = append(argForm, p.trivia()...)
			_, eqLeaf := p.advance()
			argForm = append(argForm, eqLeaf)
			argForm = append(argForm, p.trivia()...)
		}
		val := p.parseExpr(LOWEST)
		argForm = append(argForm, val)
		arg := cst.NewCallArg(nameTok, val, argForm)
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
	return cst.NewCallExpr(left, args, form)
}

func (p *Parser) parseParenExpr(form []cst.Node) cst.Expr {
	_, lp := p.advance()
	form = append(form, lp)
	p.bracketDepth++
	inner := p.parseExpr(LOWEST)
	form = append(form, inner)
	form = append(form, p.trivia()...)
	p.bracketDepth--

	if p.current().Kind == token.RParen {
		_, rp := p.advance()
		form = append(form, rp)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewParenExpr(inner, form)
}

// parseArrayExpr reads `[` elem (',' elem)* ','? `]`. A trailing comma's
// trivia attaches to the array's own form, not the last element (spec.md
// §4.5 point 8), since it is collected here rather than inside the element
// reader.
func (p *Parser) parseArrayExpr(form []cst.Node) cst.Expr {
	_, lb := p.advance()
	form = append(form, lb)
	p.bracketDepth++

	var elems []cst.Expr
	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		lead := p.trivia()
		if k := p.current().Kind; k == token.RBracket || k == token.EOF {
			form = append(form, lead...)
			break
		}
		form = append(form, lead...)

		el := p.parseExpr(LOWEST)
		elems = append(elems, el)
		form = append(form, el)

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
	if p.current().Kind == token.RBracket {
		_, rb := p.advance()
		form = append(form, rb)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewArrayExpr(elems, form)
}

// parseDictExpr reads `{` key (':' | '=') value (',' ...)* ','? `}`. Mixed
// separator styles across entries are permitted (spec.md §4.5 point 7).
func (p *Parser) parseDictExpr(form []cst.Node) cst.Expr {
	_, lb := p.advance()
	form = append(form, lb)
	p.bracketDepth++

	var entries []*cst.DictEntry
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

		key := p.parseExpr(ASSIGN + 1)
		var entryForm []cst.Node
		entryForm = append(entryForm, key)
		entryForm = append(entryForm, p.trivia()...)

		var sep token.Token
		if k := p.current().Kind; k == token.Colon || k == token.Eq {
			var sepLeaf *cst.Leaf
			sep, sepLeaf = p.advance()
			entryForm = append(entryForm, sepLeaf)
		} else {
			entryForm = append(entryForm, p.invalidRun(nil)...)
		}
		entryForm = append(entryForm, p.trivia()...)

		value := p.parseExpr(LOWEST)
		entryForm = append(entryForm, value)

		entry := cst.NewDictEntry(key, sep, value, entryForm)
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
	return cst.NewDictExpr(entries, form)
}

// parseParamList reads `(` name [':' type | ':='] ['=' default] (',' ...)*
// `)`, shared by lambda expressions, function/method declarations, and
// signal declarations.
func (p *Parser) parseParamList() ([]*cst.Param, []cst.Node) {
	var form []cst.Node
	_, lp := p.advance()
	form = append(form, lp)
	p.bracketDepth++

	var params []*cst.Param
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

		if p.current().Kind != token.Ident {
			bad := p.invalidRun(func(k token.Kind) bool { return k == token.Comma || k == token.RParen })
			form = append(form, bad...)
			if p.current().Kind == token.Comma {
				_, c := p.advance()
				form = append(form, c)
				continue
			}
			break
		}

		nameTok, nameLeaf := p.advance()
		var pform []cst.Node
		pform = append(pform, nameLeaf)
		pform = append(pform, p.trivia()...)

		var typ cst.TypeNode
		inferred := false
		switch p.current().Kind {
		case token.Colon:
			_, colonLeaf := p.advance()
			pform = append(pform, colonLeaf)
			pform = append(pform, p.trivia()...)
			typ = p.parseType()
			pform = append(pform, typ)
		case token.Assign:
			inferred = true
			_, assignLeaf := p.advance()
			pform = append(pform, assignLeaf)
		}
		pform = append(pform, p.trivia()...)

		var def cst.Expr
		hasDefault := false
		if inferred || p.current().Kind == token.Eq {
			hasDefault = true
			if !inferred {
				_, eqLeaf := p.advance()
				pform = append(pform, eqLeaf)
				pform = append(pform, p.trivia()...)
			}
			def = p.parseExpr(LOWEST)
			pform = append(pform, def)
		}

		param := cst.NewParam(nameTok, typ, inferred, def, hasDefault, pform)
		params = append(params, param)
		form = append(form, param)

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
	return params, form
}

// parseLambdaExpr reads `func` [name] '(' params ')' ['->' type]? body.
func (p *Parser) parseLambdaExpr(form []cst.Node) cst.Expr {
	_, funcLeaf := p.advance()
	form = append(form, funcLeaf)
	form = append(form, p.trivia()...)

	var name *token.Token
	if p.current().Kind == token.Ident {
		nt, nLeaf := p.advance()
		name = &nt
		form = append(form, nLeaf)
		form = append(form, p.trivia()...)
	}

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
	} else {
		form = append(form, p.invalidRun(nil)...)
	}

	return cst.NewLambdaExpr(name, params, ret, body, form)
}

func (p *Parser) parseUnary(form []cst.Node) cst.Expr {
	opTok, opLeaf := p.advance()
	form = append(form, opLeaf)

	bp := UNARY
	if opTok.Kind == token.KwNot {
		bp = LOGNOT
	}
	operand := p.parseExpr(bp)
	form = append(form, operand)
	return cst.NewUnaryExpr(opTok, operand, form)
}

// parsePrefixedLiteral reads the &"..." (string-name) and ^"..." (node-path)
// forms: a sigil directly followed by a string literal.
func (p *Parser) parsePrefixedLiteral(kind cst.ExprKind, form []cst.Node) cst.Expr {
	sigil, sigilLeaf := p.advance()
	form = append(form, sigilLeaf)
	form = append(form, p.trivia()...)

	if p.current().Kind == token.String {
		strTok, strLeaf := p.advance()
		form = append(form, strLeaf)
		return cst.NewPrefixedLiteralExpr(kind, sigil, cst.NewLeaf(strTok), form)
	}
	form = append(form, p.invalidRun(nil)...)
	return cst.NewPrefixedLiteralExpr(kind, sigil, nil, form)
}

// parseGetNode reads `$path`: either a quoted path string, or a bare chain
// of idents separated by '.'/'/' (spec.md §4.5 — GetNode/unique-node
// sigils). Value holds only the first path segment for callers that need a
// quick handle; the full chain is always recoverable from Form().
func (p *Parser) parseGetNode(form []cst.Node) cst.Expr {
	sigil, sigilLeaf := p.advance()
	form = append(form, sigilLeaf)

	if p.current().Kind == token.String {
		strTok, strLeaf := p.advance()
		form = append(form, strLeaf)
		return cst.NewPrefixedLiteralExpr(cst.ExprGetNode, sigil, cst.NewLeaf(strTok), form)
	}

	var first *token.Token
	for {
		t := p.current()
		if t.Kind != token.Ident && t.Kind != token.Dot && t.Kind != token.Slash {
			break
		}
		tok, leaf := p.advance()
		if first == nil && tok.Kind == token.Ident {
			first = &tok
		}
		form = append(form, leaf)
	}

	var value cst.Node
	if first != nil {
		value = cst.NewLeaf(*first)
	} else {
		form = append(form, p.invalidRun(nil)...)
	}
	return cst.NewPrefixedLiteralExpr(cst.ExprGetNode, sigil, value, form)
}

// parseUniqueNode reads `%name`.
func (p *Parser) parseUniqueNode(form []cst.Node) cst.Expr {
	sigil, sigilLeaf := p.advance()
	form = append(form, sigilLeaf)

	if p.current().Kind == token.Ident {
		nameTok, nameLeaf := p.advance()
		form = append(form, nameLeaf)
		return cst.NewPrefixedLiteralExpr(cst.ExprUniqueNode, sigil, cst.NewLeaf(nameTok), form)
	}
	form = append(form, p.invalidRun(nil)...)
	return cst.NewPrefixedLiteralExpr(cst.ExprUniqueNode, sigil, nil, form)
}
