package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// parsePattern reads one match-case pattern (spec.md §4.6): wildcard `_`,
// binding `var x`, array/dict destructuring with an optional `..` rest
// marker, or a plain expression matched by value equality.
func (p *Parser) parsePattern() cst.Pattern {
	if !p.enter() {
		return cst.NewBadPattern(nil)
	}
	defer p.leave()

	form := p.trivia()
	tok := p.current()

	switch {
	case tok.Kind == token.Ident && tok.Text == "_":
		t, leaf := p.advance()
		return cst.NewWildcardPattern(t, append(form, leaf))

	case tok.Kind == token.KwVar:
		_, varLeaf := p.advance()
		form = append(form, varLeaf)
		form = append(form, p.trivia()...)
		if p.current().Kind != token.Ident {
			form = append(form, p.invalidRun(nil)...)
			return cst.NewBadPattern(form)
		}
		nameTok, nameLeaf := p.advance()
		form = append(form, nameLeaf)
		return cst.NewBindingPattern(nameTok, form)

	case tok.Kind == token.LBracket:
		return p.parseArrayPattern(form)

	case tok.Kind == token.LBrace:
		return p.parseDictPattern(form)

	default:
		value := p.parseExpr(LOWEST)
		return cst.NewExprPattern(value, append(form, value))
	}
}

func (p *Parser) parseArrayPattern(form []cst.Node) cst.Pattern {
	_, lb := p.advance()
	form = append(form, lb)
	p.bracketDepth++

	var elems []cst.Pattern
	rest := false
	var restTok *token.Token

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

		if p.current().Kind == token.DotDot {
			rest = true
			rt, rLeaf := p.advance()
			restTok = &rt
			form = append(form, rLeaf)
			form = append(form, p.trivia()...)
			break
		}

		el := p.parsePattern()
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
	return cst.NewArrayPattern(elems, rest, restTok, form)
}

func (p *Parser) parseDictPattern(form []cst.Node) cst.Pattern {
	_, lb := p.advance()
	form = append(form, lb)
	p.bracketDepth++

	var entries []*cst.DictPatternEntry
	rest := false
	var restTok *token.Token

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

		if p.current().Kind == token.DotDot {
			rest = true
			rt, rLeaf := p.advance()
			restTok = &rt
			form = append(form, rLeaf)
			form = append(form, p.trivia()...)
			break
		}

		key := p.parseExpr(LOWEST)
		var eform []cst.Node
		eform = append(eform, key)
		eform = append(eform, p.trivia()...)

		if p.current().Kind == token.Colon {
			_, colonLeaf := p.advance()
			eform = append(eform, colonLeaf)
			eform = append(eform, p.trivia()...)
		} else {
			eform = append(eform, p.invalidRun(nil)...)
		}

		val := p.parsePattern()
		eform = append(eform, val)

		entry := cst.NewDictPatternEntry(key, val, eform)
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
	return cst.NewDictPattern(entries, rest, restTok, form)
}
