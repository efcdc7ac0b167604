package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// parseType reads a type annotation: a dotted name, optionally followed by
// a bracketed generic argument list (Array[int], Dictionary[String, int]).
func (p *Parser) parseType() cst.TypeNode {
	if !p.enter() {
		return cst.NewBadType(nil)
	}
	defer p.leave()

	form := p.trivia()
	if p.current().Kind != token.Ident {
		form = append(form, p.invalidRun(nil)...)
		return cst.NewBadType(form)
	}

	var names []token.Token
	nameTok, nameLeaf := p.advance()
	names = append(names, nameTok)
	form = append(form, nameLeaf)

	lt := newLoopTracker()
	for p.peekSignificant(0).Kind == token.Dot && p.peekSignificant(1).Kind == token.Ident {
		if p.failed() || p.tick(&lt) {
			break
		}
		lead := p.trivia()
		_, dotLeaf := p.advance()
		afterDot := p.trivia()
		segTok, segLeaf := p.advance()
		names = append(names, segTok)
		form = append(form, lead...)
		form = append(form, dotLeaf)
		form = append(form, afterDot...)
		form = append(form, segLeaf)
	}

	base := cst.NewNamedType(names, form)
	if p.peekSignificant(0).Kind != token.LBracket {
		return base
	}

	lead := p.trivia()
	_, lb := p.advance()
	p.bracketDepth++

	genForm := []cst.Node{base}
	genForm = append(genForm, lead...)
	genForm = append(genForm, lb)

	var args []cst.TypeNode
	argLt := newLoopTracker()
	for {
		if p.failed() || p.tick(&argLt) {
			break
		}
		argLead := p.trivia()
		if k := p.current().Kind; k == token.RBracket || k == token.EOF {
			genForm = append(genForm, argLead...)
			break
		}
		genForm = append(genForm, argLead...)

		arg := p.parseType()
		args = append(args, arg)
		genForm = append(genForm, arg)

		trailLead := p.trivia()
		if p.current().Kind == token.Comma {
			genForm = append(genForm, trailLead...)
			_, c := p.advance()
			genForm = append(genForm, c)
			continue
		}
		genForm = append(genForm, trailLead...)
		break
	}

	p.bracketDepth--
	if p.current().Kind == token.RBracket {
		_, rb := p.advance()
		genForm = append(genForm, rb)
	} else {
		genForm = append(genForm, p.invalidRun(nil)...)
	}
	return cst.NewGenericType(base, args, genForm)
}
