package parse

import (
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/token"
)

// lineIndentWidth measures the visual width of the Whitespace token (if
// any) currently under the cursor, using the configured tab width
// (spec.md §4.4, §6 tab_visual_width). It does not consume anything.
func (p *Parser) lineIndentWidth() int {
	t := p.cur.Current()
	if t.Kind != token.Whitespace {
		return 0
	}
	w := 0
	for _, r := range t.Text {
		if r == '\t' {
			w += p.settings.TabVisualWidth
		} else {
			w++
		}
	}
	return w
}

// skipBlankLines consumes a run of blank or comment-only lines starting at
// the cursor, appending their tokens to *form (spec.md §4.4: "the line
// contains only trivia: keep the trivia with the block"). Returns true if
// EOF was reached while skipping.
func (p *Parser) skipBlankLines(form *[]cst.Node) bool {
	for {
		mark := p.cur.Mark()
		var peek []cst.Node
		for {
			t := p.cur.Current()
			if t.Kind == token.Whitespace || t.Kind == token.Comment {
				peek = append(peek, cst.NewLeaf(p.cur.Advance()))
				continue
			}
			break
		}
		switch p.cur.Current().Kind {
		case token.Newline:
			peek = append(peek, cst.NewLeaf(p.cur.Advance()))
			*form = append(*form, peek...)
			continue
		case token.EOF:
			*form = append(*form, peek...)
			return true
		default:
			p.cur.ResetTo(mark)
			return false
		}
	}
}

// currentBlockThreshold is the intrinsic indentation of the innermost block
// currently being read — the threshold a freshly nested colon-introduced
// block must exceed.
func (p *Parser) currentBlockThreshold() int {
	return p.curThreshold
}

// parseBlock reads a sequence of statements governed by the off-side rule
// (spec.md §4.4) against the given enclosing threshold. Used for both the
// indented form of a colon-introduced body and the top-level file member
// list (threshold -1).
func (p *Parser) parseBlock(threshold int) *cst.Block {
	if !p.enter() {
		return cst.NewBlock(nil, nil)
	}
	defer p.leave()

	prevThreshold := p.curThreshold
	p.curThreshold = threshold
	defer func() { p.curThreshold = prevThreshold }()

	var form []cst.Node
	var stmts []cst.Stmt
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

		stmt := p.parseStmt()
		stmts = append(stmts, stmt)
		form = append(form, stmt)

		for {
			trailLead := p.trivia()
			if p.current().Kind == token.Semicolon {
				form = append(form, trailLead...)
				_, semiLeaf := p.advance()
				form = append(form, semiLeaf)
				form = append(form, p.trivia()...)
				if k := p.current().Kind; k == token.Newline || k == token.EOF {
					break
				}
				s2 := p.parseStmt()
				stmts = append(stmts, s2)
				form = append(form, s2)
				continue
			}
			form = append(form, trailLead...)
			break
		}

		if p.current().Kind == token.Newline {
			_, nlLeaf := p.advance()
			form = append(form, nlLeaf)
		}
	}

	return cst.NewBlock(stmts, form)
}

// parseColonBody reads ':' and returns the header-line prefix (colon +
// inline trivia + optional newline) plus the resulting body, which is a
// *cst.Block either way (spec.md §4.4 "Colon-introduced bodies").
func (p *Parser) parseColonBody() *cst.Block {
	prefix, body := p.parseColonBodyParts()
	body.SetForm(append(prefix, body.Form()...))
	return body
}

// parseColonBodyParts is the form-preserving variant used by callers that
// need to interleave the colon prefix into their own form rather than the
// body's.
func (p *Parser) parseColonBodyParts() (prefix []cst.Node, body *cst.Block) {
	_, colonLeaf := p.advance()
	prefix = append(prefix, colonLeaf)
	prefix = append(prefix, p.trivia()...)

	if p.current().Kind == token.Newline {
		_, nlLeaf := p.advance()
		prefix = append(prefix, nlLeaf)
		return prefix, p.parseBlock(p.currentBlockThreshold())
	}
	return prefix, p.parseInlineBlock()
}

// parseInlineBlock reads one or more ';'-separated statements on the
// header's own line. It also stops at a Comma/RParen/RBracket/RBrace: inside
// an unclosed bracket, newlines are already swallowed as in-list trivia, so
// a lambda body there terminates at the enclosing list's own separator or
// closing bracket rather than falling through indentation rules (spec.md
// §4.5 point 10, §4.4 "Lambdas in brackets").
func (p *Parser) parseInlineBlock() *cst.Block {
	if !p.enter() {
		return cst.NewBlock(nil, nil)
	}
	defer p.leave()

	var form []cst.Node
	var stmts []cst.Stmt

	lt := newLoopTracker()
	for {
		if p.failed() || p.tick(&lt) {
			break
		}
		switch p.current().Kind {
		case token.Newline, token.EOF, token.Comma, token.RParen, token.RBracket, token.RBrace:
			return cst.NewBlock(stmts, form)
		}

		s := p.parseStmt()
		stmts = append(stmts, s)
		form = append(form, s)

		trailLead := p.trivia()
		if p.current().Kind == token.Semicolon {
			form = append(form, trailLead...)
			_, semiLeaf := p.advance()
			form = append(form, semiLeaf)
			form = append(form, p.trivia()...)
			continue
		}
		form = append(form, trailLead...)
		break
	}
	return cst.NewBlock(stmts, form)
}
