// Package parse implements the GDScript reader: the expression, statement,
// block/indentation, class/file, and match-pattern readers described in
// spec.md §4.4–§4.7, composing pkg/cst nodes from an internal/lex token
// stream via an internal/cursor.Cursor.
//
// See DESIGN.md for why the spec's char-level "token reader stack" is
// realized here as a token-level recursive-descent/Pratt parser instead of
// a literal graph of feed(ch) objects.
package parse

import (
	"github.com/cwbudde/gdcst/internal/cursor"
	"github.com/cwbudde/gdcst/internal/lex"
	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/settings"
	"github.com/cwbudde/gdcst/pkg/token"
)

// Parser holds all mutable state for a single parse call: the token
// cursor, the current reader-stack depth, bracket-context (for the
// newline-suppression and lambda-in-bracket termination rules, spec.md
// §4.3/§4.5 point 10), and the first typed category-2/3 failure
// encountered, if any.
type Parser struct {
	lx       *lex.Lexer
	cur      *cursor.Cursor
	settings settings.Settings

	depth            int
	bracketDepth     int
	curThreshold     int
	lastCancelOffset int
	err              error
}

// New creates a Parser over src with the given settings.
func New(src string, s settings.Settings) *Parser {
	lx := lex.New(src, s.TabVisualWidth)
	return &Parser{
		lx:       lx,
		cur:      cursor.New(lx),
		settings: s,
	}
}

// Err returns the first typed category-2/3 failure encountered, if any.
func (p *Parser) Err() error { return p.err }

// trivia consumes and returns a run of trivia tokens starting at the
// cursor: whitespace, comments, and line continuations unconditionally,
// plus bare newlines when inside an unclosed bracket (spec.md §4.3 — a
// newline inside `()`/`[]`/`{}` is in-list trivia, not a terminator).
func (p *Parser) trivia() []cst.Node {
	var out []cst.Node
	for {
		t := p.cur.Current()
		switch t.Kind {
		case token.Whitespace, token.Comment, token.LineContinuation:
			out = append(out, cst.NewLeaf(p.cur.Advance()))
		case token.Newline:
			if p.bracketDepth == 0 {
				return out
			}
			out = append(out, cst.NewLeaf(p.cur.Advance()))
		default:
			return out
		}
	}
}

// current returns the token under the cursor (assumed to already be
// significant — call trivia() first).
func (p *Parser) current() token.Token {
	return p.cur.Current()
}

// advance consumes the current token and returns it both raw and wrapped
// as a Leaf, ready to append to a form.
func (p *Parser) advance() (token.Token, *cst.Leaf) {
	p.checkCancel()
	tok := p.cur.Advance()
	return tok, cst.NewLeaf(tok)
}

// peekSignificant looks at the nth non-trivia token ahead (0 = the next
// one) without consuming anything.
func (p *Parser) peekSignificant(n int) token.Token {
	mark := p.cur.Mark()
	defer p.cur.ResetTo(mark)

	count := -1
	for {
		t := p.cur.Current()
		skip := t.Kind == token.Whitespace || t.Kind == token.Comment || t.Kind == token.LineContinuation ||
			(t.Kind == token.Newline && p.bracketDepth > 0)
		if !skip {
			count++
			if count == n {
				return t
			}
		}
		if t.Kind == token.EOF {
			return t
		}
		p.cur.Advance()
	}
}

// isAtEnd reports whether the significant cursor (after skipping trivia
// the way trivia() would) sits at EOF.
func (p *Parser) isAtEnd() bool {
	return p.peekSignificant(0).Kind == token.EOF
}

// invalidRun consumes one or more tokens the caller could not place into
// any valid construct, rewriting their Kind to Illegal if it is not
// already, and returns them as leaves — the invalid-token collector
// (spec.md §4.2 step 6, §4.8, §7 category 1). Unless the cursor is already
// at EOF, at least one token is consumed so callers make forward progress.
func (p *Parser) invalidRun(stop func(token.Kind) bool) []cst.Node {
	var out []cst.Node
	for {
		t := p.current()
		if t.Kind == token.EOF {
			break
		}
		if len(out) > 0 && stop != nil && stop(t.Kind) {
			break
		}
		tok, _ := p.advance()
		if tok.Kind != token.Illegal {
			tok.Kind = token.Illegal
		}
		out = append(out, cst.NewLeaf(tok))
		if stop == nil {
			break
		}
	}
	return out
}
