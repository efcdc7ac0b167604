// Package lex is the maximal-munch tokenizer: given a scanner, Next()
// returns exactly one token — trivia or grammatical — advancing the
// scanner past it. It never skips trivia; the CST needs every byte
// attached to a leaf (spec.md I2), so whitespace, newlines, comments, and
// line continuations all come back as real tokens for the parse layer to
// place into the correct node's form (spec.md I3).
//
// This realizes spec.md §4.2's "token reader stack" at the token-level
// dispatch of a single Lexer, the same shape as the teacher's own
// Lexer.NextToken — see DESIGN.md for the full rationale.
package lex

import (
	"github.com/cwbudde/gdcst/internal/classify"
	"github.com/cwbudde/gdcst/internal/scanner"
	"github.com/cwbudde/gdcst/pkg/token"
)

// Lexer wraps a Scanner and produces one Token per Next() call.
type Lexer struct {
	sc       *scanner.Scanner
	tabWidth int
}

// New creates a Lexer over src. tabWidth affects only indentation-width
// comparisons made later by the block resolver; it never affects what text
// ends up in a token (spec.md §4.3).
func New(src string, tabWidth int) *Lexer {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Lexer{sc: scanner.New(src), tabWidth: tabWidth}
}

// TabWidth returns the configured tab visual width.
func (l *Lexer) TabWidth() int { return l.tabWidth }

// Pos returns the current scanner position (start of the next token).
func (l *Lexer) Pos() token.Position { return l.sc.Pos() }

// Remaining reports how many runes are left unconsumed.
func (l *Lexer) Remaining() int { return l.sc.Remaining() }

// Next scans and returns the next token, advancing past it.
func (l *Lexer) Next() token.Token {
	start := l.sc.Pos()
	r := l.sc.Peek(0)

	switch {
	case l.sc.AtEnd():
		return token.Token{Kind: token.EOF, Text: "", Pos: start}

	case classify.IsNBSP(r):
		l.sc.Advance()
		return token.Token{Kind: token.Illegal, Text: string(r), Pos: start}

	case classify.IsSpace(r):
		return l.lexWhitespace(start)

	case classify.IsNewline(r):
		l.sc.Advance()
		return token.Token{Kind: token.Newline, Text: "\n", Pos: start}

	case classify.IsHash(r):
		return l.lexComment(start)

	case classify.IsBackslash(r):
		return l.lexBackslash(start)

	case classify.IsDigit(r):
		return l.lexNumber(start)

	case classify.IsQuote(r):
		return l.lexString(start, false)

	case r == 'r' && classify.IsQuote(l.sc.Peek(1)):
		l.sc.Advance() // consume 'r'
		return l.lexString(start, true)

	case classify.IsIdentStart(r):
		return l.lexIdentOrKeyword(start)

	default:
		return l.lexOperatorOrPunct(start)
	}
}

func (l *Lexer) lexWhitespace(start token.Position) token.Token {
	var text []rune
	for classify.IsSpace(l.sc.Peek(0)) {
		text = append(text, l.sc.Advance())
	}
	return token.Token{Kind: token.Whitespace, Text: string(text), Pos: start}
}

func (l *Lexer) lexComment(start token.Position) token.Token {
	var text []rune
	for !l.sc.AtEnd() && !classify.IsNewline(l.sc.Peek(0)) {
		text = append(text, l.sc.Advance())
	}
	return token.Token{Kind: token.Comment, Text: string(text), Pos: start}
}

// lexBackslash recognizes a line continuation: '\' + optional horizontal
// whitespace + a newline, all as one trivia token (spec.md glossary). If no
// newline follows, the backslash is an invalid character on its own — it
// has no other grammatical meaning in GDScript.
func (l *Lexer) lexBackslash(start token.Position) token.Token {
	save := *l.sc
	var text []rune
	text = append(text, l.sc.Advance()) // '\'
	for classify.IsSpace(l.sc.Peek(0)) {
		text = append(text, l.sc.Advance())
	}
	if classify.IsNewline(l.sc.Peek(0)) {
		text = append(text, l.sc.Advance())
		return token.Token{Kind: token.LineContinuation, Text: string(text), Pos: start}
	}
	*l.sc = save
	l.sc.Advance()
	return token.Token{Kind: token.Illegal, Text: "\\", Pos: start}
}

func (l *Lexer) lexIdentOrKeyword(start token.Position) token.Token {
	var text []rune
	for classify.IsIdentContinue(l.sc.Peek(0)) {
		text = append(text, l.sc.Advance())
	}
	s := string(text)
	return token.Token{Kind: token.LookupIdent(s), Text: s, Pos: start}
}
