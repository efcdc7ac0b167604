// Package cursor provides buffered, arbitrary-depth lookahead over a token
// stream, grounded on the teacher's internal/parser.TokenCursor: a growable
// buffer plus Mark/ResetTo for backtracking. Unlike the teacher's cursor,
// this one walks the *raw* token stream — trivia included — since the
// parse layer (internal/parse) is responsible for collecting trivia into
// node forms rather than discarding it.
package cursor

import "github.com/cwbudde/gdcst/pkg/token"

// Lexer is the minimal surface internal/lex.Lexer needs to expose.
type Lexer interface {
	Next() token.Token
}

// Cursor is a read cursor over a buffered token stream with lookahead and
// mark/reset backtracking support.
type Cursor struct {
	lx  Lexer
	buf []token.Token
	idx int
}

// New creates a Cursor and primes it with the first token.
func New(lx Lexer) *Cursor {
	c := &Cursor{lx: lx}
	c.buf = append(c.buf, lx.Next())
	return c
}

func (c *Cursor) fill(upTo int) {
	for upTo >= len(c.buf) {
		last := c.buf[len(c.buf)-1]
		if last.Kind == token.EOF {
			return
		}
		c.buf = append(c.buf, c.lx.Next())
	}
}

// Current returns the token under the cursor without consuming it.
func (c *Cursor) Current() token.Token {
	return c.buf[c.idx]
}

// Peek returns the token n positions ahead of Current (Peek(0) == Current).
func (c *Cursor) Peek(n int) token.Token {
	target := c.idx + n
	c.fill(target)
	if target >= len(c.buf) {
		target = len(c.buf) - 1
	}
	return c.buf[target]
}

// Advance consumes and returns the current token, moving the cursor to the
// next one. Advancing past EOF keeps returning EOF.
func (c *Cursor) Advance() token.Token {
	t := c.Current()
	if t.Kind != token.EOF {
		c.idx++
		c.fill(c.idx)
	}
	return t
}

// Mark captures the current position for later backtracking via ResetTo.
func (c *Cursor) Mark() int {
	return c.idx
}

// ResetTo rewinds the cursor to a previously captured Mark.
func (c *Cursor) ResetTo(m int) {
	c.idx = m
}
