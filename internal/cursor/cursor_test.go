package cursor

import (
	"testing"

	"github.com/cwbudde/gdcst/pkg/token"
)

// fakeLexer replays a fixed token slice, appending an EOF once exhausted.
type fakeLexer struct {
	toks []token.Token
	pos  int
}

func (f *fakeLexer) Next() token.Token {
	if f.pos >= len(f.toks) {
		return token.Token{Kind: token.EOF}
	}
	t := f.toks[f.pos]
	f.pos++
	return t
}

func kinds(ks ...token.Kind) []token.Token {
	out := make([]token.Token, len(ks))
	for i, k := range ks {
		out[i] = token.Token{Kind: k}
	}
	return out
}

func TestCursorAdvanceAndPeek(t *testing.T) {
	c := New(&fakeLexer{toks: kinds(token.Ident, token.Eq, token.Int)})

	if c.Current().Kind != token.Ident {
		t.Fatalf("Current = %s, want Ident", c.Current().Kind)
	}
	if c.Peek(1).Kind != token.Eq {
		t.Fatalf("Peek(1) = %s, want Eq", c.Peek(1).Kind)
	}
	if c.Peek(2).Kind != token.Int {
		t.Fatalf("Peek(2) = %s, want Int", c.Peek(2).Kind)
	}

	first := c.Advance()
	if first.Kind != token.Ident {
		t.Fatalf("Advance returned %s, want Ident", first.Kind)
	}
	if c.Current().Kind != token.Eq {
		t.Fatalf("Current after advance = %s, want Eq", c.Current().Kind)
	}
}

func TestCursorPeekPastEndClampsToEOF(t *testing.T) {
	c := New(&fakeLexer{toks: kinds(token.Ident)})
	if c.Peek(10).Kind != token.EOF {
		t.Fatalf("Peek past end = %s, want EOF", c.Peek(10).Kind)
	}
}

func TestCursorAdvancePastEOFStaysAtEOF(t *testing.T) {
	c := New(&fakeLexer{toks: kinds(token.Ident)})
	c.Advance() // consume Ident
	if c.Current().Kind != token.EOF {
		t.Fatalf("Current = %s, want EOF", c.Current().Kind)
	}
	c.Advance()
	if c.Current().Kind != token.EOF {
		t.Fatalf("Current after advancing past EOF = %s, want EOF", c.Current().Kind)
	}
}

func TestCursorMarkResetTo(t *testing.T) {
	c := New(&fakeLexer{toks: kinds(token.Ident, token.Eq, token.Int)})

	mark := c.Mark()
	c.Advance()
	c.Advance()
	if c.Current().Kind != token.Int {
		t.Fatalf("Current = %s, want Int", c.Current().Kind)
	}

	c.ResetTo(mark)
	if c.Current().Kind != token.Ident {
		t.Fatalf("Current after ResetTo = %s, want Ident", c.Current().Kind)
	}
}
