package parse

import (
	"strings"
	"testing"

	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/printer"
	"github.com/cwbudde/gdcst/pkg/settings"
	"github.com/cwbudde/gdcst/pkg/visitor"
)

// parseFile is a small test helper mirroring pkg/gdparse.ParseFile without
// importing it (that package in turn imports this one).
func parseFile(t *testing.T, src string, opts ...settings.Option) (*Parser, *cst.FileNode) {
	t.Helper()
	p := New(src, settings.New(opts...))
	file := p.ParseFile()
	return p, file
}

func TestBoundaryEmptyInput(t *testing.T) {
	p, _ := parseFile(t, "")
	if err := p.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
}

func TestBoundaryOnlyNewlines(t *testing.T) {
	src := "\n\n\n"
	p, file := parseFile(t, src)
	if err := p.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
}

func TestBoundaryOnlyComments(t *testing.T) {
	src := "# just a comment\n# another one\n"
	p, file := parseFile(t, src)
	if err := p.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
}

func TestBoundaryTrailingBackslash(t *testing.T) {
	src := "var x = 1 + \\\n    2\n"
	_, file := parseFile(t, src)
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
}

// \r-only line endings should not separate lines; the scanner strips \r
// entirely before it reaches the lexer.
func TestBoundaryCarriageReturnOnlyEndings(t *testing.T) {
	src := "var x = 1\rvar y = 2\r"
	p := New(src, settings.New())
	file := p.ParseFile()
	got := printer.Serialize(file)
	if strings.Contains(got, "\r") {
		t.Fatalf("serialized output retained \\r: %q", got)
	}
}

func TestBoundaryMixedTabSpaceIndentation(t *testing.T) {
	src := "func test():\n\tvar x = 1\n    var y = 2\n"
	_, file := parseFile(t, src)
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
}

func TestBoundaryOverIndentationJump(t *testing.T) {
	src := "func test():\n\t\t\tvar x = 1\n"
	_, file := parseFile(t, src)
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
}

func TestBoundaryUnicodeIdentifiers(t *testing.T) {
	src := "var café = 1\nvar π = 2\n"
	p, file := parseFile(t, src)
	if err := p.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
	if toks := visitor.InvalidTokens(file); len(toks) != 0 {
		t.Fatalf("InvalidTokens = %v, want none", toks)
	}
}

// NBSP (U+00A0) is not whitespace to the classifier; it surfaces as an
// invalid token, never silently swallowed.
func TestBoundaryNBSPProducesInvalidToken(t *testing.T) {
	src := "var x = 1 \n"
	_, file := parseFile(t, src)
	toks := visitor.InvalidTokens(file)
	if len(toks) == 0 {
		t.Fatalf("InvalidTokens = none, want at least one for the NBSP")
	}
	found := false
	for _, tok := range toks {
		if tok.Text == " " {
			found = true
		}
	}
	if !found {
		t.Fatalf("InvalidTokens = %v, want one wrapping the NBSP", toks)
	}
	if got := printer.Serialize(file); got != src {
		t.Fatalf("Serialize = %q, want %q", got, src)
	}
}

// P6 (depth safety): deeply nested parens surface a typed overflow, never
// a crash.
func TestBoundaryDeepNestingHitsDepthCap(t *testing.T) {
	const depth = 100
	src := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	p := New(src, settings.New())
	expr := p.ParseExpression()
	if p.Err() == nil {
		t.Fatalf("Err() = nil, want a typed overflow for %d-deep nesting", depth)
	}
	if _, ok := p.Err().(*OverflowError); !ok {
		t.Fatalf("Err() = %T, want *OverflowError", p.Err())
	}
	_ = expr // a BadExpr placeholder is fine; the point is no panic occurred
}

// P5 (bracket balance): a parse with no invalid tokens has matched
// brackets at every level.
func TestBoundaryBracketBalanceWhenNoInvalidTokens(t *testing.T) {
	src := "var d = {\"a\": [1, 2, (3 + 4)]}\n"
	_, file := parseFile(t, src)
	if toks := visitor.InvalidTokens(file); len(toks) != 0 {
		t.Fatalf("InvalidTokens = %v, want none", toks)
	}

	depth := 0
	for _, tok := range visitor.Leaves(file) {
		switch tok.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth < 0 {
				t.Fatalf("unmatched closing bracket %q", tok.Text)
			}
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced brackets, final depth = %d", depth)
	}
}
