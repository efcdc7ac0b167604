package lex

import (
	"testing"

	"github.com/cwbudde/gdcst/pkg/token"
)

func TestLexStrings(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind token.Kind
		expectedText string
	}{
		{"double quoted", `"hello"`, token.String, `"hello"`},
		{"single quoted", `'hello'`, token.String, `'hello'`},
		{"empty string", `""`, token.String, `""`},
		{"escaped quote", `"it\"s"`, token.String, `"it\"s"`},
		{"triple double quoted multiline", "\"\"\"a\nb\"\"\"", token.String, "\"\"\"a\nb\"\"\""},
		{"raw string", `r"a\b"`, token.String, `r"a\b"`},
		{"unterminated single-line string is illegal", `"abc`, token.Illegal, `"abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input, 4)
			tok := l.Next()
			if tok.Kind != tt.expectedKind {
				t.Fatalf("kind = %s, want %s", tok.Kind, tt.expectedKind)
			}
			if tok.Text != tt.expectedText {
				t.Fatalf("text = %q, want %q", tok.Text, tt.expectedText)
			}
		})
	}
}

func TestLexUnterminatedStringStopsBeforeNewline(t *testing.T) {
	l := New("\"abc\ndef", 4)
	tok := l.Next()
	if tok.Kind != token.Illegal {
		t.Fatalf("kind = %s, want Illegal", tok.Kind)
	}
	if tok.Text != `"abc` {
		t.Fatalf("text = %q, want %q", tok.Text, `"abc`)
	}
	nl := l.Next()
	if nl.Kind != token.Newline {
		t.Fatalf("following token kind = %s, want Newline", nl.Kind)
	}
}
