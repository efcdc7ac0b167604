package lex

import (
	"testing"

	"github.com/cwbudde/gdcst/pkg/token"
)

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind token.Kind
		expectedText string
	}{
		{"decimal int", "123", token.Int, "123"},
		{"hex int", "0xFF_FF", token.Int, "0xFF_FF"},
		{"binary int", "0b1010_0101", token.Int, "0b1010_0101"},
		{"underscored decimal", "1_000_000", token.Int, "1_000_000"},
		{"simple float", "3.14", token.Float, "3.14"},
		{"float with trailing digits only after dot", "0.5", token.Float, "0.5"},
		{"float with exponent", "1e10", token.Float, "1e10"},
		{"float with signed exponent", "1.5e-3", token.Float, "1.5e-3"},
		{"int not float: dot not followed by digit", "1.", token.Int, "1"},
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

func TestLexNumberDotIsSeparateToken(t *testing.T) {
	l := New("1.", 4)
	intTok := l.Next()
	if intTok.Kind != token.Int || intTok.Text != "1" {
		t.Fatalf("got %s %q, want Int \"1\"", intTok.Kind, intTok.Text)
	}
	dotTok := l.Next()
	if dotTok.Kind != token.Dot {
		t.Fatalf("got %s, want Dot", dotTok.Kind)
	}
}
