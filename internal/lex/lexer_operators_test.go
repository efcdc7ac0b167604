package lex

import (
	"testing"

	"github.com/cwbudde/gdcst/pkg/token"
)

func TestLexOperatorsMaximalMunch(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind token.Kind
		expectedText string
	}{
		{"triple char **=", "**=", token.StarStarEq, "**="},
		{"two char ** before single *", "**", token.StarStar, "**"},
		{"single * when ** not present", "* 1", token.Star, "*"},
		{"walrus-less assign :=", ":=", token.Assign, ":="},
		{"arrow ->", "->", token.Arrow, "->"},
		{"range ..", "..", token.DotDot, ".."},
		{"single dot when no second dot", ". x", token.Dot, "."},
		{"shift-left-eq before shift-left", "<<=", token.ShlEq, "<<="},
		{"shift-left alone", "<< 1", token.Shl, "<<"},
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

func TestLexUnknownCharIsIllegal(t *testing.T) {
	l := New("`", 4)
	tok := l.Next()
	if tok.Kind != token.Illegal {
		t.Fatalf("kind = %s, want Illegal", tok.Kind)
	}
	if tok.Text != "`" {
		t.Fatalf("text = %q, want \"`\"", tok.Text)
	}
}

func TestLexLineContinuation(t *testing.T) {
	l := New("\\  \nx", 4)
	tok := l.Next()
	if tok.Kind != token.LineContinuation {
		t.Fatalf("kind = %s, want LineContinuation", tok.Kind)
	}
	if tok.Text != "\\  \n" {
		t.Fatalf("text = %q, want %q", tok.Text, "\\  \n")
	}
	next := l.Next()
	if next.Kind != token.Ident || next.Text != "x" {
		t.Fatalf("following token = %s %q, want Ident \"x\"", next.Kind, next.Text)
	}
}

func TestLexBareBackslashIsIllegal(t *testing.T) {
	l := New("\\x", 4)
	tok := l.Next()
	if tok.Kind != token.Illegal || tok.Text != "\\" {
		t.Fatalf("got %s %q, want Illegal \"\\\\\"", tok.Kind, tok.Text)
	}
}

func TestLexNonBreakingSpaceIsIllegal(t *testing.T) {
	l := New(" ", 4)
	tok := l.Next()
	if tok.Kind != token.Illegal {
		t.Fatalf("kind = %s, want Illegal", tok.Kind)
	}
	if tok.Text != " " {
		t.Fatalf("text = %q, want NBSP", tok.Text)
	}
}
