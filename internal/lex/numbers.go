package lex

import (
	"github.com/cwbudde/gdcst/internal/classify"
	"github.com/cwbudde/gdcst/pkg/token"
)

// lexNumber scans a decimal, hex (0x), or binary (0b) integer literal, or a
// decimal/exponent float literal. Underscores are accepted anywhere between
// digits as separators and kept verbatim in the token text (spec.md §3).
func (l *Lexer) lexNumber(start token.Position) token.Token {
	var text []rune

	if l.sc.Peek(0) == '0' && (l.sc.Peek(1) == 'x' || l.sc.Peek(1) == 'X') {
		text = append(text, l.sc.Advance(), l.sc.Advance())
		for classify.IsHexDigit(l.sc.Peek(0)) || l.sc.Peek(0) == '_' {
			text = append(text, l.sc.Advance())
		}
		return token.Token{Kind: token.Int, Text: string(text), Pos: start}
	}
	if l.sc.Peek(0) == '0' && (l.sc.Peek(1) == 'b' || l.sc.Peek(1) == 'B') {
		text = append(text, l.sc.Advance(), l.sc.Advance())
		for classify.IsBinDigit(l.sc.Peek(0)) || l.sc.Peek(0) == '_' {
			text = append(text, l.sc.Advance())
		}
		return token.Token{Kind: token.Int, Text: string(text), Pos: start}
	}

	for classify.IsDigit(l.sc.Peek(0)) || l.sc.Peek(0) == '_' {
		text = append(text, l.sc.Advance())
	}

	isFloat := false
	if l.sc.Peek(0) == '.' && classify.IsDigit(l.sc.Peek(1)) {
		isFloat = true
		text = append(text, l.sc.Advance()) // '.'
		for classify.IsDigit(l.sc.Peek(0)) || l.sc.Peek(0) == '_' {
			text = append(text, l.sc.Advance())
		}
	}
	if l.sc.Peek(0) == 'e' || l.sc.Peek(0) == 'E' {
		next := l.sc.Peek(1)
		offset := 1
		if next == '+' || next == '-' {
			offset = 2
			next = l.sc.Peek(2)
		}
		if classify.IsDigit(next) {
			isFloat = true
			for i := 0; i < offset+1; i++ {
				text = append(text, l.sc.Advance())
			}
			for classify.IsDigit(l.sc.Peek(0)) {
				text = append(text, l.sc.Advance())
			}
		}
	}

	kind := token.Int
	if isFloat {
		kind = token.Float
	}
	return token.Token{Kind: kind, Text: string(text), Pos: start}
}
