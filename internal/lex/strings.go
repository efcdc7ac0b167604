package lex

import (
	"github.com/cwbudde/gdcst/internal/classify"
	"github.com/cwbudde/gdcst/pkg/token"
)

// lexString scans one of GDScript's four string bounding styles — '...',
// "...", '''...''', """..."""  — with an optional raw prefix already
// consumed by the caller when raw is true. An unterminated string (no
// closing quote before a bare newline for single-line forms, or before EOF
// for triple-quoted forms) yields an Illegal token carrying whatever text
// was actually read; the scanner still advances past every character
// (spec.md §7 category 1: never thrown, always captured).
func (l *Lexer) lexString(start token.Position, raw bool) token.Token {
	var text []rune
	if raw {
		text = append(text, 'r')
	}

	quote := l.sc.Advance()
	text = append(text, quote)

	triple := l.sc.Peek(0) == quote && l.sc.Peek(1) == quote
	if triple {
		text = append(text, l.sc.Advance(), l.sc.Advance())
	}

	terminated := false
	for !l.sc.AtEnd() {
		ch := l.sc.Peek(0)

		if !triple && classify.IsNewline(ch) {
			break // unterminated single-line string: stop before the newline
		}

		if ch == '\\' && !raw {
			text = append(text, l.sc.Advance())
			if !l.sc.AtEnd() {
				text = append(text, l.sc.Advance())
			}
			continue
		}

		if ch == quote {
			if !triple {
				text = append(text, l.sc.Advance())
				terminated = true
				break
			}
			if l.sc.Peek(1) == quote && l.sc.Peek(2) == quote {
				text = append(text, l.sc.Advance(), l.sc.Advance(), l.sc.Advance())
				terminated = true
				break
			}
		}

		text = append(text, l.sc.Advance())
	}

	kind := token.String
	if !terminated {
		kind = token.Illegal
	}
	return token.Token{Kind: kind, Text: string(text), Pos: start}
}
