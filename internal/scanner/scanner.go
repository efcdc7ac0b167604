// Package scanner is the streaming character source behind the tokenizer:
// a rune-at-a-time cursor with lookahead, BOM stripping, and the \r
// normalization the round-trip contract allows (spec.md §6, §9).
package scanner

import (
	"unicode/utf8"

	"github.com/cwbudde/gdcst/pkg/token"
)

// Scanner exposes a small peek/advance API over a pre-decoded rune slice.
// Decoding the whole input up front (rather than re-decoding UTF-8 on every
// Advance) keeps Peek(n) O(1), which the lexer leans on for
// multi-character lookahead (e.g. distinguishing "**=" from "**" from "*",
// or a raw-string 'r' prefix from an identifier).
type Scanner struct {
	runes  []rune
	pos    int // index into runes
	line   int
	column int // rune column within the current line, 1-based
}

// New strips a UTF-8 BOM if present, then strips every '\r' byte
// unconditionally — "\r\n" becomes "\n", and an isolated "\r" is dropped
// without ever acting as a line break, matching spec.md's round-trip
// contract and its Open Question about mixed line endings (see DESIGN.md).
func New(src string) *Scanner {
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		src = src[3:]
	}
	runes := make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == '\r' {
			i += size
			continue
		}
		if r == utf8.RuneError && size == 1 {
			r = rune(src[i])
		}
		runes = append(runes, r)
		i += size
	}
	return &Scanner{runes: runes, line: 1, column: 1}
}

// Pos returns the position of the rune that Peek(0) would return.
func (s *Scanner) Pos() token.Position {
	return token.Position{Offset: s.pos, Line: s.line, Column: s.column}
}

// AtEnd reports whether the scanner has consumed every rune.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.runes)
}

// Peek returns the rune n positions ahead of the cursor (0 = next rune to
// be read) or 0 past end of input.
func (s *Scanner) Peek(n int) rune {
	idx := s.pos + n
	if idx < 0 || idx >= len(s.runes) {
		return 0
	}
	return s.runes[idx]
}

// Advance consumes and returns the next rune, updating line/column
// bookkeeping. Returns 0 at end of input.
func (s *Scanner) Advance() rune {
	if s.AtEnd() {
		return 0
	}
	r := s.runes[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

// Remaining reports how many runes are still unread.
func (s *Scanner) Remaining() int {
	return len(s.runes) - s.pos
}
