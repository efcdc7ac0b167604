package lex

import "github.com/cwbudde/gdcst/pkg/token"

// threeChar and twoChar are tried in order (longest match first) before
// falling back to single-character punctuation. Greedy/maximal-munch, per
// spec.md §4.2.
var threeChar = map[string]token.Kind{
	"**=": token.StarStarEq,
	"<<=": token.ShlEq,
	">>=": token.ShrEq,
}

var twoChar = map[string]token.Kind{
	"**": token.StarStar,
	"==": token.EqEq,
	"!=": token.NotEq,
	"<=": token.LessEq,
	">=": token.GreaterEq,
	"<<": token.Shl,
	">>": token.Shr,
	":=": token.Assign,
	"+=": token.PlusEq,
	"-=": token.MinusEq,
	"*=": token.StarEq,
	"/=": token.SlashEq,
	"%=": token.PercentEq,
	"&=": token.AmpEq,
	"|=": token.PipeEq,
	"^=": token.CaretEq,
	"&&": token.AmpAmp,
	"||": token.PipePipe,
	"->": token.Arrow,
	"..": token.DotDot,
}

var oneChar = map[rune]token.Kind{
	':': token.Colon, ',': token.Comma, '.': token.Dot,
	'$': token.Dollar, '^': token.Caret, '&': token.Amp, '@': token.At,
	';': token.Semicolon,
	'(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket,
	'{': token.LBrace, '}': token.RBrace,
	'+': token.Plus, '-': token.Minus, '!': token.Bang, '~': token.Tilde,
	'*': token.Star, '/': token.Slash, '%': token.Percent,
	'|': token.Pipe, '=': token.Eq, '<': token.Less, '>': token.Greater,
}

func (l *Lexer) lexOperatorOrPunct(start token.Position) token.Token {
	three := string([]rune{l.sc.Peek(0), l.sc.Peek(1), l.sc.Peek(2)})
	if kind, ok := threeChar[three]; ok {
		l.sc.Advance()
		l.sc.Advance()
		l.sc.Advance()
		return token.Token{Kind: kind, Text: three, Pos: start}
	}

	two := string([]rune{l.sc.Peek(0), l.sc.Peek(1)})
	if kind, ok := twoChar[two]; ok {
		l.sc.Advance()
		l.sc.Advance()
		return token.Token{Kind: kind, Text: two, Pos: start}
	}

	ch := l.sc.Peek(0)
	if kind, ok := oneChar[ch]; ok {
		l.sc.Advance()
		return token.Token{Kind: kind, Text: string(ch), Pos: start}
	}

	l.sc.Advance()
	return token.Token{Kind: token.Illegal, Text: string(ch), Pos: start}
}
