package parse

import "github.com/cwbudde/gdcst/pkg/token"

// Precedence levels, low to high, matching spec.md §4.5 point 4's ladder.
// Grounded on the teacher's internal/parser.parser.go precedence table
// (const-iota ladder + map[TokenType]int), generalized to GDScript's
// operator set including `not in`, `is`/`as`, bitwise ops, and `**`.
const (
	_ int = iota
	LOWEST
	ASSIGN  // = += -= *= /= %= **= &= |= ^= <<= >>= := (right-assoc)
	TERNARY // x if c else y (right-assoc)
	LOGOR   // or
	LOGAND  // and
	LOGNOT  // not (prefix) — the binding power used when parsing its operand
	COMPARE // == != < <= > >= in/not-in is as
	BITOR   // |
	BITXOR  // ^
	BITAND  // &
	SHIFT   // << >>
	SUM     // + -
	PRODUCT // * / %
	POWER   // **
	UNARY   // prefix - ! ~ await
	POSTFIX // . [ ] ( )
)

var assignOps = map[token.Kind]bool{
	token.Eq: true, token.PlusEq: true, token.MinusEq: true, token.StarEq: true,
	token.SlashEq: true, token.PercentEq: true, token.StarStarEq: true,
	token.AmpEq: true, token.PipeEq: true, token.CaretEq: true,
	token.ShlEq: true, token.ShrEq: true, token.Assign: true,
}

var infixPrecedence = map[token.Kind]int{
	token.KwIf: TERNARY,

	token.KwOr: LOGOR,

	token.KwAnd: LOGAND,

	token.EqEq: COMPARE, token.NotEq: COMPARE,
	token.Less: COMPARE, token.LessEq: COMPARE,
	token.Greater: COMPARE, token.GreaterEq: COMPARE,
	token.KwIn: COMPARE, token.KwIs: COMPARE, token.KwAs: COMPARE,

	token.Pipe:  BITOR,
	token.Caret: BITXOR,
	token.Amp:   BITAND,

	token.Shl: SHIFT, token.Shr: SHIFT,

	token.Plus: SUM, token.Minus: SUM,

	token.Star: PRODUCT, token.Slash: PRODUCT, token.Percent: PRODUCT,

	token.StarStar: POWER,

	token.Dot: POSTFIX, token.LBracket: POSTFIX, token.LParen: POSTFIX,
}

// precedenceOf returns the infix binding power of k, folding in the
// assignment operators (ASSIGN, handled outside the static map because the
// same Percent/Caret/Amp tokens are also used elsewhere contextually —
// assignment compound operators are unambiguous, so a direct map entry is
// safe for them specifically).
func precedenceOf(k token.Kind) int {
	if assignOps[k] {
		return ASSIGN
	}
	if p, ok := infixPrecedence[k]; ok {
		return p
	}
	return LOWEST
}

// rightAssoc reports whether the infix operator at this binding power
// recurses at the same precedence (right-associative) rather than one
// level higher (left-associative) — spec.md §4.5 point 5: assignment and
// the ternary are right-associative, everything else is left.
func rightAssoc(k token.Kind) bool {
	return assignOps[k] || k == token.KwIf
}
