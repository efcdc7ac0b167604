package token

// keywords is the closed, case-sensitive GDScript keyword table. Unlike the
// teacher's DWScript lexer (which case-folds every keyword — Pascal is
// case-insensitive), GDScript keywords are lowercase and case-sensitive:
// "If" and "IF" are ordinary identifiers, not the If keyword.
var keywords = map[string]Kind{
	"var": KwVar, "const": KwConst, "func": KwFunc,
	"class": KwClass, "class_name": KwClassName, "extends": KwExtends,
	"tool": KwTool, "static": KwStatic, "signal": KwSignal, "enum": KwEnum,
	"if": KwIf, "elif": KwElif, "else": KwElse,
	"for": KwFor, "in": KwIn, "while": KwWhile,
	"match": KwMatch, "when": KwWhen,
	"return": KwReturn, "pass": KwPass, "break": KwBreak, "continue": KwContinue,
	"breakpoint": KwBreakpoint,
	"and":        KwAnd, "or": KwOr, "not": KwNot,
	"is": KwIs, "as": KwAs, "await": KwAwait, "yield": KwYield,
	"true": KwTrue, "false": KwFalse, "null": KwNull,
	"self": KwSelf, "super": KwSuper,
	"get": KwGet, "set": KwSet, "onready": KwOnready,
	"abstract": KwAbstract, "remote": KwRemote, "rpc": KwRpc,
	"preload": KwPreload, "setget": KwSetget,
}

var keywordText map[Kind]string

func init() {
	keywordText = make(map[Kind]string, len(keywords))
	for text, kind := range keywords {
		keywordText[kind] = text
	}
}

// LookupIdent classifies an identifier run as a keyword kind, or returns
// Ident if it names no keyword. Case-sensitive: GDScript keywords are always
// lowercase.
func LookupIdent(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
