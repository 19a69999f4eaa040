package lexico

import "strings"

const (
	boolTrue  = "verdadeiro"
	boolFalse = "falso"
)

// keywords is keyed by the lowercase spelling. It is never written after
// package initialization, so scanners on different goroutines share it.
var keywords = map[string]TokenType{
	"se":       TokenTypeKeywordIf,
	"senao":    TokenTypeKeywordElse,
	"para":     TokenTypeKeywordFor,
	"faca":     TokenTypeKeywordDo,
	"enquanto": TokenTypeKeywordWhile,
	"escreva":  TokenTypeKeywordWrite,
	"leia":     TokenTypeKeywordRead,

	"inteiro":   TokenTypeKeywordInt,
	"flutuante": TokenTypeKeywordFloat,
	"logico":    TokenTypeKeywordBool,
	"cadeia":    TokenTypeKeywordString,

	"inicio": TokenTypeKeywordBegin,
	"fim":    TokenTypeKeywordEnd,

	"e":  TokenTypeKeywordAnd,
	"ou": TokenTypeKeywordOr,

	boolTrue:  TokenTypeLiteralBool,
	boolFalse: TokenTypeLiteralBool,
}

// twoCharOperators is tried before oneCharOperators.
var twoCharOperators = map[[2]rune]TokenType{
	{'=', '='}: TokenTypeOperatorEqual,
	{'!', '='}: TokenTypeOperatorNotEqual,
	{'+', '+'}: TokenTypeOperatorIncrement,
	{'-', '-'}: TokenTypeOperatorDecrement,
	{'>', '='}: TokenTypeOperatorGreaterEqual,
	{'<', '='}: TokenTypeOperatorLessEqual,
	{'&', '&'}: TokenTypeOperatorConcat,
}

var oneCharOperators = map[rune]TokenType{
	'+': TokenTypeOperatorPlus,
	'-': TokenTypeOperatorMinus,
	'*': TokenTypeOperatorMultiply,
	'/': TokenTypeOperatorDivide,
	'>': TokenTypeOperatorGreater,
	'<': TokenTypeOperatorLess,
	'=': TokenTypeOperatorAssign,
	'!': TokenTypeOperatorLogicNot,
	'(': TokenTypeOpenParen,
	')': TokenTypeCloseParen,
	'[': TokenTypeOpenBracket,
	']': TokenTypeCloseBracket,
	';': TokenTypeSemicolon,
	',': TokenTypeComma,
}

func stringGetKeywordTokenType(str string) TokenType {
	if t, ok := keywords[strings.ToLower(str)]; ok {
		return t
	}
	return TokenTypeId
}
