package lexico

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TokenTypeNone TokenType = iota
	TokenTypeEOF

	// Literals
	TokenTypeLiteralInt
	TokenTypeLiteralFloat
	TokenTypeLiteralString
	TokenTypeLiteralBool

	// ID
	TokenTypeId

	// Keywords
	TokenTypeKeywordIf
	TokenTypeKeywordElse
	TokenTypeKeywordFor
	TokenTypeKeywordDo
	TokenTypeKeywordWhile
	TokenTypeKeywordWrite
	TokenTypeKeywordRead
	TokenTypeKeywordInt
	TokenTypeKeywordFloat
	TokenTypeKeywordBool
	TokenTypeKeywordString
	TokenTypeKeywordBegin
	TokenTypeKeywordEnd
	TokenTypeKeywordAnd
	TokenTypeKeywordOr

	// Operators
	TokenTypeOperatorPlus
	TokenTypeOperatorMinus
	TokenTypeOperatorMultiply
	TokenTypeOperatorDivide
	TokenTypeOperatorGreater
	TokenTypeOperatorLess
	TokenTypeOperatorGreaterEqual
	TokenTypeOperatorLessEqual
	TokenTypeOperatorEqual
	TokenTypeOperatorNotEqual
	TokenTypeOperatorAssign
	TokenTypeOperatorConcat
	TokenTypeOperatorIncrement
	TokenTypeOperatorDecrement
	TokenTypeOperatorLogicNot

	// Separators
	TokenTypeOpenParen
	TokenTypeCloseParen
	TokenTypeOpenBracket
	TokenTypeCloseBracket
	TokenTypeSemicolon
	TokenTypeComma

	tokenTypeCount
)

var tokenTypeNames = [...]string{
	TokenTypeNone: "<NONE>",
	TokenTypeEOF:  "end-of-input",

	TokenTypeLiteralInt:    "integer-literal",
	TokenTypeLiteralFloat:  "float-literal",
	TokenTypeLiteralString: "string-literal",
	TokenTypeLiteralBool:   "boolean-literal",

	TokenTypeId: "identifier",

	TokenTypeKeywordIf:     "if",
	TokenTypeKeywordElse:   "else",
	TokenTypeKeywordFor:    "for",
	TokenTypeKeywordDo:     "do",
	TokenTypeKeywordWhile:  "while",
	TokenTypeKeywordWrite:  "write",
	TokenTypeKeywordRead:   "read",
	TokenTypeKeywordInt:    "type-int",
	TokenTypeKeywordFloat:  "type-float",
	TokenTypeKeywordBool:   "type-bool",
	TokenTypeKeywordString: "type-string",
	TokenTypeKeywordBegin:  "block-begin",
	TokenTypeKeywordEnd:    "block-end",
	TokenTypeKeywordAnd:    "logical-and",
	TokenTypeKeywordOr:     "logical-or",

	TokenTypeOperatorPlus:         "plus",
	TokenTypeOperatorMinus:        "minus",
	TokenTypeOperatorMultiply:     "star",
	TokenTypeOperatorDivide:       "slash",
	TokenTypeOperatorGreater:      "greater",
	TokenTypeOperatorLess:         "less",
	TokenTypeOperatorGreaterEqual: "greater-eq",
	TokenTypeOperatorLessEqual:    "less-eq",
	TokenTypeOperatorEqual:        "equals",
	TokenTypeOperatorNotEqual:     "not-equals",
	TokenTypeOperatorAssign:       "assign",
	TokenTypeOperatorConcat:       "concat",
	TokenTypeOperatorIncrement:    "increment",
	TokenTypeOperatorDecrement:    "decrement",
	TokenTypeOperatorLogicNot:     "not",

	TokenTypeOpenParen:    "paren-open",
	TokenTypeCloseParen:   "paren-close",
	TokenTypeOpenBracket:  "bracket-open",
	TokenTypeCloseBracket: "bracket-close",
	TokenTypeSemicolon:    "semicolon",
	TokenTypeComma:        "comma",
}

func (t TokenType) String() string {
	if t < 0 || t >= tokenTypeCount {
		return "<UNKNOWN>"
	}
	return tokenTypeNames[t]
}

func (t TokenType) IsLiteral() bool {
	return t >= TokenTypeLiteralInt && t <= TokenTypeLiteralBool
}

func (t TokenType) IsKeyword() bool {
	return t >= TokenTypeKeywordIf && t <= TokenTypeKeywordOr
}

func (t TokenType) IsOperator() bool {
	return t >= TokenTypeOperatorPlus && t <= TokenTypeOperatorLogicNot
}

func (t TokenType) IsSeparator() bool {
	return t >= TokenTypeOpenParen && t <= TokenTypeComma
}

// Range is a half open byte range into the unit content.
type Range struct {
	Begin, End int
}

// Position is 1-based, columns count runes.
type Position struct {
	Line, Column int
}

type Location struct {
	Pos Position
	Rng Range
}

// Token is a classified lexeme. Text of a string literal holds the decoded
// value without quotes; Loc.Rng always covers the raw source text.
type Token struct {
	Type TokenType
	Text string
	Loc  Location
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, line=%d, col=%d)", t.Type, t.Text, t.Loc.Pos.Line, t.Loc.Pos.Column)
}

func (t Token) Int() (int64, error) {
	if t.Type != TokenTypeLiteralInt {
		return 0, fmt.Errorf("token %s is not an %s", t.Type, TokenTypeLiteralInt)
	}
	return strconv.ParseInt(t.Text, 10, 64)
}

func (t Token) Float() (float64, error) {
	switch t.Type {
	case TokenTypeLiteralInt, TokenTypeLiteralFloat:
		return strconv.ParseFloat(t.Text, 64)
	default:
		return 0, fmt.Errorf("token %s is not a numeric literal", t.Type)
	}
}

func (t Token) Bool() (bool, error) {
	if t.Type != TokenTypeLiteralBool {
		return false, fmt.Errorf("token %s is not a %s", t.Type, TokenTypeLiteralBool)
	}
	return strings.ToLower(t.Text) == boolTrue, nil
}
