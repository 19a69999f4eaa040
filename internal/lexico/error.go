package lexico

import "fmt"

type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindUnterminatedBlockComment
	ErrorKindMalformedNumber
	ErrorKindUnterminatedString
	ErrorKindInvalidCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnterminatedBlockComment:
		return "UnterminatedBlockComment"
	case ErrorKindMalformedNumber:
		return "MalformedNumber"
	case ErrorKindUnterminatedString:
		return "UnterminatedString"
	case ErrorKindInvalidCharacter:
		return "InvalidCharacter"
	default:
		return "<NONE>"
	}
}

// Error is a recoverable lexical fault. Loc.Pos is where the offending
// construct begins.
type Error struct {
	Kind ErrorKind
	Loc  Location
	Msg  string
}

func (e Error) Error() string {
	return fmt.Sprintf("Lexical error [line %d, column %d]: %s", e.Loc.Pos.Line, e.Loc.Pos.Column, e.Msg)
}

func errf(kind ErrorKind, loc Location, format string, a ...interface{}) Error {
	return Error{
		Kind: kind,
		Loc:  loc,
		Msg:  fmt.Sprintf(format, a...),
	}
}
