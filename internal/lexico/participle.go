package lexico

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Definition plugs the scanner into participle parsers. Token types are
// referenced in grammars by the camel-cased kind name, e.g. "TypeInt",
// "Identifier" or "IntegerLiteral".
type Definition struct {
	Config Config
}

var _ lexer.Definition = Definition{}

func (d Definition) Symbols() map[string]lexer.TokenType {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for t := TokenTypeEOF + 1; t < tokenTypeCount; t++ {
		symbols[symbolName(t)] = lexer.TokenType(t)
	}
	return symbols
}

// Lex fails with the first lexical error of the input, if any.
func (d Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	unit := NewUnit(filename, string(content))
	if !unit.Scan(d.Config) {
		return nil, unit.Errors[0]
	}
	return &tokenStream{unit: unit}, nil
}

type tokenStream struct {
	unit *Unit
	next int
}

func (ts *tokenStream) Next() (lexer.Token, error) {
	tkn := ts.unit.Tokens[ts.next]
	if ts.next < len(ts.unit.Tokens)-1 {
		ts.next++
	}

	t := lexer.TokenType(tkn.Type)
	if tkn.Type == TokenTypeEOF {
		t = lexer.EOF
	}

	return lexer.Token{
		Type:  t,
		Value: tkn.Text,
		Pos: lexer.Position{
			Filename: ts.unit.Filepath,
			Offset:   tkn.Loc.Rng.Begin,
			Line:     tkn.Loc.Pos.Line,
			Column:   tkn.Loc.Pos.Column,
		},
	}, nil
}

func symbolName(t TokenType) string {
	var b strings.Builder
	for _, part := range strings.Split(t.String(), "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
