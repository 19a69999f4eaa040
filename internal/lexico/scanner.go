package lexico

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const eofRune rune = -1

type charClass int

const (
	charClassEOF charClass = iota
	charClassDigit
	charClassLetter
	charClassQuote
	charClassOther
)

type Scanner struct {
	unit      *Unit
	cfg       Config
	it        int
	c         rune
	size      int
	pos       Position
	lineBegin int
	done      bool
}

func NewScanner(unit *Unit, cfg Config) *Scanner {
	res := &Scanner{
		unit: unit,
		cfg:  cfg,
		pos:  Position{Line: 1, Column: 1},
	}
	res.c, res.size = res.decode(0)
	return res
}

// Scan returns the next token. Faulty constructs are reported to the unit and
// skipped, so the result is always a real token; once the input is exhausted
// every call returns TokenTypeEOF.
func (s *Scanner) Scan() Token {
	for {
		s.skipTrivia()
		if tkn, ok := s.scanToken(); ok {
			return tkn
		}
	}
}

func (s *Scanner) scanToken() (Token, bool) {
	begin := s.location()

	switch s.classify(s.c) {
	case charClassEOF:
		if !s.done {
			s.done = true
			s.unit.Lines = append(s.unit.Lines, Range{s.lineBegin, len(s.unit.Content)})
		}
		return s.token(TokenTypeEOF, "", begin), true
	case charClassDigit:
		return s.scanNumber(begin)
	case charClassLetter:
		text := s.scanId()
		return s.token(stringGetKeywordTokenType(text), text, begin), true
	case charClassQuote:
		return s.scanString(begin)
	default:
		if tkn, ok := s.scanOperator(begin); ok {
			return tkn, true
		}
		s.skipInvalid(begin)
		return Token{}, false
	}
}

func (s *Scanner) classify(c rune) charClass {
	switch {
	case c == eofRune:
		return charClassEOF
	case isDigit(c):
		return charClassDigit
	case unicode.IsLetter(c) || c == '_':
		return charClassLetter
	case c == '"' || (c == '\'' && s.cfg.SingleQuotes):
		return charClassQuote
	default:
		return charClassOther
	}
}

func (s *Scanner) decode(at int) (rune, int) {
	if at >= len(s.unit.Content) {
		return eofRune, 0
	}
	return utf8.DecodeRuneInString(s.unit.Content[at:])
}

func (s *Scanner) eof() bool {
	return s.it >= len(s.unit.Content)
}

func (s *Scanner) peekNext() rune {
	c, _ := s.decode(s.it + s.size)
	return c
}

func (s *Scanner) eat() bool {
	if s.eof() {
		return false
	}

	prev, prevIt := s.c, s.it
	s.it += s.size
	s.c, s.size = s.decode(s.it)

	if prev == '\n' {
		s.pos.Column = 1
		s.pos.Line++
		s.unit.Lines = append(s.unit.Lines, Range{s.lineBegin, prevIt})
		s.lineBegin = s.it
	} else {
		s.pos.Column++
	}
	return true
}

func (s *Scanner) location() Location {
	return Location{
		Pos: s.pos,
		Rng: Range{Begin: s.it, End: s.it},
	}
}

func (s *Scanner) token(t TokenType, text string, begin Location) Token {
	begin.Rng.End = s.it
	return Token{Type: t, Text: text, Loc: begin}
}

func (s *Scanner) errf(kind ErrorKind, begin Location, format string, a ...interface{}) {
	begin.Rng.End = s.it
	s.unit.errf(kind, begin, format, a...)
}

func (s *Scanner) skipTrivia() {
	for {
		s.skipWhitespace()
		if !s.skipComment() {
			return
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for s.c == ' ' || s.c == '\t' || s.c == '\r' || s.c == '\n' {
		s.eat()
	}
}

func (s *Scanner) skipComment() bool {
	if s.c != '/' {
		return false
	}

	switch s.peekNext() {
	case '/':
		s.eat()
		s.eat()
		s.scanSingleLineComment()
		return true
	case '*':
		begin := s.location()
		s.eat()
		s.eat()
		if !s.scanMultiLineComment() {
			s.errf(ErrorKindUnterminatedBlockComment, begin, "unterminated block comment")
		}
		return true
	default:
		return false
	}
}

// the newline is left for skipWhitespace
func (s *Scanner) scanSingleLineComment() {
	for s.c != '\n' && s.eat() {
	}
}

func (s *Scanner) scanMultiLineComment() bool {
	for !s.eof() {
		if s.c == '*' && s.peekNext() == '/' {
			s.eat()
			s.eat()
			return true
		}
		s.eat()
	}
	return false
}

func (s *Scanner) eatDigits() {
	for isDigit(s.c) {
		s.eat()
	}
}

func (s *Scanner) scanNumber(begin Location) (Token, bool) {
	s.eatDigits()
	if s.c != '.' || !isDigit(s.peekNext()) {
		return s.token(TokenTypeLiteralInt, s.unit.Content[begin.Rng.Begin:s.it], begin), true
	}

	s.eat()
	s.eatDigits()
	if s.c != '.' {
		return s.token(TokenTypeLiteralFloat, s.unit.Content[begin.Rng.Begin:s.it], begin), true
	}

	for s.c == '.' || isDigit(s.c) {
		s.eat()
	}
	s.errf(ErrorKindMalformedNumber, begin, "malformed number literal: '%s'", s.unit.Content[begin.Rng.Begin:s.it])
	return Token{}, false
}

func (s *Scanner) scanString(begin Location) (Token, bool) {
	quote := s.c
	s.eat()

	var text strings.Builder
	for {
		switch {
		case s.eof():
			s.errf(ErrorKindUnterminatedString, begin, "unterminated string literal")
			return Token{}, false
		case s.c == '\n':
			s.errf(ErrorKindUnterminatedString, begin, "unterminated string literal before end of line")
			return Token{}, false
		case s.c == quote:
			s.eat()
			return s.token(TokenTypeLiteralString, text.String(), begin), true
		case s.c == '\\' && s.peekNext() != eofRune:
			s.eat()
			text.WriteRune(unescape(s.c))
			s.eat()
		default:
			text.WriteRune(s.c)
			s.eat()
		}
	}
}

func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return c
	}
}

func (s *Scanner) scanId() string {
	beginIt := s.it
	for unicode.IsLetter(s.c) || unicode.IsDigit(s.c) || s.c == '_' {
		s.eat()
	}
	return s.unit.Content[beginIt:s.it]
}

func (s *Scanner) scanOperator(begin Location) (Token, bool) {
	if t, ok := twoCharOperators[[2]rune{s.c, s.peekNext()}]; ok {
		s.eat()
		s.eat()
		return s.token(t, s.unit.Content[begin.Rng.Begin:s.it], begin), true
	}

	if t, ok := oneCharOperators[s.c]; ok {
		s.eat()
		return s.token(t, s.unit.Content[begin.Rng.Begin:s.it], begin), true
	}

	return Token{}, false
}

func (s *Scanner) skipInvalid(begin Location) {
	c := s.c
	s.eat()
	s.errf(ErrorKindInvalidCharacter, begin, "invalid character: '%c'", c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// Scan tokenizes content with the canonical grammar. The token slice always
// ends with exactly one TokenTypeEOF.
func Scan(content string) ([]Token, []Error) {
	u := NewUnit("", content)
	u.Scan(Config{})
	return u.Tokens, u.Errors
}
