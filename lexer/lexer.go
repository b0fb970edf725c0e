package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Frusadev/mdparser/token"
)

// Lexer scans a source document left to right and hands out one token
// per call to Next. It keeps no lookahead buffer beyond the raw bytes
// of the source and never backtracks.
type Lexer struct {
	source string

	start   int // start of current lexeme
	current int // current position in source
}

func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Lex drains a fresh lexer over source and returns the whole token
// sequence, EOF included. It stops at the first lexical error.
func Lex(source string) ([]token.Token, error) {
	lexer := New(source)

	tokens := []token.Token{}
	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

type UnexpectedCharacterError struct {
	Char   rune
	Offset int
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

// Next scans and returns the next token. Once the end of the source is
// reached it returns an EOF token on every call.
func (l *Lexer) Next() (token.Token, error) {
	l.start = l.current
	if l.isAtEnd() {
		return l.emit(token.EOF), nil
	}

	char := l.advance()
	switch {
	case char == ' ':
		return l.emit(token.SPACE), nil
	case char == '\n':
		return l.emit(token.NEWLINE), nil
	case char == '_':
		return l.emit(token.ITALIC), nil
	case char == '*':
		// only the two-character marker is valid
		if l.match('*') {
			return l.emit(token.BOLD), nil
		}
	case char == '-':
		if strings.HasPrefix(l.source[l.current:], "--") {
			l.current += 2

			return l.emit(token.LINEBREAK), nil
		}

		return l.emit(token.LISTMARKER), nil
	case char == '#':
		return l.header(), nil
	case char == '`':
		if strings.HasPrefix(l.source[l.current:], "``") {
			l.current += 2

			return l.emit(token.CODEFENCE), nil
		}

		return l.emit(token.MONOSPACE), nil
	case isAlphaNumeric(char):
		return l.str(), nil
	}

	return token.Token{}, UnexpectedCharacterError{Char: char, Offset: l.start}
}

// header consumes the whole '#' run. Runs longer than five clamp to
// HEADER5; the lexeme keeps every '#'.
func (l *Lexer) header() token.Token {
	level := 1
	for l.peek() == '#' {
		l.advance()
		level++
	}
	if level > 5 {
		level = 5
	}

	return l.emit(token.HEADER1 + token.Kind(level-1))
}

// str consumes a maximal alphanumeric run.
func (l *Lexer) str() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	return l.emit(token.STRING)
}

func isAlphaNumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func (l Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l Lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *Lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

func (l *Lexer) match(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()

	return true
}

func (l *Lexer) emit(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Text: l.source[l.start:l.current], Offset: l.start}
}
