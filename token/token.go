package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	// UNTYPED is the zero value; a Token carries it only before the
	// lexer has classified it.
	UNTYPED Kind = iota
	EOF

	// Inline tokens.
	STRING
	SPACE
	NEWLINE
	BOLD
	ITALIC
	MONOSPACE

	// Block tokens.
	LISTMARKER
	HEADER1
	HEADER2
	HEADER3
	HEADER4
	HEADER5
	CODEFENCE
	LINEBREAK
)

// Token is a classified slice of the source text.
// Tokens are immutable values; equality is by kind and text.
type Token struct {
	Kind   Kind
	Text   string
	Offset int // byte offset of the first character in the source
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Text, t.Offset)
}

func (t Token) Base() Token {
	return t
}

// HeaderLevel returns 1..5 for HEADER1..HEADER5 tokens and 0 for
// every other kind.
func (t Token) HeaderLevel() int {
	if t.Kind >= HEADER1 && t.Kind <= HEADER5 {
		return int(t.Kind-HEADER1) + 1
	}

	return 0
}
