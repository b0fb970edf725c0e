package lexer_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Frusadev/mdparser/lexer"
	"github.com/Frusadev/mdparser/token"
	"github.com/Frusadev/mdparser/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
)

func TestLex(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected []token.Token
	}{
		{"Hello", []token.Token{
			{Kind: token.STRING, Text: "Hello", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 5},
		}},
		{"a b", []token.Token{
			{Kind: token.STRING, Text: "a", Offset: 0},
			{Kind: token.SPACE, Text: " ", Offset: 1},
			{Kind: token.STRING, Text: "b", Offset: 2},
			{Kind: token.EOF, Text: "", Offset: 3},
		}},
		{"**", []token.Token{
			{Kind: token.BOLD, Text: "**", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 2},
		}},
		{"_", []token.Token{
			{Kind: token.ITALIC, Text: "_", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 1},
		}},
		{"`", []token.Token{
			{Kind: token.MONOSPACE, Text: "`", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 1},
		}},
		{"```", []token.Token{
			{Kind: token.CODEFENCE, Text: "```", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 3},
		}},
		{"-", []token.Token{
			{Kind: token.LISTMARKER, Text: "-", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 1},
		}},
		{"--", []token.Token{
			{Kind: token.LISTMARKER, Text: "-", Offset: 0},
			{Kind: token.LISTMARKER, Text: "-", Offset: 1},
			{Kind: token.EOF, Text: "", Offset: 2},
		}},
		{"---", []token.Token{
			{Kind: token.LINEBREAK, Text: "---", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 3},
		}},
		{"###", []token.Token{
			{Kind: token.HEADER3, Text: "###", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 3},
		}},
		{"#######", []token.Token{
			{Kind: token.HEADER5, Text: "#######", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 7},
		}},
		{"\n", []token.Token{
			{Kind: token.NEWLINE, Text: "\n", Offset: 0},
			{Kind: token.EOF, Text: "", Offset: 1},
		}},
	}

	for _, testcase := range testcases {
		tokens, err := lexer.Lex(testcase.input)
		if err != nil {
			t.Errorf("Lex(%q) returned error: %v", testcase.input, err)

			continue
		}
		if diff := cmp.Diff(testcase.expected, tokens); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestLexError(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input  string
		char   rune
		offset int
	}{
		{"*bold*", '*', 0},
		{"(", '(', 0},
		{"a!", '!', 1},
	}

	for _, testcase := range testcases {
		_, err := lexer.Lex(testcase.input)
		if err == nil {
			t.Errorf("Lex(%q) should fail", testcase.input)

			continue
		}
		var lexErr lexer.UnexpectedCharacterError
		if !errors.As(err, &lexErr) {
			t.Errorf("Lex(%q) returned %v, expected UnexpectedCharacterError", testcase.input, err)

			continue
		}
		if lexErr.Char != testcase.char || lexErr.Offset != testcase.offset {
			t.Errorf("Lex(%q) failed at %q offset %d, expected %q offset %d",
				testcase.input, lexErr.Char, lexErr.Offset, testcase.char, testcase.offset)
		}
	}
}

// Maximal alphanumeric runs never split at arbitrary positions.
func TestStringRuns(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Lex("foo bar  baz42")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}

	var runs []string
	for _, tok := range tokens {
		if tok.Kind == token.STRING {
			runs = append(runs, tok.Text)
		}
	}

	expected := []string{"foo", "bar", "baz42"}
	if diff := cmp.Diff(expected, runs); diff != "" {
		t.Errorf("string runs mismatch (-want +got):\n%s", diff)
	}
}

// Next keeps returning EOF once the input is exhausted.
func TestNextAtEnd(t *testing.T) {
	t.Parallel()

	l := lexer.New("a")
	if tok, err := l.Next(); err != nil || tok.Kind != token.STRING {
		t.Fatalf("first token is %v (err %v), expected STRING", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		if tok.Kind != token.EOF {
			t.Errorf("Next returned %v after end of input, expected EOF", tok)
		}
	}
}

// Re-lexing the same input from a fresh lexer yields the same sequence.
func TestRelex(t *testing.T) {
	t.Parallel()

	const input = "# a\n\n- **b** _c_\n"
	first, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	second, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("token sequences differ (-first +second):\n%s", diff)
	}
}

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Errorf("failed to find test files: %v", err)
		return
	}

	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		tokens, err := lexer.Lex(string(source))
		if err != nil {
			t.Errorf("%s returned error: %v", testfile, err)
			return
		}

		var builder strings.Builder
		for _, token := range tokens {
			builder.WriteString(token.String())
			builder.WriteString("\n")
		}

		g := goldie.New(t, goldie.WithFixtureDir("."))
		g.Assert(t, testfile, []byte(builder.String()))
	}
}
