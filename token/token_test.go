package token_test

import (
	"testing"

	"github.com/Frusadev/mdparser/token"
)

func TestString(t *testing.T) {
	t.Parallel()

	tok := token.Token{Kind: token.BOLD, Text: "**", Offset: 4}
	expected := `{BOLD, "**", 4}`
	if actual := tok.String(); actual != expected {
		t.Errorf("String returned %s, expected %s", actual, expected)
	}
}

func TestHeaderLevel(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		kind     token.Kind
		expected int
	}{
		{token.HEADER1, 1},
		{token.HEADER3, 3},
		{token.HEADER5, 5},
		{token.STRING, 0},
		{token.EOF, 0},
	}
	for _, testcase := range testcases {
		tok := token.Token{Kind: testcase.kind}
		if actual := tok.HeaderLevel(); actual != testcase.expected {
			t.Errorf("HeaderLevel of %v is %d, expected %d", testcase.kind, actual, testcase.expected)
		}
	}
}
