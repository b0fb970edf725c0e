package parser

import (
	"strings"

	"github.com/Frusadev/mdparser/ast"
	"github.com/Frusadev/mdparser/lexer"
	"github.com/Frusadev/mdparser/token"
	"github.com/Frusadev/mdparser/utils"
)

// Parser consumes tokens from a Lexer through a one-token lookahead
// and builds the document tree by recursive descent. The first error,
// lexical or syntactic, aborts the parse; no partial tree is returned.
type Parser struct {
	lexer   *lexer.Lexer
	current token.Token
}

// NewParser wraps lex and primes the lookahead with the first token.
func NewParser(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lexer: lex}
	if _, err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

// document = block* EOF ;
func (p *Parser) ParseDocument() (ast.Node, error) {
	doc := &ast.Document{}
	for !p.IsAtEnd() {
		block, err := p.block()
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, block)
	}

	return doc, nil
}

// block = text | space | newline | bold | italic | monospace | codeBlock | header | list ;
func (p *Parser) block() (ast.Node, error) {
	//exhaustive:ignore
	switch p.current.Kind {
	case token.STRING:
		return p.text()
	case token.SPACE:
		return p.space()
	case token.NEWLINE, token.LINEBREAK:
		return p.newline()
	case token.BOLD:
		return p.bold()
	case token.ITALIC:
		return p.italic()
	case token.MONOSPACE:
		return p.monospace()
	case token.CODEFENCE:
		return p.codeBlock()
	case token.HEADER1, token.HEADER2, token.HEADER3, token.HEADER4, token.HEADER5:
		return p.header()
	case token.LISTMARKER:
		return p.list()
	case token.EOF:
		return &ast.Void{Token: p.current}, nil
	default:
		return nil, unexpectedToken(p.current, "block element")
	}
}

// text = (STRING | SPACE)+ ;
// Consecutive STRING and SPACE tokens collapse into one Text node.
func (p *Parser) text() (*ast.Text, error) {
	if p.current.Kind != token.STRING && p.current.Kind != token.SPACE {
		return nil, unexpectedToken(p.current, "text")
	}

	first := p.current
	var builder strings.Builder
	for p.current.Kind == token.STRING || p.current.Kind == token.SPACE {
		builder.WriteString(p.current.Text)
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}

	return &ast.Text{Token: first, Content: builder.String()}, nil
}

// space = SPACE+ ;
func (p *Parser) space() (*ast.Space, error) {
	first := p.current
	var builder strings.Builder
	for p.current.Kind == token.SPACE {
		builder.WriteString(p.current.Text)
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}

	return &ast.Space{Token: first, Content: builder.String()}, nil
}

// newline = NEWLINE | LINEBREAK ;
func (p *Parser) newline() (*ast.NewLine, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}

	return &ast.NewLine{Token: tok}, nil
}

// bold = "**" (italic | text)* "**" ;
// An unterminated span fails on the closing expect at end of input.
func (p *Parser) bold() (*ast.Bold, error) {
	first, err := p.expect(token.BOLD)
	if err != nil {
		return nil, err
	}

	nodes := []ast.Node{}
	for !p.IsAtEnd() && p.current.Kind != token.BOLD {
		var node ast.Node
		switch p.current.Kind {
		case token.ITALIC:
			node, err = p.italic()
		case token.STRING, token.SPACE:
			node, err = p.text()
		default:
			return nil, unexpectedToken(p.current, "italic", "text")
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if _, err := p.expect(token.BOLD); err != nil {
		return nil, err
	}

	return &ast.Bold{Token: first, Nodes: nodes}, nil
}

// italic = "_" (bold | text)* "_" ;
func (p *Parser) italic() (*ast.Italic, error) {
	first, err := p.expect(token.ITALIC)
	if err != nil {
		return nil, err
	}

	nodes := []ast.Node{}
	for !p.IsAtEnd() && p.current.Kind != token.ITALIC {
		var node ast.Node
		switch p.current.Kind {
		case token.BOLD:
			node, err = p.bold()
		case token.STRING, token.SPACE:
			node, err = p.text()
		default:
			return nil, unexpectedToken(p.current, "bold", "text")
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if _, err := p.expect(token.ITALIC); err != nil {
		return nil, err
	}

	return &ast.Italic{Token: first, Nodes: nodes}, nil
}

// monospace = "`" text "`" ;
func (p *Parser) monospace() (*ast.Monospace, error) {
	first, err := p.expect(token.MONOSPACE)
	if err != nil {
		return nil, err
	}
	body, err := p.text()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.MONOSPACE); err != nil {
		return nil, err
	}

	return &ast.Monospace{Token: first, Nodes: []ast.Node{body}}, nil
}

// codeBlock = "```" STRING NEWLINE body "```" ;
// The STRING after the opening fence is the language name. Every token
// up to the closing fence collapses into a single Text node.
func (p *Parser) codeBlock() (*ast.Code, error) {
	first, err := p.expect(token.CODEFENCE)
	if err != nil {
		return nil, err
	}
	lang, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}

	bodyFirst := p.current
	var builder strings.Builder
	for !p.IsAtEnd() && p.current.Kind != token.CODEFENCE {
		builder.WriteString(p.current.Text)
		if _, err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.CODEFENCE); err != nil {
		return nil, err
	}

	body := &ast.Text{Token: bodyFirst, Content: builder.String()}

	return &ast.Code{Token: first, Language: lang.Text, Nodes: []ast.Node{body}}, nil
}

// header = HEADER SPACE text ;
// The separating space is mandatory; the rest of the line collapses
// into one Text node.
func (p *Parser) header() (*ast.Header, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SPACE); err != nil {
		return nil, err
	}
	body, err := p.text()
	if err != nil {
		return nil, err
	}

	return &ast.Header{Token: tok, Level: tok.HeaderLevel(), Nodes: []ast.Node{body}}, nil
}

// list = listItem+ ;
// The newline ending an item line belongs to the list, so marker lines
// chain into a single list.
func (p *Parser) list() (*ast.List, error) {
	first := p.current
	items := []*ast.ListItem{}
	for p.current.Kind == token.LISTMARKER {
		item, err := p.listItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if p.current.Kind == token.NEWLINE {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	return &ast.List{Token: first, Items: items}, nil
}

// listItem = "-" SPACE (italic | bold | text | monospace | header) ;
func (p *Parser) listItem() (*ast.ListItem, error) {
	marker, err := p.expect(token.LISTMARKER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SPACE); err != nil {
		return nil, err
	}

	var node ast.Node
	//exhaustive:ignore
	switch p.current.Kind {
	case token.ITALIC:
		node, err = p.italic()
	case token.BOLD:
		node, err = p.bold()
	case token.MONOSPACE:
		node, err = p.monospace()
	case token.HEADER1, token.HEADER2, token.HEADER3, token.HEADER4, token.HEADER5:
		node, err = p.header()
	case token.STRING, token.SPACE:
		node, err = p.text()
	default:
		return nil, unexpectedToken(p.current, "italic", "bold", "text", "monospace", "header")
	}
	if err != nil {
		return nil, err
	}

	return &ast.ListItem{Token: marker, Nodes: []ast.Node{node}}, nil
}

func (p Parser) IsAtEnd() bool {
	return p.current.Kind == token.EOF
}

// advance replaces the lookahead with the next token from the lexer
// and returns the token it replaced. A lexical error surfaces here.
func (p *Parser) advance() (token.Token, error) {
	prev := p.current
	tok, err := p.lexer.Next()
	if err != nil {
		return prev, err
	}
	p.current = tok

	return prev, nil
}

// expect consumes the current token if it matches kind, otherwise it
// fails with the expected and actual token.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.current.Kind != kind {
		return p.current, unexpectedToken(p.current, kind.String())
	}

	return p.advance()
}

type UnexpectedTokenError struct {
	Expected []string
}

func (e UnexpectedTokenError) Error() string {
	var msg string
	if len(e.Expected) >= 1 {
		msg = e.Expected[0]
	}

	for _, ex := range e.Expected[1:] {
		msg = msg + ", " + ex
	}

	return "unexpected token: expected " + msg
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.PosError{Where: t, Err: UnexpectedTokenError{Expected: expected}}
}
