package driver

import (
	"fmt"

	"github.com/Frusadev/mdparser/ast"
	"github.com/Frusadev/mdparser/lexer"
	"github.com/Frusadev/mdparser/parser"
	"github.com/Frusadev/mdparser/render"
)

// RunSource lexes and parses source into its document node.
func RunSource(source string) (ast.Node, error) {
	p, err := parser.NewParser(lexer.New(source))
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	doc, err := p.ParseDocument()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return doc, nil
}

// RenderSource converts a whole document into HTML.
func RenderSource(source string) (string, error) {
	doc, err := RunSource(source)
	if err != nil {
		return "", err
	}

	html, err := render.Html(doc)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	return html, nil
}
