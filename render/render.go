// Package render is the HTML back end: a tree walk over the document.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Frusadev/mdparser/ast"
	"github.com/Frusadev/mdparser/token"
	"github.com/Frusadev/mdparser/utils"
)

// Html renders the tree rooted at node as an HTML string.
// Text content is emitted verbatim; no escaping is applied.
func Html(node ast.Node) (string, error) {
	var builder strings.Builder
	if err := render(&builder, node); err != nil {
		return "", err
	}

	return builder.String(), nil
}

func render(builder *strings.Builder, node ast.Node) error {
	switch n := node.(type) {
	case *ast.Document:
		return wrap(builder, "<html>", "</html>", n.Nodes)
	case *ast.Text:
		builder.WriteString("<span>")
		builder.WriteString(n.Content)
		builder.WriteString("</span>")
	case *ast.Space:
		builder.WriteString(n.Content)
	case *ast.NewLine:
		if n.Base().Kind == token.LINEBREAK {
			builder.WriteString("<hr/>")
		} else {
			builder.WriteString("<br/>")
		}
	case *ast.Bold:
		return wrap(builder, "<strong>", "</strong>", n.Nodes)
	case *ast.Italic:
		return wrap(builder, "<i>", "</i>", n.Nodes)
	case *ast.Monospace:
		return wrap(builder, "<code>", "</code>", n.Nodes)
	case *ast.Code:
		// the body is raw text, not a text element
		fmt.Fprintf(builder, "<pre><code class=%q>", "language-"+n.Language)
		for _, child := range n.Nodes {
			text, ok := child.(*ast.Text)
			if !ok {
				return renderError(child.Base(), fmt.Sprintf("unexpected code body: %v", child))
			}
			builder.WriteString(text.Content)
		}
		builder.WriteString("</code></pre>")
	case *ast.Header:
		tag := fmt.Sprintf("h%d", n.Level)
		return wrap(builder, "<"+tag+">", "</"+tag+">", n.Nodes)
	case *ast.List:
		return wrap(builder, "<ul>", "</ul>", n.Children())
	case *ast.ListItem:
		return wrap(builder, "<li>", "</li>", n.Nodes)
	case *ast.Void:
		// renders to nothing
	default:
		return renderError(node.Base(), fmt.Sprintf("unexpected node: %v", n))
	}

	return nil
}

func wrap(builder *strings.Builder, opening, closing string, children []ast.Node) error {
	builder.WriteString(opening)
	for _, child := range children {
		if err := render(builder, child); err != nil {
			return err
		}
	}
	builder.WriteString(closing)

	return nil
}

func renderError(at token.Token, msg string) error {
	return utils.PosError{Where: at, Err: errors.New("[render] " + msg)}
}
