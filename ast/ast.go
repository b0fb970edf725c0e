package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Frusadev/mdparser/token"
)

// AST

type Node interface {
	fmt.Stringer
	// Kind identifies the node variant. The set of kinds is closed.
	Kind() Kind
	// Base returns the token that triggered this node. Structural
	// nodes such as the document root carry a synthetic token.
	Base() token.Token
	// Children returns the node's children in document order.
	// Children are owned exclusively by their parent.
	Children() []Node
}

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	KindVoid Kind = iota
	KindDocument
	KindText
	KindSpace
	KindNewLine
	KindBold
	KindItalic
	KindMonospace
	KindCode
	KindHeader1
	KindHeader2
	KindHeader3
	KindHeader4
	KindHeader5
	KindUnorderedListRoot
	KindUnorderedListItem
)

// Document is the root of the tree. It is never a child of another
// node; its children are the top-level blocks in source order.
type Document struct {
	Token token.Token
	Nodes []Node
}

func (d Document) String() string {
	return parenthesize("document", concat(d.Nodes)).String()
}

func (d *Document) Kind() Kind {
	return KindDocument
}

func (d *Document) Base() token.Token {
	return d.Token
}

func (d *Document) Children() []Node {
	return d.Nodes
}

var _ Node = &Document{}

// Text holds a run of literal text. Consecutive STRING and SPACE
// tokens collapse into a single Text node, so Content may differ from
// the triggering token's text.
type Text struct {
	Token   token.Token
	Content string
}

func (t Text) String() string {
	return "(text " + strconv.Quote(t.Content) + ")"
}

func (t *Text) Kind() Kind {
	return KindText
}

func (t *Text) Base() token.Token {
	return t.Token
}

func (t *Text) Children() []Node {
	return nil
}

var _ Node = &Text{}

// Space is a run of spaces that begins a block on its own.
type Space struct {
	Token   token.Token
	Content string
}

func (s Space) String() string {
	return "(space " + strconv.Quote(s.Content) + ")"
}

func (s *Space) Kind() Kind {
	return KindSpace
}

func (s *Space) Base() token.Token {
	return s.Token
}

func (s *Space) Children() []Node {
	return nil
}

var _ Node = &Space{}

// NewLine covers both NEWLINE and LINEBREAK tokens; the renderer
// distinguishes them through Base().Kind.
type NewLine struct {
	Token token.Token
}

func (n NewLine) String() string {
	if n.Token.Kind == token.LINEBREAK {
		return "(linebreak)"
	}
	return "(newline)"
}

func (n *NewLine) Kind() Kind {
	return KindNewLine
}

func (n *NewLine) Base() token.Token {
	return n.Token
}

func (n *NewLine) Children() []Node {
	return nil
}

var _ Node = &NewLine{}

// Bold children are restricted to Text and Italic nodes.
type Bold struct {
	Token token.Token
	Nodes []Node
}

func (b Bold) String() string {
	return parenthesize("bold", concat(b.Nodes)).String()
}

func (b *Bold) Kind() Kind {
	return KindBold
}

func (b *Bold) Base() token.Token {
	return b.Token
}

func (b *Bold) Children() []Node {
	return b.Nodes
}

var _ Node = &Bold{}

// Italic children are restricted to Text and Bold nodes.
type Italic struct {
	Token token.Token
	Nodes []Node
}

func (i Italic) String() string {
	return parenthesize("italic", concat(i.Nodes)).String()
}

func (i *Italic) Kind() Kind {
	return KindItalic
}

func (i *Italic) Base() token.Token {
	return i.Token
}

func (i *Italic) Children() []Node {
	return i.Nodes
}

var _ Node = &Italic{}

// Monospace is an inline code span with a single Text child.
type Monospace struct {
	Token token.Token
	Nodes []Node
}

func (m Monospace) String() string {
	return parenthesize("monospace", concat(m.Nodes)).String()
}

func (m *Monospace) Kind() Kind {
	return KindMonospace
}

func (m *Monospace) Base() token.Token {
	return m.Token
}

func (m *Monospace) Children() []Node {
	return m.Nodes
}

var _ Node = &Monospace{}

// Code is a fenced block. Language is the identifier following the
// opening fence; the single Text child holds the raw body.
type Code struct {
	Token    token.Token
	Language string
	Nodes    []Node
}

func (c Code) String() string {
	return parenthesize("code "+c.Language, concat(c.Nodes)).String()
}

func (c *Code) Kind() Kind {
	return KindCode
}

func (c *Code) Base() token.Token {
	return c.Token
}

func (c *Code) Children() []Node {
	return c.Nodes
}

var _ Node = &Code{}

// Header has exactly one Text child holding the rest of the line.
// Level is 1..5.
type Header struct {
	Token token.Token
	Level int
	Nodes []Node
}

func (h Header) String() string {
	return parenthesize("header"+strconv.Itoa(h.Level), concat(h.Nodes)).String()
}

func (h *Header) Kind() Kind {
	return KindHeader1 + Kind(h.Level-1)
}

func (h *Header) Base() token.Token {
	return h.Token
}

func (h *Header) Children() []Node {
	return h.Nodes
}

var _ Node = &Header{}

// List children are exclusively ListItem nodes, one per marker line.
type List struct {
	Token token.Token
	Items []*ListItem
}

func (l List) String() string {
	return parenthesize("list", concat(l.Items)).String()
}

func (l *List) Kind() Kind {
	return KindUnorderedListRoot
}

func (l *List) Base() token.Token {
	return l.Token
}

func (l *List) Children() []Node {
	children := make([]Node, len(l.Items))
	for i, item := range l.Items {
		children[i] = item
	}
	return children
}

var _ Node = &List{}

type ListItem struct {
	Token token.Token
	Nodes []Node
}

func (l ListItem) String() string {
	return parenthesize("item", concat(l.Nodes)).String()
}

func (l *ListItem) Kind() Kind {
	return KindUnorderedListItem
}

func (l *ListItem) Base() token.Token {
	return l.Token
}

func (l *ListItem) Children() []Node {
	return l.Nodes
}

var _ Node = &ListItem{}

// Void is an empty placeholder produced only on an otherwise-unhandled
// end-of-input path. It never has children.
type Void struct {
	Token token.Token
}

func (v Void) String() string {
	return "(void)"
}

func (v *Void) Kind() Kind {
	return KindVoid
}

func (v *Void) Base() token.Token {
	return v.Token
}

func (v *Void) Children() []Node {
	return nil
}

var _ Node = &Void{}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for i, elem := range elems {
		str := elem.String()
		if str == "" {
			continue
		}
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}

// Traverse visits n and every descendant in depth-first order,
// children before their parent.
func Traverse(n Node, f func(Node)) {
	for _, child := range n.Children() {
		Traverse(child, f)
	}
	f(n)
}

// Universe returns n and every descendant of n.
func Universe(n Node) []Node {
	var nodes []Node
	Traverse(n, func(n Node) {
		nodes = append(nodes, n)
	})
	return nodes
}
