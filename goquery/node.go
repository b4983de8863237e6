// Package goquery implements HTML inspection of listing and institution
// pages using goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeKind distinguishes the Node variants.
type NodeKind int

// Node variants.
const (
	KindElement NodeKind = iota
	KindText
)

// Node is a read-only view of an HTML tree node.
type Node interface {
	Kind() NodeKind

	// Text returns the rendered text of the node and its descendants.
	Text() string

	// Parent returns nil for the document root.
	Parent() Node

	// FindDescendants returns the descendants accepted by match, in document
	// order.
	FindDescendants(match func(Node) bool) []Node
}

// Wrap returns the Node view of n. The document node is treated as an
// element. Comments and doctypes have no view and return nil.
func Wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.ElementNode, html.DocumentNode:
		return &ElementNode{node: n}
	case html.TextNode:
		return &TextNode{node: n}
	default:
		return nil
	}
}

var (
	_ Node = (*ElementNode)(nil)
	_ Node = (*TextNode)(nil)
)

// ElementNode is an element or the document root.
type ElementNode struct {
	node *html.Node
}

// Kind returns KindElement.
func (e *ElementNode) Kind() NodeKind { return KindElement }

// Text concatenates the text nodes under the element, skipping script and
// style content. Block elements start and end a line.
func (e *ElementNode) Text() string {
	var b strings.Builder
	renderText(&b, e.node)
	return b.String()
}

// Parent returns the enclosing element.
func (e *ElementNode) Parent() Node {
	return Wrap(e.node.Parent)
}

// FindDescendants walks the subtree depth-first.
func (e *ElementNode) FindDescendants(match func(Node) bool) []Node {
	var found []Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if w := Wrap(c); w != nil && match(w) {
				found = append(found, w)
			}
			walk(c)
		}
	}
	walk(e.node)
	return found
}

// HTMLNode returns the underlying node.
func (e *ElementNode) HTMLNode() *html.Node {
	return e.node
}

// TextNode is a run of character data.
type TextNode struct {
	node *html.Node
}

// Kind returns KindText.
func (t *TextNode) Kind() NodeKind { return KindText }

// Text returns the character data.
func (t *TextNode) Text() string { return t.node.Data }

// Parent returns the element containing the text.
func (t *TextNode) Parent() Node {
	return Wrap(t.node.Parent)
}

// FindDescendants returns nil: text nodes have no children.
func (t *TextNode) FindDescendants(func(Node) bool) []Node {
	return nil
}

// blockElements are rendered on their own line.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Td: true, atom.Th: true, atom.Tr: true,
	atom.Ul: true,
}

func renderText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}
