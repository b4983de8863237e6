package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/parcontact"
)

var _ parcontact.TextRenderer = (*Renderer)(nil)

// Renderer renders the whole text of a page.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderText returns the text of every node of html, script and style
// excluded. Unparseable input renders as the empty string.
func (r *Renderer) RenderText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	root := Wrap(doc.Get(0))
	if root == nil {
		return ""
	}
	return root.Text()
}
