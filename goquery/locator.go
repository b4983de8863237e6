package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/parcontact"
)

// DefaultMaxDepth is the number of ancestors inspected above the marker.
const DefaultMaxDepth = 5

const headingSelector = "h1, h2, h3, h4, h5, h6"

var _ parcontact.ContactLocator = (*Locator)(nil)

// Locator finds the contact section of a listing page. It looks for the
// marker in a heading first and then in any text, and widens the search one
// ancestor at a time until an email shows up.
type Locator struct {
	Marker   string
	MaxDepth int
}

// NewLocator creates a Locator for the Parcoursup contact heading.
func NewLocator() *Locator {
	return &Locator{
		Marker:   parcontact.ContactMarker,
		MaxDepth: DefaultMaxDepth,
	}
}

// FindContactSection parses html and locates its contact section.
func (l *Locator) FindContactSection(html string) (*parcontact.ContactSection, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return l.Locate(doc)
}

// Locate runs the search on an already parsed document.
func (l *Locator) Locate(doc *goquery.Document) (*parcontact.ContactSection, bool) {
	marker := l.findMarker(doc)
	if marker == nil {
		return nil, false
	}

	current := marker.Parent()
	for depth := 0; depth < l.MaxDepth && current != nil; depth++ {
		text := current.Text()
		if emails := parcontact.ExtractEmails(text); len(emails) > 0 {
			return &parcontact.ContactSection{Text: text, Emails: emails}, true
		}
		current = current.Parent()
	}
	return nil, false
}

// findMarker returns the first heading containing the marker, or else the
// first text node containing it.
func (l *Locator) findMarker(doc *goquery.Document) Node {
	var marker Node
	doc.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), l.Marker) {
			marker = Wrap(sel.Get(0))
			return false
		}
		return true
	})
	if marker != nil {
		return marker
	}

	root := Wrap(doc.Get(0))
	if root == nil {
		return nil
	}
	texts := root.FindDescendants(func(n Node) bool {
		return n.Kind() == KindText && strings.Contains(n.Text(), l.Marker)
	})
	if len(texts) == 0 {
		return nil
	}
	return texts[0]
}
