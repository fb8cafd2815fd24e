// Package goquery implements HTML document selection, issue field extraction
// and listing parsing on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"iter"
	"strings"

	"github.com/Miidoriya/cbr"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Pattern is a compiled CSS selector. Patterns are immutable and safe for
// concurrent use.
type Pattern struct {
	selector string
	matcher  cascadia.Selector
}

// Compile parses a CSS selector.
// Returns EPATTERN if the selector syntax is invalid.
//
// goquery's Find silently matches nothing for an invalid selector, so
// patterns are compiled here once and then reused for every row.
func Compile(selector string) (Pattern, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return Pattern{}, cbr.Errorf(cbr.EPATTERN, "invalid selector %q: %v", selector, err)
	}
	return Pattern{selector: selector, matcher: m}, nil
}

// MustCompile is like Compile but panics if the selector is invalid.
// It is intended for package-level patterns.
func MustCompile(selector string) Pattern {
	p, err := Compile(selector)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source selector.
func (p Pattern) String() string {
	return p.selector
}

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse parses an HTML document. Parsing is best effort: malformed markup is
// repaired the way browsers do it, so EPARSE is only returned when the input
// cannot be read at all.
func Parse(page string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, cbr.Errorf(cbr.EPARSE, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	if len(d.doc.Nodes) == 0 {
		return nil
	}
	return d.doc.Nodes[0]
}

// SelectAll returns the nodes of the document matching p, in document order.
func (d *Document) SelectAll(p Pattern) iter.Seq[*html.Node] {
	return SelectAll(d.Root(), p)
}

// SelectAll returns the descendants of node matching p, in document order.
// The node itself is never matched. The tree is walked as the sequence is
// consumed, so stopping early skips the rest of the subtree.
func SelectAll(node *html.Node, p Pattern) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		if node == nil || p.matcher == nil {
			return
		}
		walk(node, p.matcher, yield)
	}
}

// walk visits the descendants of n in preorder and reports whether the
// caller wants more.
func walk(n *html.Node, m cascadia.Selector, yield func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m.Match(c) && !yield(c) {
			return false
		}
		if !walk(c, m, yield) {
			return false
		}
	}
	return true
}

// SelectFirst returns the first descendant of node matching p.
func SelectFirst(node *html.Node, p Pattern) (*html.Node, bool) {
	for n := range SelectAll(node, p) {
		return n, true
	}
	return nil, false
}

// Text returns the text content of node with runs of whitespace collapsed.
func Text(node *html.Node) string {
	if node == nil {
		return ""
	}
	return strings.Join(strings.Fields(goquery.NewDocumentFromNode(node).Text()), " ")
}

// Attr returns the value of the named attribute of node.
func Attr(node *html.Node, name string) (string, bool) {
	if node == nil {
		return "", false
	}
	return goquery.NewDocumentFromNode(node).Attr(name)
}
