// Package markup wraps goquery with the small query surface the scorers
// need. Parsing fails closed: unparseable input yields a document with zero
// matches for every query, so scorers degrade instead of aborting.
package markup

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed HTML page queryable by CSS selector.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML bytes. It never fails: if the body
// cannot be parsed, the returned Document matches nothing.
func Parse(body []byte) *Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// html.Parse is tolerant, so this is rare (reader errors mostly).
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{doc: doc}
}

// Count returns the number of elements matching the CSS selector.
func (d *Document) Count(selector string) int {
	return d.doc.Find(selector).Length()
}

// Find returns the selection matching the CSS selector, for scorer-local
// filtering beyond what a selector alone can express.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Attr returns the named attribute of the first element matching the
// selector, or "" when there is no match or no such attribute.
func (d *Document) Attr(selector, name string) string {
	v, _ := d.doc.Find(selector).First().Attr(name)
	return v
}

// Text returns the page's visible text with script, style and noscript
// content excluded, whitespace-collapsed.
func (d *Document) Text() string {
	sel := d.doc.Find("body")
	if sel.Length() == 0 {
		sel = d.doc.Selection
	}
	clone := sel.Clone()
	clone.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}
