package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/rolodex"
)

// textStrategy scans the document's visible text line by line. Each
// non-blank line is searched independently for an email, a phone and a
// labeled name; a line may contribute any combination of the three to a
// single contact.
type textStrategy struct{}

func (textStrategy) extract(doc *goquery.Document) []*rolodex.Contact {
	var b strings.Builder
	for _, node := range doc.Nodes {
		collectText(node, &b)
	}

	var contacts []*rolodex.Contact
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c := &rolodex.Contact{
			Name:  FindLabeledName(line),
			Email: FindEmail(line),
			Phone: FindPhone(line),
		}
		if c.Empty() {
			continue
		}
		contacts = append(contacts, c)
	}

	return contacts
}

// collectText appends the text nodes under n in document order, skipping
// subtrees that never render as text. Block boundaries become line breaks
// so sibling cells and paragraphs do not run together in minified HTML.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "br", "hr", "p", "div", "li", "ul", "ol", "tr", "td", "th",
			"h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
