// Package goquery extracts contact records from HTML documents.
//
// A document is parsed once and handed to a fixed, ordered list of
// extraction strategies: tables, mailto links, semantic class/id elements,
// then a line-based scan of the visible text. Strategy outputs are
// concatenated, deduplicated within the document, and stamped with the
// source URL.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/rolodex"
)

// Ensure Extractor implements rolodex.ContactExtractor at compile time.
var _ rolodex.ContactExtractor = (*Extractor)(nil)

// strategy is a single extraction pass over a parsed document. Strategies
// are independent and may emit partially populated or duplicate candidates;
// the Extractor cleans up after them.
type strategy interface {
	extract(doc *goquery.Document) []*rolodex.Contact
}

// Extractor extracts contact records from HTML.
type Extractor struct {
	strategies []strategy
}

// NewExtractor creates an Extractor with the default strategy order.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []strategy{
			tableStrategy{},
			mailtoStrategy{},
			semanticStrategy{},
			textStrategy{},
		},
	}
}

// ExtractContacts parses the document, runs every strategy in order,
// removes intra-document duplicates and stamps sourceURL on the survivors.
func (e *Extractor) ExtractContacts(html, sourceURL string) ([]*rolodex.Contact, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rolodex.Errorf(rolodex.EINVALID, "failed to parse HTML: %v", err)
	}

	var candidates []*rolodex.Contact
	for _, s := range e.strategies {
		candidates = append(candidates, s.extract(doc)...)
	}

	contacts := rolodex.DedupeDocument(candidates)
	for _, c := range contacts {
		c.SourceURL = sourceURL
	}

	return contacts, nil
}
