package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/rolodex"
)

// semanticKeywords are matched against class and id attributes, in order.
// name, fullname and contact yield names; email yields emails; phone, tel
// and mobile yield phones.
var semanticKeywords = []string{"name", "fullname", "contact", "email", "phone", "tel", "mobile"}

// semanticStrategy reads contacts out of elements whose class or id hints
// at contact content. An element may be yielded once per matching
// keyword/attribute combination; intra-document dedup removes the repeats.
type semanticStrategy struct{}

func (semanticStrategy) extract(doc *goquery.Document) []*rolodex.Contact {
	var contacts []*rolodex.Contact

	for _, keyword := range semanticKeywords {
		for _, sel := range matchAttr(doc, "class", keyword) {
			if c := semanticContact(sel, keyword); c != nil {
				contacts = append(contacts, c)
			}
		}
		for _, sel := range matchAttr(doc, "id", keyword) {
			if c := semanticContact(sel, keyword); c != nil {
				contacts = append(contacts, c)
			}
		}
	}

	return contacts
}

// matchAttr returns, in document order, the elements whose attribute attr
// contains keyword as a case-insensitive substring.
func matchAttr(doc *goquery.Document, attr, keyword string) []*goquery.Selection {
	var matched []*goquery.Selection
	doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
		if value, _ := sel.Attr(attr); strings.Contains(strings.ToLower(value), keyword) {
			matched = append(matched, sel)
		}
	})
	return matched
}

func semanticContact(sel *goquery.Selection, keyword string) *rolodex.Contact {
	text := strings.TrimSpace(sel.Text())

	switch keyword {
	case "email":
		if email := FindEmail(text); email != "" {
			return &rolodex.Contact{Email: email}
		}
	case "phone", "tel", "mobile":
		if phone := FindPhone(text); phone != "" {
			return &rolodex.Contact{Phone: phone}
		}
	default: // name, fullname, contact
		if utf8.RuneCountInString(text) > 2 {
			return &rolodex.Contact{Name: text}
		}
	}
	return nil
}
