package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/rolodex"
)

const mailtoPrefix = "mailto:"

// mailtoStrategy reads contacts out of mailto links.
type mailtoStrategy struct{}

func (mailtoStrategy) extract(doc *goquery.Document) []*rolodex.Contact {
	var contacts []*rolodex.Contact

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.HasPrefix(strings.ToLower(href), mailtoPrefix) {
			return
		}

		// Strip the prefix and any query string (?subject=...).
		email := href[len(mailtoPrefix):]
		if i := strings.IndexByte(email, '?'); i >= 0 {
			email = email[:i]
		}
		email = strings.TrimSpace(email)
		if !ValidEmail(email) {
			return
		}

		c := &rolodex.Contact{Email: email}
		if name := strings.TrimSpace(link.Text()); name != "" && name != email {
			c.Name = name
		}
		contacts = append(contacts, c)
	})

	return contacts
}
