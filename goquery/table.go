package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/rolodex"
)

// tableStrategy reads contact rows out of HTML tables.
type tableStrategy struct{}

func (tableStrategy) extract(doc *goquery.Document) []*rolodex.Contact {
	var contacts []*rolodex.Contact

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return
		}

		// Sniff the first row for header keywords. A column matches at
		// most one category (first branch wins); a later column matching
		// the same category takes over the mapping.
		nameIdx, emailIdx, phoneIdx := -1, -1, -1
		rows.First().Find("th, td").Each(func(col int, cell *goquery.Selection) {
			header := strings.ToLower(strings.TrimSpace(cell.Text()))
			switch {
			case strings.Contains(header, "name") || strings.Contains(header, "contact") || strings.Contains(header, "person"):
				nameIdx = col
			case strings.Contains(header, "email") || strings.Contains(header, "mail"):
				emailIdx = col
			case strings.Contains(header, "phone") || strings.Contains(header, "tel") || strings.Contains(header, "mobile"):
				phoneIdx = col
			}
		})

		// With no header detected, every row is a data row.
		start := 0
		if nameIdx >= 0 || emailIdx >= 0 || phoneIdx >= 0 {
			start = 1
		}

		rows.Each(func(i int, row *goquery.Selection) {
			if i < start {
				return
			}
			if c := contactFromRow(row, nameIdx, emailIdx, phoneIdx); c != nil {
				contacts = append(contacts, c)
			}
		})
	})

	return contacts
}

// contactFromRow populates a contact from the mapped columns, then scans
// every cell for email and phone patterns to fill fields that are still
// empty. Returns nil when the row contributes nothing.
func contactFromRow(row *goquery.Selection, nameIdx, emailIdx, phoneIdx int) *rolodex.Contact {
	var texts []string
	row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	if len(texts) == 0 {
		return nil
	}

	c := &rolodex.Contact{}
	if nameIdx >= 0 && nameIdx < len(texts) {
		c.Name = texts[nameIdx]
	}
	if emailIdx >= 0 && emailIdx < len(texts) {
		c.Email = texts[emailIdx]
	}
	if phoneIdx >= 0 && phoneIdx < len(texts) {
		c.Phone = texts[phoneIdx]
	}

	for _, text := range texts {
		if c.Email == "" {
			c.Email = FindEmail(text)
		}
		if c.Phone == "" {
			c.Phone = FindPhone(text)
		}
	}

	if c.Empty() {
		return nil
	}
	return c
}
