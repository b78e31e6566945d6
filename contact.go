package rolodex

import (
	"context"
	"sort"
)

// Contact is a single extracted contact record.
//
// A field's zero value means the field was not found in the source document.
// A Contact whose three content fields are all empty carries no information;
// such records are dropped during deduplication and again by report writers.
type Contact struct {
	// Name is the person's display name, title-cased after normalization.
	Name string

	// Email is the contact email address, lowercased after normalization.
	Email string

	// Phone is the phone number, digits-only (optionally "+"-prefixed)
	// after normalization.
	Phone string

	// SourceURL identifies the document the record was extracted from.
	// Stamped once by the extractor, never merged from other documents.
	SourceURL string
}

// Empty reports whether the contact carries no content.
// SourceURL alone does not count as content.
func (c *Contact) Empty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == ""
}

// ReportRows prepares contacts for presentation: contacts without content
// are dropped and the remainder is returned as a fresh slice ordered by
// name, then email, then phone. The input slice is not modified.
func ReportRows(contacts []*Contact) []*Contact {
	rows := make([]*Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Empty() {
			continue
		}
		rows = append(rows, c)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		if rows[i].Email != rows[j].Email {
			return rows[i].Email < rows[j].Email
		}
		return rows[i].Phone < rows[j].Phone
	})
	return rows
}

// Summary describes a written report.
type Summary struct {
	// Rows is the number of contacts written.
	Rows int

	// UniqueEmails counts distinct non-empty email values.
	UniqueEmails int

	// UniquePhones counts distinct non-empty phone values.
	UniquePhones int
}

// Summarize computes report metrics over the given rows.
func Summarize(rows []*Contact) Summary {
	emails := make(map[string]struct{})
	phones := make(map[string]struct{})
	for _, c := range rows {
		if c.Email != "" {
			emails[c.Email] = struct{}{}
		}
		if c.Phone != "" {
			phones[c.Phone] = struct{}{}
		}
	}
	return Summary{
		Rows:         len(rows),
		UniqueEmails: len(emails),
		UniquePhones: len(phones),
	}
}

// ReportWriter persists a finished contact list.
type ReportWriter interface {
	// WriteReport writes all contacts as a single report. Implementations
	// run the contacts through ReportRows so every sink filters and
	// orders rows the same way.
	WriteReport(ctx context.Context, contacts []*Contact) error
}
