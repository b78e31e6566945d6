// Package excelize writes contact reports as Excel workbooks.
package excelize

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/fwojciec/rolodex"
)

// Ensure Writer implements rolodex.ReportWriter at compile time.
var _ rolodex.ReportWriter = (*Writer)(nil)

const (
	contactsSheet = "contacts"
	summarySheet  = "summary"
)

// Writer writes contact reports as .xlsx workbooks with a contacts sheet
// and a summary sheet.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes the workbook to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteReport writes the workbook. The contacts sheet has a header row
// plus one row per contact, sorted by name, email and phone, with empty
// contacts dropped. The summary sheet reports the row count and the
// number of distinct non-empty emails and phones.
func (w *Writer) WriteReport(ctx context.Context, contacts []*rolodex.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := rolodex.ReportRows(contacts)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", contactsSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(contactsSheet, "A1", &[]any{"name", "email", "phone", "source_url"}); err != nil {
		return err
	}
	for i, c := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(contactsSheet, cell, &[]any{c.Name, c.Email, c.Phone, c.SourceURL}); err != nil {
			return err
		}
	}

	if err := writeSummary(f, rolodex.Summarize(rows)); err != nil {
		return err
	}

	return f.SaveAs(w.path)
}

func writeSummary(f *excelize.File, s rolodex.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Metric", "Value"},
		{"total_rows", s.Rows},
		{"unique_emails", s.UniqueEmails},
		{"unique_phones", s.UniquePhones},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
