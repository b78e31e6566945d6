package fs

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/rolodex"
)

// Ensure Writer implements rolodex.ReportWriter at compile time.
var _ rolodex.ReportWriter = (*Writer)(nil)

// Writer writes contact reports as CSV files. The report is written to a
// temporary file and moved into place once complete, so a failed write
// never leaves a partial report behind.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes the report to the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteReport writes one CSV row per contact, preceded by a header row.
// Columns are name, email, phone and source_url; rows are sorted by name,
// email and phone, and contacts with no content fields are dropped.
func (w *Writer) WriteReport(ctx context.Context, contacts []*rolodex.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := rolodex.ReportRows(contacts)

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := writeCSV(f, rows); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, w.path)
}

func writeCSV(out io.Writer, rows []*rolodex.Contact) error {
	cw := csv.NewWriter(out)

	if err := cw.Write([]string{"name", "email", "phone", "source_url"}); err != nil {
		return err
	}
	for _, c := range rows {
		if err := cw.Write([]string{c.Name, c.Email, c.Phone, c.SourceURL}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
