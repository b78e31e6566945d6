package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/rolodex"
)

// Ensure Writer implements rolodex.ReportWriter at compile time.
var _ rolodex.ReportWriter = (*Writer)(nil)

// Writer persists contact reports to a SQLite database. Each report
// becomes a run row carrying the summary counts, with one contact row per
// report row linked back to it.
type Writer struct {
	db *DB
}

// NewWriter creates a new Writer backed by db.
func NewWriter(db *DB) *Writer {
	return &Writer{db: db}
}

// Run records one written report.
type Run struct {
	ID        string
	CreatedAt time.Time
	Summary   rolodex.Summary
}

// fingerprint returns a hex digest of a contact's across-document dedup
// key, so duplicate contacts can be traced across runs with plain SQL.
func fingerprint(c *rolodex.Contact) string {
	key := strings.ToLower(c.Email) + "|" + rolodex.CanonicalPhone(c.Phone)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(key))
	return hex.EncodeToString(b)
}

// WriteReport records the report rows for contacts as a new run. Rows are
// stored in report order: sorted by name, email and phone, with empty
// contacts dropped.
func (w *Writer) WriteReport(ctx context.Context, contacts []*rolodex.Contact) error {
	rows := rolodex.ReportRows(contacts)
	summary := rolodex.Summarize(rows)

	runID := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := w.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, total_rows, unique_emails, unique_phones)
		VALUES (?, ?, ?, ?, ?)
	`, runID, createdAt.Format(time.RFC3339), summary.Rows, summary.UniqueEmails, summary.UniquePhones)
	if err != nil {
		return err
	}

	for i, c := range rows {
		_, err := w.db.ExecContext(ctx, `
			INSERT INTO contacts (id, run_id, name, email, phone, source_url, fingerprint, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), runID, c.Name, c.Email, c.Phone, c.SourceURL, fingerprint(c), i)
		if err != nil {
			return err
		}
	}

	return nil
}

// Runs returns the recorded runs, most recent first.
func (w *Writer) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := w.db.QueryContext(ctx, `
		SELECT id, created_at, total_rows, unique_emails, unique_phones
		FROM runs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var createdAt string

		if err := rows.Scan(&run.ID, &createdAt, &run.Summary.Rows,
			&run.Summary.UniqueEmails, &run.Summary.UniquePhones); err != nil {
			return nil, err
		}

		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// RunContacts returns the contacts recorded for a run, in report order.
func (w *Writer) RunContacts(ctx context.Context, runID string) ([]*rolodex.Contact, error) {
	rows, err := w.db.QueryContext(ctx, `
		SELECT name, email, phone, source_url
		FROM contacts
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*rolodex.Contact
	for rows.Next() {
		var c rolodex.Contact
		if err := rows.Scan(&c.Name, &c.Email, &c.Phone, &c.SourceURL); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}

	return contacts, rows.Err()
}
