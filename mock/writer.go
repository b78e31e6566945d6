package mock

import (
	"context"

	"github.com/fwojciec/rolodex"
)

var _ rolodex.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of rolodex.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, contacts []*rolodex.Contact) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, contacts []*rolodex.Contact) error {
	return w.WriteReportFn(ctx, contacts)
}
