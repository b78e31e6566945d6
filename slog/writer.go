package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rolodex"
)

// Ensure LoggingReportWriter implements rolodex.ReportWriter at compile time.
var _ rolodex.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with debug logging.
type LoggingReportWriter struct {
	next   rolodex.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next rolodex.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, contacts []*rolodex.Contact) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("report write",
			"contacts", len(contacts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, contacts)
}
