package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/rolodex"
)

// Ensure LoggingContactExtractor implements rolodex.ContactExtractor at compile time.
var _ rolodex.ContactExtractor = (*LoggingContactExtractor)(nil)

// LoggingContactExtractor wraps a ContactExtractor with debug logging.
type LoggingContactExtractor struct {
	next   rolodex.ContactExtractor
	logger *slog.Logger
}

// NewLoggingContactExtractor creates a new LoggingContactExtractor.
func NewLoggingContactExtractor(next rolodex.ContactExtractor, logger *slog.Logger) *LoggingContactExtractor {
	return &LoggingContactExtractor{next: next, logger: logger}
}

// ExtractContacts delegates to the wrapped extractor and logs the operation.
func (e *LoggingContactExtractor) ExtractContacts(html, sourceURL string) (contacts []*rolodex.Contact, err error) {
	defer func(begin time.Time) {
		e.logger.Info("contact extraction",
			"url", sourceURL,
			"contacts", len(contacts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractContacts(html, sourceURL)
}
