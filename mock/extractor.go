package mock

import "github.com/fwojciec/rolodex"

var _ rolodex.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of rolodex.ContactExtractor.
type ContactExtractor struct {
	ExtractContactsFn func(html, sourceURL string) ([]*rolodex.Contact, error)
}

func (e *ContactExtractor) ExtractContacts(html, sourceURL string) ([]*rolodex.Contact, error) {
	return e.ExtractContactsFn(html, sourceURL)
}
