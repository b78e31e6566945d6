package rolodex

import "context"

// FetchResult holds a fetched document.
type FetchResult struct {
	// HTML is the raw document body.
	HTML string

	// FinalURL is the URL the document was actually served from, after
	// following redirects. For local files it is the file:// form of the
	// absolute path. Extraction stamps it on every record as SourceURL.
	FinalURL string
}

// Fetcher retrieves HTML documents from source identifiers.
// Implementations exist for HTTP(S) URLs and local files.
type Fetcher interface {
	// Fetch retrieves the document identified by source.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, source string) (*FetchResult, error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
