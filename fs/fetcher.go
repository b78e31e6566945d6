// Package fs provides file-backed implementations of rolodex interfaces:
// a Fetcher that reads saved HTML pages from disk and a ReportWriter that
// writes contact reports as CSV.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rolodex"
)

// Ensure Fetcher implements rolodex.Fetcher at compile time.
var _ rolodex.Fetcher = (*Fetcher)(nil)

// Fetcher reads HTML documents from the local filesystem. Sources may be
// plain paths or file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at source and returns its contents. The result's
// FinalURL is the file:// form of the absolute path.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*rolodex.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := strings.TrimPrefix(source, "file://")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rolodex.Errorf(rolodex.ENOTFOUND, "file not found: %s", path)
		}
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &rolodex.FetchResult{
		HTML:     string(data),
		FinalURL: "file://" + abs,
	}, nil
}

// Close implements rolodex.Fetcher.
func (f *Fetcher) Close() error {
	return nil
}
