package mock

import (
	"context"

	"github.com/fwojciec/rolodex"
)

var _ rolodex.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rolodex.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, source string) (*rolodex.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, source string) (*rolodex.FetchResult, error) {
	return f.FetchFn(ctx, source)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
