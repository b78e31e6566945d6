package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/rolodex"
	"github.com/fwojciec/rolodex/fs"
	rolodexhttp "github.com/fwojciec/rolodex/http"
)

// Ensure RouteFetcher implements rolodex.Fetcher at compile time.
var _ rolodex.Fetcher = (*RouteFetcher)(nil)

// RouteFetcher dispatches fetches by source scheme: http and https sources
// go over the network, file URLs and plain paths are read from disk.
type RouteFetcher struct {
	Web  rolodex.Fetcher
	File rolodex.Fetcher
}

// Fetch retrieves the document from whichever fetcher handles the source.
func (f *RouteFetcher) Fetch(ctx context.Context, source string) (*rolodex.FetchResult, error) {
	switch sourceScheme(source) {
	case "http", "https":
		return f.Web.Fetch(ctx, source)
	case "", "file":
		return f.File.Fetch(ctx, source)
	default:
		return nil, rolodex.Errorf(rolodex.EINVALID, "unsupported source scheme: %s", source)
	}
}

// Close closes both underlying fetchers, returning the first error.
func (f *RouteFetcher) Close() error {
	err := f.Web.Close()
	if cerr := f.File.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func sourceScheme(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// fetchConfig carries the flag values that shape the route fetcher.
type fetchConfig struct {
	Timeout   time.Duration
	UserAgent string
	Delay     time.Duration
	NoRobots  bool
	CacheDir  string
}

// newRouteFetcher builds the composite fetcher the commands share.
func newRouteFetcher(cfg fetchConfig) (*RouteFetcher, error) {
	opts := []rolodexhttp.Option{
		rolodexhttp.WithTimeout(cfg.Timeout),
		rolodexhttp.WithPerHostDelay(cfg.Delay),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, rolodexhttp.WithUserAgent(cfg.UserAgent))
	}
	if cfg.NoRobots {
		opts = append(opts, rolodexhttp.WithoutRobots())
	}
	if cfg.CacheDir != "" {
		cache, err := rolodexhttp.NewCache(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache at %q: %w", cfg.CacheDir, err)
		}
		opts = append(opts, rolodexhttp.WithCache(cache))
	}

	return &RouteFetcher{
		Web:  rolodexhttp.NewFetcher(opts...),
		File: fs.NewFetcher(),
	}, nil
}
