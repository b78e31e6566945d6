// Package http provides an HTTP-based implementation of rolodex.Fetcher.
//
// The fetcher owns its own politeness state: a per-host rate limiter, a
// robots.txt gate and an optional on-disk response cache.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/rolodex"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent identifies requests when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultPerHostDelay is the default spacing between requests to one host.
const DefaultPerHostDelay = 500 * time.Millisecond

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements rolodex.Fetcher at compile time.
var _ rolodex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents over HTTP(S). It does not execute
// JavaScript, so dynamically rendered pages yield whatever the server
// returns as static markup.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	delay     time.Duration
	useRobots bool
	robots    *robotsGate
	limiter   *hostLimiter
	cache     *Cache
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header for all requests, including
// robots.txt lookups.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithPerHostDelay sets the minimum spacing between requests to the same
// host. A non-positive value disables rate limiting.
func WithPerHostDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.delay = d
	}
}

// WithoutRobots disables the robots.txt gate.
func WithoutRobots() Option {
	return func(f *Fetcher) {
		f.useRobots = false
	}
}

// WithCache caches fetched documents on disk, keyed by source URL.
// Cache hits skip the network entirely, including the politeness checks.
func WithCache(c *Cache) Option {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		delay:     DefaultPerHostDelay,
		useRobots: true,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	f.limiter = newHostLimiter(f.delay)
	if f.useRobots {
		f.robots = newRobotsGate(f.client, f.userAgent)
	}

	return f
}

// Fetch retrieves the document at the given URL. The returned FinalURL is
// the URL the response was served from, after following redirects.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*rolodex.FetchResult, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, rolodex.Errorf(rolodex.EINVALID, "invalid URL %q: %v", source, err)
	}

	if f.cache != nil {
		if result, ok := f.cache.Load(source); ok {
			return result, nil
		}
	}

	if f.robots != nil && !f.robots.allowed(ctx, u) {
		return nil, rolodex.Errorf(rolodex.EFORBIDDEN, "blocked by robots.txt: %s", source)
	}

	if err := f.limiter.wait(ctx, u.Host); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, rolodex.Errorf(rolodex.ENOTFOUND, "HTTP 404 for %s", source)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, source)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := &rolodex.FetchResult{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}
	if f.cache != nil {
		f.cache.Store(source, result)
	}

	return result, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
