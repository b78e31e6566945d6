package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
)

// Sitemap expands sitemap URLs into page URLs. Both plain <urlset>
// sitemaps and recursive <sitemapindex> files are supported.
type Sitemap struct {
	client    *http.Client
	userAgent string
}

// NewSitemap creates a Sitemap expander. If client is nil,
// http.DefaultClient is used.
func NewSitemap(client *http.Client, userAgent string) *Sitemap {
	if client == nil {
		client = http.DefaultClient
	}
	return &Sitemap{client: client, userAgent: userAgent}
}

// Expand fetches the sitemap at sitemapURL and returns the page URLs it
// lists, in document order, deduplicated. Sitemap index files are followed
// recursively; a sitemap referenced twice is processed once.
func (s *Sitemap) Expand(ctx context.Context, sitemapURL string) ([]string, error) {
	seenSitemaps := make(map[string]bool)
	urls, err := s.process(ctx, sitemapURL, seenSitemaps)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(urls))
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}
	return unique, nil
}

func (s *Sitemap) process(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		return s.processIndex(ctx, root, seen)
	}
	return parseURLSet(root), nil
}

func (s *Sitemap) processIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var all []string
	for _, sm := range root.SelectElements("sitemap") {
		loc := sm.SelectElement("loc")
		if loc == nil {
			continue
		}
		childURL := strings.TrimSpace(loc.Text())
		if childURL == "" {
			continue
		}

		urls, err := s.process(ctx, childURL, seen)
		if err != nil {
			return nil, err
		}
		all = append(all, urls...)
	}
	return all, nil
}

func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, el := range root.SelectElements("url") {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func (s *Sitemap) fetch(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
