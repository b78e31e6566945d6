package main

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// SitemapExpander expands a sitemap URL into the page URLs it lists.
// The HTTP sitemap client implements this interface.
type SitemapExpander interface {
	Expand(ctx context.Context, sitemapURL string) ([]string, error)
}

// gatherSources combines positional arguments, the input file and sitemap
// expansions into a single ordered source list. Exact duplicates are
// dropped so a page listed twice is only fetched once.
func (c *ScrapeCmd) gatherSources(deps *Dependencies) ([]string, error) {
	sources := append([]string{}, c.Sources...)

	if c.Input != "" {
		fromFile, err := readSourceList(c.Input)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fromFile...)
	}

	for _, sitemapURL := range c.Sitemap {
		urls, err := deps.Sitemaps.Expand(deps.Ctx, sitemapURL)
		if err != nil {
			return nil, fmt.Errorf("failed to expand sitemap %s: %w", sitemapURL, err)
		}
		sources = append(sources, urls...)
	}

	seen := make(map[string]struct{}, len(sources))
	unique := make([]string, 0, len(sources))
	for _, source := range sources {
		if _, ok := seen[source]; ok {
			continue
		}
		seen[source] = struct{}{}
		unique = append(unique, source)
	}
	return unique, nil
}

// readSourceList reads source identifiers from path, one per line.
// Surrounding whitespace is stripped and blank lines are skipped.
func readSourceList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source list: %w", err)
	}

	var sources []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sources = append(sources, line)
	}
	return sources, nil
}
