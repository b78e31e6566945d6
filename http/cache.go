package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/rolodex"
)

// Cache stores fetched documents on disk, keyed by the hash of the source
// URL. Each entry is a pair of files: the body and the final URL the body
// was served from. The cache never expires entries; delete the directory
// to refetch.
type Cache struct {
	dir string
}

// NewCache opens (creating if necessary) a cache directory.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Load returns the cached result for source, if present.
func (c *Cache) Load(source string) (*rolodex.FetchResult, bool) {
	body, err := os.ReadFile(c.entryPath(source) + ".html")
	if err != nil {
		return nil, false
	}

	finalURL := source
	if meta, err := os.ReadFile(c.entryPath(source) + ".url"); err == nil {
		finalURL = strings.TrimSpace(string(meta))
	}

	return &rolodex.FetchResult{HTML: string(body), FinalURL: finalURL}, true
}

// Store writes the result for source. The cache is advisory, so write
// failures are ignored.
func (c *Cache) Store(source string, result *rolodex.FetchResult) {
	_ = os.WriteFile(c.entryPath(source)+".url", []byte(result.FinalURL), 0644)
	_ = os.WriteFile(c.entryPath(source)+".html", []byte(result.HTML), 0644)
}

func (c *Cache) entryPath(source string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%016x", xxhash.Sum64String(source)))
}
