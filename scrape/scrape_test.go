package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/rolodex"
	"github.com/fwojciec/rolodex/mock"
	"github.com/fwojciec/rolodex/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns empty result for no sources", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher:   &mock.Fetcher{},
			Extractor: &mock.ContactExtractor{},
		}

		result, err := p.Run(context.Background(), nil, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Empty(t, result.Contacts)
		assert.Equal(t, 0, result.Scraped)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("scrapes a single source and normalizes its records", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{
						HTML:     "<html><body>team page</body></html>",
						FinalURL: "https://example.com/team/",
					}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(html, sourceURL string) ([]*rolodex.Contact, error) {
					assert.Equal(t, "<html><body>team page</body></html>", html)
					assert.Equal(t, "https://example.com/team/", sourceURL)
					return []*rolodex.Contact{
						{Name: "  alice   JOHNSON ", Email: "Alice@Example.COM", Phone: "555-123-4567", SourceURL: sourceURL},
					}, nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		result, err := p.Run(context.Background(), []string{"https://example.com/team"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scraped)
		assert.Equal(t, 0, result.Failed)
		require.Len(t, result.Contacts, 1)
		assert.Equal(t, &rolodex.Contact{
			Name:      "Alice Johnson",
			Email:     "alice@example.com",
			Phone:     "5551234567",
			SourceURL: "https://example.com/team/",
		}, result.Contacts[0])
	})

	t.Run("a failing source never aborts the run", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					if source == "https://broken.example.com" {
						return nil, rolodex.Errorf(rolodex.EFORBIDDEN, "blocked by robots.txt: %s", source)
					}
					return &rolodex.FetchResult{HTML: "<p>ok</p>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, sourceURL string) ([]*rolodex.Contact, error) {
					return []*rolodex.Contact{{Name: "Ann Lee", SourceURL: sourceURL}}, nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		sources := []string{"https://broken.example.com", "https://ok.example.com"}
		result, err := p.Run(context.Background(), sources, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scraped)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Contacts, 1)
		assert.Equal(t, "https://ok.example.com", result.Contacts[0].SourceURL)
	})

	t.Run("extraction failures count as failed sources", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{HTML: "<p>ok</p>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, _ string) ([]*rolodex.Contact, error) {
					return nil, rolodex.Errorf(rolodex.EINVALID, "failed to parse HTML")
				},
			},
			RetryDelays: []time.Duration{0},
		}

		result, err := p.Run(context.Background(), []string{"https://example.com"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Scraped)
		assert.Equal(t, 1, result.Failed)
		assert.Empty(t, result.Contacts)
	})

	t.Run("deduplicates records across sources keeping the first", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{HTML: "<p>ok</p>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, sourceURL string) ([]*rolodex.Contact, error) {
					if sourceURL == "https://a.example.com" {
						return []*rolodex.Contact{
							{Name: "Ann Lee", Email: "Ann@Example.com", Phone: "555.123.4567", SourceURL: sourceURL},
						}, nil
					}
					return []*rolodex.Contact{
						{Name: "A. Lee", Email: "ann@example.com", Phone: "(555) 123-4567", SourceURL: sourceURL},
						{Name: "Bob Jones", Email: "bob@example.com", SourceURL: sourceURL},
					}, nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		sources := []string{"https://a.example.com", "https://b.example.com"}
		result, err := p.Run(context.Background(), sources, nil)

		require.NoError(t, err)
		require.Len(t, result.Contacts, 2)
		assert.Equal(t, "Ann Lee", result.Contacts[0].Name)
		assert.Equal(t, "https://a.example.com", result.Contacts[0].SourceURL)
		assert.Equal(t, "Bob Jones", result.Contacts[1].Name)
	})

	t.Run("keeps source order with concurrent workers", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					// The first source finishes last.
					if source == "https://slow.example.com" {
						time.Sleep(30 * time.Millisecond)
					}
					return &rolodex.FetchResult{HTML: "<p>ok</p>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, sourceURL string) ([]*rolodex.Contact, error) {
					return []*rolodex.Contact{{Name: "Person", Email: sourceURL + "@example.com", SourceURL: sourceURL}}, nil
				},
			},
			Concurrency: 3,
			RetryDelays: []time.Duration{0},
		}

		sources := []string{
			"https://slow.example.com",
			"https://mid.example.com",
			"https://fast.example.com",
		}
		result, err := p.Run(context.Background(), sources, nil)

		require.NoError(t, err)
		require.Len(t, result.Contacts, 3)
		assert.Equal(t, "https://slow.example.com", result.Contacts[0].SourceURL)
		assert.Equal(t, "https://mid.example.com", result.Contacts[1].SourceURL)
		assert.Equal(t, "https://fast.example.com", result.Contacts[2].SourceURL)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					if source == "https://broken.example.com" {
						return nil, rolodex.Errorf(rolodex.ENOTFOUND, "no such page")
					}
					return &rolodex.FetchResult{HTML: "<p>ok</p>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, sourceURL string) ([]*rolodex.Contact, error) {
					return []*rolodex.Contact{{Name: "Ann Lee", SourceURL: sourceURL}}, nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		var events []scrape.ProgressEvent
		sources := []string{"https://ok.example.com", "https://broken.example.com"}
		_, err := p.Run(context.Background(), sources, func(event scrape.ProgressEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)

		assert.Equal(t, scrape.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)

		assert.Equal(t, scrape.ProgressCompleted, events[1].Type)
		assert.Equal(t, "https://ok.example.com", events[1].Source)
		assert.Equal(t, 1, events[1].Contacts)

		assert.Equal(t, scrape.ProgressFailed, events[2].Type)
		assert.Equal(t, "https://broken.example.com", events[2].Source)
		assert.Error(t, events[2].Error)

		assert.Equal(t, scrape.ProgressFinished, events[3].Type)
		assert.Equal(t, 2, events[3].Completed)
		assert.Equal(t, 1, events[3].Contacts)
	})

	t.Run("stage two dedup runs once over the whole run", func(t *testing.T) {
		t.Parallel()

		// Both sources yield a name-only record. Stage two keys on
		// (email, phone) alone, so they share the empty key and collapse.
		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{HTML: "<p>ok</p>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, sourceURL string) ([]*rolodex.Contact, error) {
					return []*rolodex.Contact{{Name: "Ann Lee", SourceURL: sourceURL}}, nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		sources := []string{"https://a.example.com", "https://b.example.com"}
		result, err := p.Run(context.Background(), sources, nil)

		require.NoError(t, err)
		require.Len(t, result.Contacts, 1)
		assert.Equal(t, "https://a.example.com", result.Contacts[0].SourceURL)
	})
}
