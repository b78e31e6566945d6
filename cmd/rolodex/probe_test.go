package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/rolodex"
	main "github.com/fwojciec/rolodex/cmd/rolodex"
	"github.com/fwojciec/rolodex/mock"
)

func TestProbeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints normalized records", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{HTML: "<html></html>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, sourceURL string) ([]*rolodex.Contact, error) {
					return []*rolodex.Contact{{
						Name:      "  alice   johnson ",
						Email:     "Alice@Example.COM",
						Phone:     "555-123-4567",
						SourceURL: sourceURL,
					}}, nil
				},
			},
		}

		cmd := &main.ProbeCmd{URL: "https://example.com/team"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := deps.Stdout.(*bytes.Buffer).String()
		assert.Contains(t, output, "Found 1 contact records on https://example.com/team")
		assert.Contains(t, output, "Alice Johnson")
		assert.Contains(t, output, "alice@example.com")
		assert.Contains(t, output, "5551234567")
	})

	t.Run("collapses records that share a dedup key", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{HTML: "<html></html>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, _ string) ([]*rolodex.Contact, error) {
					return []*rolodex.Contact{
						{Name: "Alice Johnson", Email: "alice@example.com"},
						{Name: "A. Johnson", Email: "ALICE@example.com"},
					}, nil
				},
			},
		}

		cmd := &main.ProbeCmd{URL: "https://example.com/team"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 1 contact records")
		assert.Contains(t, stdout.String(), "Alice Johnson")
		assert.NotContains(t, stdout.String(), "A. Johnson")
	})

	t.Run("prints a message when nothing is found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return &rolodex.FetchResult{HTML: "<html></html>", FinalURL: source}, nil
				},
			},
			Extractor: &mock.ContactExtractor{
				ExtractContactsFn: func(_, _ string) ([]*rolodex.Contact, error) {
					return nil, nil
				},
			},
		}

		cmd := &main.ProbeCmd{URL: "https://example.com/team"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No contact records found")
	})

	t.Run("reports fetch failures", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, source string) (*rolodex.FetchResult, error) {
					return nil, rolodex.Errorf(rolodex.EFORBIDDEN, "blocked by robots.txt: %s", source)
				},
			},
		}

		cmd := &main.ProbeCmd{URL: "https://example.com/team"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "blocked by robots.txt")
	})
}
