// Package scrape provides contact scraping orchestration.
// It coordinates fetching, extraction, normalization and deduplication of
// contact records across a list of sources.
package scrape

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/rolodex"
)

// Pipeline orchestrates scraping contact records from sources.
type Pipeline struct {
	Fetcher     rolodex.Fetcher
	Extractor   rolodex.ContactExtractor
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scrape operation.
type Result struct {
	// Contacts are the deduplicated records collected across all sources,
	// in source order.
	Contacts []*rolodex.Contact

	// Scraped is the number of sources processed successfully.
	Scraped int

	// Failed is the number of sources that could not be processed.
	Failed int
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Contacts  int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// sourceResult holds the outcome of processing a single source.
type sourceResult struct {
	position int
	source   string
	contacts []*rolodex.Contact
	err      error
}

// Run scrapes all sources and returns the deduplicated contact records.
// A failing source never aborts the run: its error is reported through
// progress and counted in Result.Failed while the remaining sources are
// still processed. The progress callback, if provided, receives events as
// scraping proceeds.
func (p *Pipeline) Run(ctx context.Context, sources []string, progress ProgressFunc) (*Result, error) {
	if len(sources) == 0 {
		return &Result{}, nil
	}

	// Sources are processed one at a time unless configured otherwise.
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	resultCh := make(chan sourceResult, len(sources))

	var completed atomic.Int64
	total := len(sources)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			g.Go(func() error {
				resultCh <- p.processSource(gctx, i, source)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in source order.
	results := make([]sourceResult, len(sources))
	var failed int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Source:    result.source,
					Error:     result.err,
				})
			}
			continue
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Source:    result.source,
				Contacts:  len(result.contacts),
			})
		}
	}

	var all []*rolodex.Contact
	for _, result := range results {
		all = append(all, result.contacts...)
	}

	contacts := rolodex.DedupeAcross(all)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
			Contacts:  len(contacts),
		})
	}

	return &Result{
		Contacts: contacts,
		Scraped:  total - failed,
		Failed:   failed,
	}, nil
}

// processSource fetches one source and extracts its contact records.
func (p *Pipeline) processSource(ctx context.Context, position int, source string) sourceResult {
	result := sourceResult{
		position: position,
		source:   source,
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetched, err := FetchWithRetryDelays(ctx, source, p.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	contacts, err := p.Extractor.ExtractContacts(fetched.HTML, fetched.FinalURL)
	if err != nil {
		result.err = err
		return result
	}

	for i, c := range contacts {
		contacts[i] = rolodex.NormalizeContact(c)
	}

	result.contacts = contacts
	return result
}
