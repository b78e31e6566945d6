package main

import (
	"fmt"

	"github.com/fwojciec/rolodex"
	"github.com/fwojciec/rolodex/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	sources, err := c.gatherSources(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rolodex.ErrorMessage(err))
		return err
	}
	if len(sources) == 0 {
		return ErrNoSources
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d sources\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %d records\n",
				event.Completed, event.Total, event.Source, event.Contacts)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Source, event.Error)
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rolodex.ErrorMessage(err))
		return err
	}

	if len(result.Contacts) == 0 {
		if result.Failed > 0 {
			fmt.Fprintf(deps.Stdout, "No contact records found (%d of %d sources failed)\n",
				result.Failed, len(sources))
		} else {
			fmt.Fprintln(deps.Stdout, "No contact records found")
		}
		return nil
	}

	if err := deps.Writer.WriteReport(deps.Ctx, result.Contacts); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rolodex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d unique contact records to %s\n", len(result.Contacts), c.Out)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d of %d sources failed\n", result.Failed, len(sources))
	}
	return nil
}
