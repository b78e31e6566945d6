package main

import (
	"fmt"

	"github.com/fwojciec/rolodex"
)

// Run executes the probe command. It fetches one source and prints the
// records the scrape command would collect from it, without writing a
// report.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	fetched, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rolodex.ErrorMessage(err))
		return err
	}

	contacts, err := deps.Extractor.ExtractContacts(fetched.HTML, fetched.FinalURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rolodex.ErrorMessage(err))
		return err
	}

	for i, contact := range contacts {
		contacts[i] = rolodex.NormalizeContact(contact)
	}
	contacts = rolodex.DedupeAcross(contacts)

	if len(contacts) == 0 {
		fmt.Fprintln(deps.Stdout, "No contact records found")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d contact records on %s\n", len(contacts), fetched.FinalURL)
	for _, contact := range contacts {
		fmt.Fprintf(deps.Stdout, "  %s\n", formatContact(contact))
	}
	return nil
}

// formatContact renders a contact as a single line, with "-" standing in
// for absent fields.
func formatContact(c *rolodex.Contact) string {
	name, email, phone := c.Name, c.Email, c.Phone
	if name == "" {
		name = "-"
	}
	if email == "" {
		email = "-"
	}
	if phone == "" {
		phone = "-"
	}
	return fmt.Sprintf("%-24s %-32s %s", name, email, phone)
}
