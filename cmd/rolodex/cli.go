package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/rolodex"
	"github.com/fwojciec/rolodex/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Pipeline and Writer serve the scrape command.
	Pipeline *scrape.Pipeline
	Writer   rolodex.ReportWriter
	Sitemaps SitemapExpander

	// Fetcher and Extractor serve the probe command.
	Fetcher   rolodex.Fetcher
	Extractor rolodex.ContactExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape contact records from sources and write a report"`
	Probe  ProbeCmd  `cmd:"" help:"Fetch a single source and print the records found"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Sources     []string        `arg:"" optional:"" help:"Page URLs or local HTML files"`
	Input       string          `short:"i" help:"File listing sources, one per line"`
	Sitemap     []string        `help:"Sitemap URL to expand into page URLs (repeatable)"`
	Out         string          `short:"o" default:"contacts.csv" help:"Report path; the extension picks the format (.csv, .xlsx, .db)"`
	Concurrency int             `short:"c" default:"1" help:"Concurrent fetch limit"`
	Delay       time.Duration   `default:"500ms" help:"Minimum delay between requests to the same host"`
	Timeout     time.Duration   `short:"t" default:"10s" help:"Fetch timeout per request"`
	UserAgent   string          `help:"User-Agent header for HTTP requests"`
	NoRobots    bool            `help:"Skip robots.txt checks"`
	Cache       string          `help:"Directory for caching fetched pages"`
	Config      kong.ConfigFlag `help:"YAML file with flag defaults"`
	Verbose     bool            `short:"v" help:"Log fetches and extractions to stderr"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL       string        `arg:"" help:"Page URL or local HTML file"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent string        `help:"User-Agent header for HTTP requests"`
	NoRobots  bool          `help:"Skip robots.txt checks"`
	Verbose   bool          `short:"v" help:"Log fetches and extractions to stderr"`
}
