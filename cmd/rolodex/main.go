package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/rolodex"
	"github.com/fwojciec/rolodex/excelize"
	"github.com/fwojciec/rolodex/fs"
	"github.com/fwojciec/rolodex/goquery"
	rolodexhttp "github.com/fwojciec/rolodex/http"
	"github.com/fwojciec/rolodex/scrape"
	rolslog "github.com/fwojciec/rolodex/slog"
	"github.com/fwojciec/rolodex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the report when the output path is a .db file.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rolodex"),
		kong.Description("Extract contact records from web pages into a deduplicated report"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Configuration(configLoader),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rolodex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command
	switch cmd {
	case "scrape":
		fetcher, err := newRouteFetcher(fetchConfig{
			Timeout:   cli.Scrape.Timeout,
			UserAgent: cli.Scrape.UserAgent,
			Delay:     cli.Scrape.Delay,
			NoRobots:  cli.Scrape.NoRobots,
			CacheDir:  cli.Scrape.Cache,
		})
		if err != nil {
			return err
		}
		defer fetcher.Close()

		writer, err := m.newReportWriter(cli.Scrape.Out)
		if err != nil {
			return err
		}
		defer m.Close()

		var f rolodex.Fetcher = fetcher
		var extractor rolodex.ContactExtractor = goquery.NewExtractor()
		if cli.Scrape.Verbose {
			logger := newLogger(stderr)
			f = rolslog.NewLoggingFetcher(f, logger)
			extractor = rolslog.NewLoggingContactExtractor(extractor, logger)
			writer = rolslog.NewLoggingReportWriter(writer, logger)
		}

		deps.Writer = writer
		deps.Sitemaps = rolodexhttp.NewSitemap(nil, cli.Scrape.UserAgent)
		deps.Pipeline = &scrape.Pipeline{
			Fetcher:     f,
			Extractor:   extractor,
			Concurrency: cli.Scrape.Concurrency,
		}

	case "probe":
		fetcher, err := newRouteFetcher(fetchConfig{
			Timeout:   cli.Probe.Timeout,
			UserAgent: cli.Probe.UserAgent,
			NoRobots:  cli.Probe.NoRobots,
		})
		if err != nil {
			return err
		}
		defer fetcher.Close()

		var f rolodex.Fetcher = fetcher
		var extractor rolodex.ContactExtractor = goquery.NewExtractor()
		if cli.Probe.Verbose {
			logger := newLogger(stderr)
			f = rolslog.NewLoggingFetcher(f, logger)
			extractor = rolslog.NewLoggingContactExtractor(extractor, logger)
		}

		deps.Fetcher = f
		deps.Extractor = extractor
	}

	return kongCtx.Run(deps)
}

// newReportWriter selects a report writer from the output path extension.
// A .db path opens a SQLite database owned by Main until Close.
func (m *Main) newReportWriter(path string) (rolodex.ReportWriter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return fs.NewWriter(path), nil
	case ".xlsx":
		return excelize.NewWriter(path), nil
	case ".db":
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewWriter(m.DB), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownReportFormat, path)
	}
}

// newLogger builds the logger behind --verbose: debug-level text on stderr.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
