package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Command validation errors.
var (
	ErrNoSources           = errors.New("no sources given: pass URLs or paths as arguments, or use --input or --sitemap")
	ErrUnknownReportFormat = errors.New("report path must end in .csv, .xlsx or .db")
)

// configLoader parses a YAML config file into flag values. Keys are flag
// names (for example "user-agent: rolodex/1.0"); values set this way lose
// to flags given on the command line.
func configLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		value, ok := values[flag.Name]
		if !ok {
			return nil, nil
		}
		return value, nil
	}), nil
}
