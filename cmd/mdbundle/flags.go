package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds header metadata flags.
type documentFlags struct {
	title   string
	version string
	date    string
}

// assembleFlags holds all flags for the assemble command.
type assembleFlags struct {
	common   commonFlags
	document documentFlags
	output   string
	tocTitle string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show chapter titles while assembling")
}

// addDocumentFlags adds header metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "doc-title", "", "document title for the header block")
	fs.StringVar(&f.version, "doc-version", "", "version label for the header block")
	fs.StringVar(&f.date, "date", "", "generation timestamp: \"auto\", \"auto:FORMAT\", or literal")
}

// parseAssembleFlags parses assemble command flags and returns positional args.
func parseAssembleFlags(args []string) (*assembleFlags, []string, error) {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	f := &assembleFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}
