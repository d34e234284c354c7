package main

import (
	"context"
	"errors"
	"fmt"

	mdbundle "github.com/akiramei/mdbundle"
	"github.com/akiramei/mdbundle/internal/config"
	"github.com/akiramei/mdbundle/internal/dateutil"
	"github.com/akiramei/mdbundle/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags     = errors.New("invalid command line flags")
	ErrSourceDirMissing = errors.New("chapter directory not found")
)

// runAssemble orchestrates one assembly run.
func runAssemble(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseAssembleFlags(args)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Capture the generation timestamp once for the entire run
	generated, err := dateutil.ResolveDateTime(cfg.Document.Date, deps.Now())
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	baseDir := cfg.Chapters.Dir
	if len(positional) > 0 {
		baseDir = positional[0]
	}
	if !fileutil.DirExists(baseDir) {
		return fmt.Errorf("%w: %s", ErrSourceDirMissing, baseDir)
	}

	input := mdbundle.Input{
		BaseDir:      baseDir,
		Chapters:     mdbundle.ChaptersFromList(cfg.Chapters.List),
		Extension:    cfg.Chapters.Extension,
		Title:        cfg.Document.Title,
		Version:      cfg.Document.Version,
		Generated:    generated,
		TOCTitle:     cfg.TOC.Title,
		IndexFile:    cfg.Index.File,
		BackLinkText: cfg.Index.BackLinkText,
		OutputPath:   cfg.Output.Path,
	}

	report, err := mdbundle.New().Assemble(ctx, input)
	if report != nil {
		printReport(report, flags.common.quiet, flags.common.verbose, deps)
	}
	return err
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *assembleFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.version != "" {
		cfg.Document.Version = flags.document.version
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
	if flags.tocTitle != "" {
		cfg.TOC.Title = flags.tocTitle
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
}

// printReport writes the per-chapter progress lines and the final summary.
// Warnings always go to stderr; progress and summary honor --quiet.
func printReport(report *mdbundle.Report, quiet, verbose bool, deps *Dependencies) {
	for _, ch := range report.Chapters {
		switch ch.Status {
		case mdbundle.StatusMissing:
			fmt.Fprintf(deps.Stderr, "WARNING: chapter not found: %s\n", ch.Path)
		case mdbundle.StatusUnreadable:
			fmt.Fprintf(deps.Stderr, "WARNING: chapter unreadable: %s: %v\n", ch.Path, ch.Err)
		case mdbundle.StatusAdded:
			if quiet {
				continue
			}
			if verbose && ch.Title != "" {
				fmt.Fprintf(deps.Stdout, "Added %s (%s)\n", ch.Path, ch.Title)
			} else {
				fmt.Fprintf(deps.Stdout, "Added %s\n", ch.Path)
			}
		}
	}

	if report.Bytes > 0 && !quiet {
		fmt.Fprintf(deps.Stdout, "\nWrote %s (%d bytes)\n", report.OutputPath, report.Bytes)
	}
}
