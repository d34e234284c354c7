package mdbundle

import (
	"context"
	"strings"
)

// DefaultExtension is used when Input.Extension is empty.
const DefaultExtension = ".md"

// serviceConfig holds service-level settings.
type serviceConfig struct {
	extension string
}

// Option customizes a Service.
type Option func(*Service)

// WithExtension sets the default chapter file extension (incl. dot) used
// when Input.Extension is empty.
func WithExtension(ext string) Option {
	return func(s *Service) { s.cfg.extension = ext }
}

// Service orchestrates the chapter assembly pipeline.
type Service struct {
	cfg         serviceConfig
	resolver    sourceResolver
	titles      titleExtractor
	newStripper func(linkText, target string) referenceStripper
	writer      outputWriter
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{extension: DefaultExtension},
		resolver: fsResolver{},
		titles:   headingTitleExtractor{},
		newStripper: func(linkText, target string) referenceStripper {
			return newBackLinkStripper(linkText, target)
		},
		writer: bomWriter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Assemble runs the full pipeline: resolve every configured chapter,
// extract titles for the table of contents, strip back-to-index links from
// the bodies, concatenate with boundary markers, and write the artifact
// once. The context is checked between stages.
//
// Missing chapters and chapters that exist but are not valid UTF-8 are
// skipped and recorded in the report; they never fail the run. The run's
// only fatal condition after resolution begins is a failed output write,
// in which case the destination keeps its previous content.
func (s *Service) Assemble(ctx context.Context, input Input) (*Report, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	extension := input.Extension
	if extension == "" {
		extension = s.cfg.extension
	}

	// Resolve all chapters up front; both passes walk the same artifacts.
	artifacts := s.resolver.Resolve(input.BaseDir, extension, input.Chapters)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	report := &Report{
		Chapters:   make([]ChapterResult, 0, len(artifacts)),
		Configured: len(input.Chapters),
		OutputPath: input.OutputPath,
	}

	// TOC pass, then body pass, both in configured ordinal order. A missing
	// chapter drops out of both independently without shifting the rest.
	stripper := s.newStripper(input.BackLinkText, input.IndexFile)
	chapters := make([]assembledChapter, 0, len(artifacts))
	for _, art := range artifacts {
		result := ChapterResult{Spec: art.spec, Path: art.path}

		switch {
		case !art.exists:
			result.Status = StatusMissing
		case art.err != nil:
			result.Status = StatusUnreadable
			result.Err = art.err
		default:
			result.Status = StatusAdded
			result.Title = s.titles.ExtractTitle(art.raw)
			chapters = append(chapters, assembledChapter{
				title: result.Title,
				body:  stripper.Strip(art.raw),
			})
			report.Resolved++
			if result.Title != "" {
				report.TOCEntries++
			}
		}

		report.Chapters = append(report.Chapters, result)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc := assembleDocument(input, len(input.Chapters), chapters)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	n, err := s.writer.WriteDocument(input.OutputPath, doc)
	if err != nil {
		return report, err
	}
	report.Bytes = n

	return report, nil
}

// validateInput checks the run description before any file is touched.
func (s *Service) validateInput(input Input) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(input.OutputPath) == "" {
		return ErrEmptyOutputPath
	}
	return nil
}
