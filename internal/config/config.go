// Package config loads and validates bundle configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akiramei/mdbundle/internal/fileutil"
	"github.com/akiramei/mdbundle/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrEmptyConfigName   = errors.New("config name cannot be empty")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
	ErrNoChapters        = errors.New("chapter list cannot be empty")
	ErrBadIdentifier     = errors.New("invalid chapter identifier")
	ErrBadExtension      = errors.New("invalid chapter extension")
	ErrEmptyDocumentItem = errors.New("required config field is empty")
)

// Field length limits.
const (
	MaxTitleLength      = 200 // Document and TOC titles
	MaxVersionLength    = 50  // "v1.0", "2025.01 DRAFT"
	MaxDateLength       = 50  // "auto", "auto:FORMAT", or a literal timestamp
	MaxIdentifierLength = 100 // Single chapter identifier
	MaxLinkTextLength   = 100 // Back-link visible text
	MaxChapters         = 500 // Sanity bound on the configured list
)

// Config holds all configuration for one assembly run.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Chapters ChaptersConfig `yaml:"chapters"`
	Index    IndexConfig    `yaml:"index"`
	TOC      TOCConfig      `yaml:"toc"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig defines the synthesized header block.
type DocumentConfig struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
	Date    string `yaml:"date"` // "auto", "auto:FORMAT", or literal timestamp
}

// ChaptersConfig defines where chapters live and their assembly order.
// The list is ordered; a chapter's ordinal is its 1-based position.
type ChaptersConfig struct {
	Dir       string   `yaml:"dir"`       // Base directory holding chapter files
	Extension string   `yaml:"extension"` // File extension incl. dot (default: ".md")
	List      []string `yaml:"list"`      // Ordered chapter identifiers, no extension
}

// IndexConfig identifies the chapter-index file whose back-links are
// stripped from assembled bodies. The index file itself is never part of
// the chapter list.
type IndexConfig struct {
	File         string `yaml:"file"`         // e.g. "00_README.md"
	BackLinkText string `yaml:"backLinkText"` // Visible text of stripped links
}

// TOCConfig defines the generated table of contents block.
type TOCConfig struct {
	Title string `yaml:"title"`
}

// OutputConfig defines the destination of the consolidated document.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// referenceChapters is the chapter order of the Blazor enterprise
// architecture guide this tool was built for. 00_README is the index file
// and is deliberately not listed.
var referenceChapters = []string{
	"01_introduction",
	"02_architecture_overview",
	"03_layered_design",
	"04_project_structure",
	"05_domain_model",
	"06_application_services",
	"07_repository_pattern",
	"08_cqrs",
	"09_validation",
	"10_state_management",
	"11_component_design",
	"12_authentication",
	"13_error_handling",
	"14_logging_monitoring",
	"15_testing_strategy",
	"16_performance",
	"17_deployment",
	"18_operations",
	"19_troubleshooting",
}

// DefaultConfig returns the reference configuration: the 19-chapter guide
// layout with Japanese header and TOC labels.
func DefaultConfig() *Config {
	list := make([]string, len(referenceChapters))
	copy(list, referenceChapters)

	return &Config{
		Document: DocumentConfig{
			Title:   "Blazor エンタープライズアーキテクチャ 完全ガイド",
			Version: "v1.0",
			Date:    "auto",
		},
		Chapters: ChaptersConfig{
			Dir:       "docs",
			Extension: ".md",
			List:      list,
		},
		Index: IndexConfig{
			File:         "00_README.md",
			BackLinkText: "目次に戻る",
		},
		TOC: TOCConfig{
			Title: "目次",
		},
		Output: OutputConfig{
			Path: "FULL_GUIDE.md",
		},
	}
}

// Validate checks field lengths and the structural soundness of the
// chapter list. Called automatically by LoadConfig, but available for
// consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.version", c.Document.Version, MaxVersionLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("index.backLinkText", c.Index.BackLinkText, MaxLinkTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("index.file", c.Index.File, MaxIdentifierLength); err != nil {
		return err
	}

	if len(c.Chapters.List) == 0 {
		return ErrNoChapters
	}
	if len(c.Chapters.List) > MaxChapters {
		return fmt.Errorf("%w: chapters.list has %d entries (max %d)", ErrFieldTooLong, len(c.Chapters.List), MaxChapters)
	}
	for i, id := range c.Chapters.List {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: chapters.list[%d] is empty", ErrBadIdentifier, i)
		}
		if strings.ContainsAny(id, "/\\\x00") {
			return fmt.Errorf("%w: chapters.list[%d] %q contains a path separator", ErrBadIdentifier, i, id)
		}
		if err := validateFieldLength(fmt.Sprintf("chapters.list[%d]", i), id, MaxIdentifierLength); err != nil {
			return err
		}
	}

	if c.Chapters.Extension != "" && !strings.HasPrefix(c.Chapters.Extension, ".") {
		return fmt.Errorf("%w: %q must start with a dot", ErrBadExtension, c.Chapters.Extension)
	}

	if strings.TrimSpace(c.Document.Title) == "" {
		return fmt.Errorf("%w: document.title", ErrEmptyDocumentItem)
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("%w: output.path", ErrEmptyDocumentItem)
	}

	return nil
}

// validateFieldLength returns ErrFieldTooLong if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s is %d chars (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their DefaultConfig values, except the
// chapter list: a file that sets chapters.list replaces the reference list
// entirely.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/mdbundle/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdbundle", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
