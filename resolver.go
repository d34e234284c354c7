package mdbundle

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// chapterArtifact is the resolved, readable source for one ChapterSpec.
// Absence is a recoverable condition carried in the artifact, not an error
// of the run.
type chapterArtifact struct {
	spec   ChapterSpec
	path   string
	exists bool
	raw    string // decoded content, BOM stripped, line endings normalized
	err    error  // non-nil when the file exists but could not be read or decoded
}

// sourceResolver maps chapter specs to readable artifacts.
type sourceResolver interface {
	Resolve(baseDir, extension string, specs []ChapterSpec) []chapterArtifact
}

// fsResolver resolves chapters against the local filesystem.
type fsResolver struct{}

// Resolve probes <baseDir>/<identifier><extension> for every spec, in order.
// A missing or unreadable file never stops resolution of the remaining
// chapters; zero resolvable chapters is a valid outcome.
func (fsResolver) Resolve(baseDir, extension string, specs []ChapterSpec) []chapterArtifact {
	artifacts := make([]chapterArtifact, len(specs))
	for i, spec := range specs {
		path := filepath.Join(baseDir, spec.Identifier+extension)
		artifacts[i] = readChapter(spec, path)
	}
	return artifacts
}

// readChapter reads and decodes one chapter file.
func readChapter(spec ChapterSpec, path string) chapterArtifact {
	art := chapterArtifact{spec: spec, path: path}

	data, err := os.ReadFile(path) // #nosec G304 -- path built from validated config
	if err != nil {
		if os.IsNotExist(err) {
			return art
		}
		art.exists = true
		art.err = fmt.Errorf("reading chapter: %w", err)
		return art
	}
	art.exists = true

	decoded, err := decodeUTF8(data)
	if err != nil {
		art.err = err
		return art
	}

	art.raw = normalizeLineEndings(decoded)
	return art
}

// decodeUTF8 validates the content and strips a leading byte order mark.
func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrNotUTF8
	}

	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding chapter: %w", err)
	}
	return string(decoded), nil
}
