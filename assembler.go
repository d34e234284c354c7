package mdbundle

import (
	"fmt"
	"strings"
)

// boundaryMarker separates the header/TOC block and each chapter body:
// a blank line, a horizontal rule, a blank line. Appended after content
// that ends with a newline, it yields the literal "\n\n---\n\n" sequence.
const boundaryMarker = "\n---\n\n"

// assembledChapter is one chapter's contribution to the document body.
type assembledChapter struct {
	title string // TOC entry text; empty = no TOC line
	body  string // stripped chapter text
}

// assembleDocument builds the final buffer in three stages: header, table
// of contents, bodies. Only resolved chapters appear in chapters; the
// configured count is carried separately because the header declares the
// run's scope, not its yield.
func assembleDocument(in Input, configured int, chapters []assembledChapter) string {
	var b strings.Builder

	// Header stage
	b.WriteString("# " + in.Title + "\n")
	b.WriteString("\n")
	if in.Version != "" {
		b.WriteString("バージョン: " + in.Version + "\n")
	}
	b.WriteString("生成日時: " + in.Generated + "\n")
	b.WriteString(fmt.Sprintf("章数: %d\n", configured))

	// Table-of-contents stage. Chapters without a title are silently
	// absent here; they still contribute a body below.
	b.WriteString("\n## " + tocTitleOrDefault(in.TOCTitle) + "\n")
	hasEntries := false
	for _, ch := range chapters {
		if ch.title == "" {
			continue
		}
		if !hasEntries {
			b.WriteString("\n")
			hasEntries = true
		}
		b.WriteString("- " + ch.title + "\n")
	}

	// Body stage
	for _, ch := range chapters {
		b.WriteString(boundaryMarker)
		b.WriteString(strings.TrimRight(ch.body, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

func tocTitleOrDefault(title string) string {
	if title == "" {
		return "目次"
	}
	return title
}
