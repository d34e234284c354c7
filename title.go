package mdbundle

import (
	"regexp"
	"strings"
)

// leadingHeading matches a line that starts with exactly one '#' followed by
// whitespace. Deeper headings (##, ###, ...) never match because their
// second character is another '#', not whitespace.
var leadingHeading = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)

// titleExtractor finds a chapter's table-of-contents title.
type titleExtractor interface {
	ExtractTitle(content string) string
}

// headingTitleExtractor returns the text of the first leading heading line
// anywhere in the chapter, not just on the first line.
type headingTitleExtractor struct{}

// ExtractTitle returns the first leading heading's text, or "" when the
// chapter has no such line.
func (headingTitleExtractor) ExtractTitle(content string) string {
	matches := leadingHeading.FindStringSubmatch(content)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}
