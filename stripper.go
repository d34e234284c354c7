package mdbundle

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and old-Mac line endings for normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// referenceStripper removes intra-document back-references from chapter text.
type referenceStripper interface {
	Strip(content string) string
}

// backLinkStripper removes markdown links whose visible text and target
// both match configured values exactly. Links with different text or a
// different target are left untouched.
type backLinkStripper struct {
	pattern *regexp.Regexp
}

// newBackLinkStripper builds a stripper for links of the form
// [linkText](target). Both parts are matched literally.
func newBackLinkStripper(linkText, target string) *backLinkStripper {
	pattern := regexp.MustCompile(
		`\[` + regexp.QuoteMeta(linkText) + `\]\(` + regexp.QuoteMeta(target) + `\)`,
	)
	return &backLinkStripper{pattern: pattern}
}

// Strip replaces every occurrence with the empty string. A link standing
// alone on a line leaves an empty line behind; blank lines are not
// collapsed here. Stripping already-stripped text is a no-op.
func (s *backLinkStripper) Strip(content string) string {
	if !strings.Contains(content, "[") {
		return content
	}
	return s.pattern.ReplaceAllString(content, "")
}
