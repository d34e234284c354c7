package mdbundle

import (
	"strings"
	"testing"
)

func testInput() Input {
	return Input{
		Title:     "完全ガイド",
		Version:   "v1.0",
		Generated: "2025年01月31日 09:00:00",
		TOCTitle:  "目次",
	}
}

func TestAssembleDocumentHeader(t *testing.T) {
	t.Parallel()

	doc := assembleDocument(testInput(), 19, nil)

	for _, want := range []string{
		"# 完全ガイド\n",
		"バージョン: v1.0\n",
		"生成日時: 2025年01月31日 09:00:00\n",
		"章数: 19\n",
		"## 目次\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q\n%s", want, doc)
		}
	}
}

func TestAssembleDocumentHeaderUsesConfiguredCount(t *testing.T) {
	t.Parallel()

	// Only one chapter resolved, but three were configured.
	chapters := []assembledChapter{{title: "第1章", body: "text\n"}}
	doc := assembleDocument(testInput(), 3, chapters)

	if !strings.Contains(doc, "章数: 3\n") {
		t.Errorf("header must declare the configured count, not the resolved count:\n%s", doc)
	}
}

func TestAssembleDocumentBoundaries(t *testing.T) {
	t.Parallel()

	chapters := []assembledChapter{
		{title: "第1章", body: "first body\n"},
		{title: "第2章", body: "second body\n\n\n"}, // extra trailing newlines normalized
	}
	doc := assembleDocument(testInput(), 2, chapters)

	if got := strings.Count(doc, "\n\n---\n\n"); got != 2 {
		t.Errorf("document has %d boundary markers, want 2:\n%s", got, doc)
	}
	if !strings.Contains(doc, "first body\n\n---\n\nsecond body\n") {
		t.Errorf("bodies not separated by a single boundary:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "second body\n") {
		t.Errorf("document must end with the last body and a trailing newline:\n%q", doc[len(doc)-30:])
	}
}

func TestAssembleDocumentTOCOrder(t *testing.T) {
	t.Parallel()

	chapters := []assembledChapter{
		{title: "Zeppelin", body: "z\n"},
		{title: "Alpha", body: "a\n"},
	}
	doc := assembleDocument(testInput(), 2, chapters)

	zi := strings.Index(doc, "- Zeppelin")
	ai := strings.Index(doc, "- Alpha")
	if zi < 0 || ai < 0 || zi > ai {
		t.Errorf("TOC entries out of configured order (zeppelin=%d alpha=%d):\n%s", zi, ai, doc)
	}
}

func TestAssembleDocumentUntitledChapter(t *testing.T) {
	t.Parallel()

	chapters := []assembledChapter{
		{title: "第1章", body: "one\n"},
		{title: "", body: "untitled body\n"},
	}
	doc := assembleDocument(testInput(), 2, chapters)

	if got := strings.Count(doc, "\n- "); got != 1 {
		t.Errorf("TOC has %d entries, want 1 (untitled chapter is skipped)", got)
	}
	if !strings.Contains(doc, "untitled body") {
		t.Error("untitled chapter must still contribute a body")
	}
}

func TestAssembleDocumentEmptyRun(t *testing.T) {
	t.Parallel()

	doc := assembleDocument(testInput(), 5, nil)

	if strings.Contains(doc, "---") {
		t.Errorf("empty run must have no boundary markers:\n%s", doc)
	}
	if !strings.Contains(doc, "章数: 5\n") {
		t.Errorf("empty run still declares the configured count:\n%s", doc)
	}
	if !strings.Contains(doc, "## 目次\n") {
		t.Errorf("empty run still carries the TOC heading:\n%s", doc)
	}
	if strings.Contains(doc, "\n- ") {
		t.Errorf("empty run must have zero TOC entries:\n%s", doc)
	}
}

func TestAssembleDocumentOmitsEmptyVersion(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Version = ""
	doc := assembleDocument(in, 1, nil)

	if strings.Contains(doc, "バージョン") {
		t.Errorf("empty version must not render a version line:\n%s", doc)
	}
}
