package mdbundle

// ChapterSpec pins one chapter to its position in the assembled document.
type ChapterSpec struct {
	Ordinal    int    // 1-based position in the final document, fixed by configuration
	Identifier string // stable name used to locate the source file, without extension
}

// ChaptersFromList converts an ordered identifier list into ChapterSpecs.
// Ordinals are assigned from list position, 1-based.
func ChaptersFromList(identifiers []string) []ChapterSpec {
	specs := make([]ChapterSpec, len(identifiers))
	for i, id := range identifiers {
		specs[i] = ChapterSpec{Ordinal: i + 1, Identifier: id}
	}
	return specs
}

// Input describes one assembly run.
type Input struct {
	BaseDir   string        // directory holding the chapter files
	Chapters  []ChapterSpec // assembly order; ordinals must be ascending
	Extension string        // chapter file extension incl. dot (default ".md")

	Title     string // header title line
	Version   string // header version label
	Generated string // header generation timestamp, captured once at run start
	TOCTitle  string // heading above the table of contents

	IndexFile    string // link target stripped from chapter bodies, e.g. "00_README.md"
	BackLinkText string // visible text of the stripped links, e.g. "目次に戻る"

	OutputPath string // destination of the consolidated document
}

// ChapterStatus reports what happened to one configured chapter.
type ChapterStatus string

const (
	// StatusAdded means the chapter was resolved and its body assembled.
	StatusAdded ChapterStatus = "added"
	// StatusMissing means no file matched the identifier; the chapter was skipped.
	StatusMissing ChapterStatus = "missing"
	// StatusUnreadable means a file existed but could not be read or decoded.
	StatusUnreadable ChapterStatus = "unreadable"
)

// ChapterResult is the outcome of one configured chapter.
type ChapterResult struct {
	Spec   ChapterSpec
	Path   string        // the path the resolver probed
	Status ChapterStatus // added, missing, or unreadable
	Title  string        // TOC title; empty when the chapter has no leading heading
	Err    error         // set for unreadable chapters
}

// Report summarizes an assembly run.
type Report struct {
	Chapters   []ChapterResult // one entry per configured chapter, in ordinal order
	Configured int             // chapters configured, regardless of resolution
	Resolved   int             // chapters whose body made it into the document
	TOCEntries int             // resolved chapters that also had a leading heading
	OutputPath string
	Bytes      int // size of the written artifact, BOM included
}
