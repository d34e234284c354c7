package mdbundle

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/akiramei/mdbundle/internal/fileutil"
)

// filePermissions for the written document: rw-r--r--.
const filePermissions = 0o644

// outputWriter persists a fully assembled buffer exactly once.
type outputWriter interface {
	WriteDocument(path string, content string) (int, error)
}

// bomWriter writes the document UTF-8 encoded with a leading byte order
// mark, atomically. The destination is overwritten unconditionally; on
// failure the previous content, if any, is left intact.
type bomWriter struct{}

// WriteDocument encodes and writes the buffer, returning the byte size of
// the artifact (BOM included).
func (bomWriter) WriteDocument(path string, content string) (int, error) {
	encoded, _, err := transform.Bytes(unicode.UTF8BOM.NewEncoder(), []byte(content))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := fileutil.WriteFileAtomic(path, encoded, filePermissions); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return len(encoded), nil
}
