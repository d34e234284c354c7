package mdbundle

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTitle      = errors.New("document title cannot be empty")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrNotUTF8         = errors.New("chapter is not valid UTF-8")
	ErrWriteOutput     = errors.New("failed to write output document")
)
