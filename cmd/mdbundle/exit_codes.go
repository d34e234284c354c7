package main

import (
	"errors"
	"os"

	mdbundle "github.com/akiramei/mdbundle"
	"github.com/akiramei/mdbundle/internal/config"
	"github.com/akiramei/mdbundle/internal/dateutil"
)

// Exit codes for the mdbundle CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Document assembled and written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Directory not found, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, mdbundle.ErrWriteOutput) ||
		errors.Is(err, ErrSourceDirMissing) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrNoChapters) ||
		errors.Is(err, config.ErrBadIdentifier) ||
		errors.Is(err, config.ErrBadExtension) ||
		errors.Is(err, config.ErrEmptyDocumentItem) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, mdbundle.ErrEmptyTitle) ||
		errors.Is(err, mdbundle.ErrEmptyOutputPath) {
		return ExitUsage
	}

	return ExitGeneral
}
