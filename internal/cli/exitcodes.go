package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdhtml/internal/configloader"
	"github.com/yaklabco/mdhtml/pkg/convert"
)

// Exit codes for mdhtml.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFor maps a command error to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &validationErr),
		errors.Is(err, configloader.ErrConfigRead),
		errors.Is(err, configloader.ErrConfigParse):
		return ExitConfigError
	case errors.Is(err, convert.ErrReadInput),
		errors.Is(err, convert.ErrWriteOutput),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
