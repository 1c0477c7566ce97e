// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	oerrors "github.com/mikopbx/modgen/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidIdentifier indicates the module name was rejected. Nothing
	// was written to disk.
	ExitInvalidIdentifier = 2

	// ExitFetchError indicates the template could not be cloned or cleaned up.
	ExitFetchError = 3

	// ExitPermissionDenied indicates a filesystem permission failure that
	// could not be recovered.
	ExitPermissionDenied = 4

	// ExitRewriteError indicates the template tree could not be rewritten.
	ExitRewriteError = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidIdentifier:
		return "Invalid Identifier"
	case ExitFetchError:
		return "Fetch Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitRewriteError:
		return "Rewrite Error"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
// Permission is checked before fetch and rewrite because both can wrap it.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrInvalidIdentifier):
		return ExitInvalidIdentifier
	case errors.Is(err, oerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, oerrors.ErrFetch):
		return ExitFetchError
	case errors.Is(err, oerrors.ErrRewrite):
		return ExitRewriteError
	default:
		return ExitGeneralError
	}
}
