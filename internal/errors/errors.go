// Package errors provides sentinel and typed errors for modgen.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidIdentifier indicates the module name was rejected before any work started.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrFetch indicates the template could not be materialized.
	ErrFetch = errors.New("fetch failed")

	// ErrPermission indicates a filesystem permission failure that could not be recovered.
	ErrPermission = errors.New("permission denied")

	// ErrRewrite indicates a read, write or rename failure during the rewrite pass.
	ErrRewrite = errors.New("rewrite failed")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")
)

// InvalidIdentifierError is returned when the module name does not carry the
// required prefix. Nothing has been written to disk when it is returned.
type InvalidIdentifierError struct {
	Identifier string
	Prefix     string
}

func (e *InvalidIdentifierError) Error() string {
	if e.Identifier == e.Prefix {
		return fmt.Sprintf("invalid identifier %q: nothing follows the %q prefix", e.Identifier, e.Prefix)
	}
	return fmt.Sprintf("invalid identifier %q: must start with %q", e.Identifier, e.Prefix)
}

// Is reports whether target is ErrInvalidIdentifier.
func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// FetchError is returned when cloning the template or cleaning it up fails.
type FetchError struct {
	// Op is the step that failed ("clone", "remove", "prepare").
	Op string

	// URL is the template source.
	URL string

	// Path is the path being operated on.
	Path string

	Err error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString("fetch ")
	b.WriteString(e.Op)
	if e.URL != "" {
		b.WriteString(" ")
		b.WriteString(e.URL)
	}
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetch.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// RewriteError is returned by the first failing operation of the rewrite pass.
type RewriteError struct {
	// Op is one of "walk", "read", "write", "rename".
	Op   string
	Path string
	Err  error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("rewrite %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRewrite.
func (e *RewriteError) Is(target error) bool {
	return target == ErrRewrite
}

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}
