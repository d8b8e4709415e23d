// Package errors provides structured error types for cratefetch.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the index, resolver and CLI layers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes mirror the failure kinds of registry lookups:
//   - EMPTY_CRATE_NAME, INVALID_*: input validation failures
//   - NO_CRATE, NO_VERSIONS_AVAILABLE: nothing to resolve
//   - INVALID_SUMMARY_JSON: a malformed index entry
//   - MISSING_REGISTRY_CHECKOUT, NON_UNICODE_GIT_PATH, GIT_ERROR: the local index mirror
//   - IO_ERROR: the external git process or the filesystem
//   - FETCH_FAILED, PARSE_MANIFEST: remote name resolution
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoCrate, "the crate `%s` could not be found in registry index", name)
//	if errors.Is(err, errors.ErrCodeNoCrate) {
//	    // Handle missing crate
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "git fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeEmptyCrateName  Code = "EMPTY_CRATE_NAME"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"
	ErrCodeInvalidRepoURL  Code = "INVALID_REPO_URL"
	ErrCodeInvalidRegistry Code = "INVALID_REGISTRY"

	// Resolution errors
	ErrCodeNoCrate             Code = "NO_CRATE"
	ErrCodeNoVersionsAvailable Code = "NO_VERSIONS_AVAILABLE"
	ErrCodeInvalidSummaryJSON  Code = "INVALID_SUMMARY_JSON"

	// Index mirror errors
	ErrCodeMissingCheckout   Code = "MISSING_REGISTRY_CHECKOUT"
	ErrCodeNonUnicodeGitPath Code = "NON_UNICODE_GIT_PATH"
	ErrCodeGit               Code = "GIT_ERROR"
	ErrCodeIO                Code = "IO_ERROR"

	// Remote name resolution errors
	ErrCodeFetch         Code = "FETCH_FAILED"
	ErrCodeParseManifest Code = "PARSE_MANIFEST"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// The outermost *Error decides; inner codes are not consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
