// Package errors provides structured error types for the swissgrid application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library surface
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (bad format, grid counts, ...)
//   - DEGENERATE_*: Arithmetically impossible layouts (grid too dense)
//   - RENDER_*/WRITE_*: Failures producing an output artifact
//   - CONFIG/DEPLOY: Configuration and remote sync failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(origErr, errors.ErrCodeRenderFailed, "pdf generation")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors. These are raised before any layout
	// computation and always name the accepted set of values.
	ErrCodeInvalidFormat       Code = "INVALID_FORMAT"
	ErrCodeInvalidOrientation  Code = "INVALID_ORIENTATION"
	ErrCodeInvalidMarginMethod Code = "INVALID_MARGIN_METHOD"
	ErrCodeInvalidGrid         Code = "INVALID_GRID"
	ErrCodeInvalidBaseline     Code = "INVALID_BASELINE"

	// Arithmetic degeneracy: the requested grid cannot fit the page.
	// Distinct from validation so callers can report "grid too dense"
	// instead of a generic bad-input message.
	ErrCodeDegenerateGrid Code = "DEGENERATE_GRID"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeWriteFailed  Code = "WRITE_FAILED"

	// Configuration and deployment errors
	ErrCodeConfig Code = "CONFIG_ERROR"
	ErrCodeDeploy Code = "DEPLOY_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
func Wrap(cause error, code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
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

// IsValidation reports whether err carries any of the input validation codes.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidFormat, ErrCodeInvalidOrientation,
		ErrCodeInvalidMarginMethod, ErrCodeInvalidGrid, ErrCodeInvalidBaseline:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
