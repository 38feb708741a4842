// Package errors provides structured error types for diagram operations.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Actionable suggestions attached to failures
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - *_NOT_FOUND: a referenced cell, layer, or group does not exist
//   - INVALID_*: input validation failures (XML structure, batch references)
//   - WRONG_*: type mismatches (editing an edge with the vertex editor)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeCellNotFound, "cell %s does not exist", id)
//	if errors.Is(err, errors.ErrCodeCellNotFound) {
//	    // Handle missing cell
//	}
//
//	// Attach context for the caller
//	err = errors.New(errors.ErrCodeNotAGroup, "cell %s is not a group", id).
//	    WithCell(id).
//	    WithSuggestion("create a group first with CreateGroup")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Referential integrity errors
	ErrCodeCellNotFound   Code = "CELL_NOT_FOUND"
	ErrCodeSourceNotFound Code = "SOURCE_NOT_FOUND"
	ErrCodeTargetNotFound Code = "TARGET_NOT_FOUND"
	ErrCodeLayerNotFound  Code = "LAYER_NOT_FOUND"
	ErrCodeGroupNotFound  Code = "GROUP_NOT_FOUND"

	// Type and containment errors
	ErrCodeWrongCellType Code = "WRONG_CELL_TYPE"
	ErrCodeNotAGroup     Code = "NOT_A_GROUP"
	ErrCodeNotInGroup    Code = "NOT_IN_GROUP"
	ErrCodeSelfReference Code = "SELF_REFERENCE"
	ErrCodeDefaultLayer  Code = "DEFAULT_LAYER"

	// Batch validation errors
	ErrCodeInvalidSource Code = "INVALID_SOURCE"
	ErrCodeInvalidTarget Code = "INVALID_TARGET"
	ErrCodeInvalidKind   Code = "INVALID_KIND"

	// XML structural errors
	ErrCodeEmptyXML   Code = "EMPTY_XML"
	ErrCodeInvalidXML Code = "INVALID_XML"

	// API request errors
	ErrCodeInvalidRequest Code = "INVALID_REQUEST"

	// Placeholder resolution errors
	ErrCodeResolveFailed Code = "RESOLVE_FAILED"

	// Storage errors
	ErrCodeDiagramNotFound Code = "DIAGRAM_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional diagnostic context.
// CellID and Index identify the offending cell or batch entry when known,
// and Suggestion carries a human-readable hint for correcting the call.
type Error struct {
	Code       Code   // Machine-readable error code
	Message    string // Human-readable message
	CellID     string // Offending cell id, when known
	Index      int    // Zero-based batch entry index; -1 when not applicable
	Suggestion string // Actionable hint for the caller (optional)
	Cause      error  // Underlying error (optional)
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

// WithCell returns e with the offending cell id attached.
func (e *Error) WithCell(id string) *Error {
	e.CellID = id
	return e
}

// WithIndex returns e with the batch entry index attached.
func (e *Error) WithIndex(i int) *Error {
	e.Index = i
	return e
}

// WithSuggestion returns e with an actionable hint attached.
func (e *Error) WithSuggestion(format string, args ...any) *Error {
	e.Suggestion = fmt.Sprintf(format, args...)
	return e
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Index:   -1,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Index:   -1,
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (plus suggestion, when present)
// without the code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Suggestion != "" {
			return e.Message + " (" + e.Suggestion + ")"
		}
		return e.Message
	}
	return err.Error()
}
