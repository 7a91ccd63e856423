// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies tool errors so that MCP clients can decide
// whether to retry, fix their input, or give up without parsing message
// text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// a missing component name, an unknown strategy, a bad flag value.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates the requested component has no
	// documentation at any candidate path. Retrying will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the documentation source rejected the
	// credentials or the repository is private.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryTransient indicates a temporary failure such as a network
	// error, a timeout, or an exhausted rate limit. The caller should
	// back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error. The caller should
	// report it rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. The MCP
// server reports the Category as structured metadata next to the error
// text.
//
// Use the category constructors (Validation, NotFound, ...) rather than
// building a ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step appended to the message, such as
	// the command to run to see what is available.
	Hint string
}

// Error returns the underlying message followed by the hint, if any.
// The category travels separately in the MCP errorInfo field.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error so errors.Is and errors.As see
// through the wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
