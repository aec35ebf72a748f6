// Package output provides structured output and error handling for the notesexport CLI.
package output

import (
	"errors"
	"fmt"
)

// Exit codes:
// 0 = Success
// 1 = User error (bad args, folder or subfolder not found)
// 2 = System error (scripting bridge unavailable, script failed, I/O error)
// 3 = Partial export (at least one note failed, the rest were written)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitPartial     = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, missing required flags, unknown folders.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping an underlying cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: osascript missing, host application unreachable, I/O errors.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewPartialError reports an export where some notes failed (exit code 3).
func NewPartialError(failed, total int) *ExitError {
	return &ExitError{
		Code:    ExitPartial,
		Message: fmt.Sprintf("%d of %d notes failed to export", failed, total),
	}
}

// Classifier is implemented by domain errors that know which exit code
// they map to.
type Classifier interface {
	ExitCode() int
}

// FromError converts any error into an *ExitError. Errors that already are
// an *ExitError are returned unchanged; errors implementing Classifier keep
// their code; anything else becomes a system error. The original error is
// kept as the cause.
func FromError(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	code := ExitSystemError
	var classified Classifier
	if errors.As(err, &classified) {
		code = classified.ExitCode()
	}

	return &ExitError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for unclassified errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var classified Classifier
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}

	// Default to user error for untyped errors (cobra flag parsing etc.)
	return ExitUserError
}
