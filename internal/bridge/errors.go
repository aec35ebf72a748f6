package bridge

import (
	"errors"

	"github.com/gorewood/notesexport/internal/output"
)

// Kind classifies a scripting bridge failure.
type Kind int

const (
	// KindScriptFailed means the script ran but exited non-zero.
	KindScriptFailed Kind = iota
	// KindUnavailable means the bridge itself could not run: interpreter
	// missing, host application not running, or automation not permitted.
	KindUnavailable
)

// String returns the kind name used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "bridge_unavailable"
	default:
		return "script_failed"
	}
}

// ScriptError is returned by Runner implementations for every failure.
type ScriptError struct {
	Kind    Kind
	Message string
	// Stderr is the interpreter's diagnostic stream, when there was one.
	Stderr string
	Cause  error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return e.Message
}

// Unwrap returns the underlying exec error.
func (e *ScriptError) Unwrap() error {
	return e.Cause
}

// ExitCode maps every bridge failure to a system error.
func (e *ScriptError) ExitCode() int {
	return output.ExitSystemError
}

// IsUnavailable reports whether err is a ScriptError of KindUnavailable.
func IsUnavailable(err error) bool {
	var scriptErr *ScriptError
	return errors.As(err, &scriptErr) && scriptErr.Kind == KindUnavailable
}
