package notes

import (
	"fmt"
	"time"

	"github.com/gorewood/notesexport/internal/output"
)

// Note is one note read from the host application. Notes are read only:
// nothing in this package writes back to the host.
type Note struct {
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Created time.Time `json:"created"`
	// ReadError is set when the host failed to read this note. Title may
	// still be filled in if the failure happened after it was read.
	ReadError string `json:"read_error,omitempty"`
}

// Failed reports whether the note could not be read.
func (n Note) Failed() bool {
	return n.ReadError != ""
}

// BodyFormat selects which note property is exported as the body.
type BodyFormat string

const (
	// BodyPlaintext exports the note text without markup.
	BodyPlaintext BodyFormat = "plaintext"
	// BodyHTML exports the host's HTML body.
	BodyHTML BodyFormat = "html"
)

// ParseBodyFormat validates a --format value. Empty means plaintext.
func ParseBodyFormat(value string) (BodyFormat, error) {
	switch BodyFormat(value) {
	case "", BodyPlaintext:
		return BodyPlaintext, nil
	case BodyHTML:
		return BodyHTML, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("--format must be 'plaintext' or 'html' (got %q)", value))
	}
}

// property returns the host property name holding this body format.
func (f BodyFormat) property() string {
	if f == BodyHTML {
		return "body"
	}
	return "plaintext"
}

// ResolutionError reports that the requested folder or subfolder does not
// exist in the host application.
type ResolutionError struct {
	Folder    string
	Subfolder string
	Message   string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return e.Message
}

// ExitCode classifies a missing folder as a user error.
func (e *ResolutionError) ExitCode() int {
	return output.ExitUserError
}
