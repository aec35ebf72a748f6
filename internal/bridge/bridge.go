package bridge

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/gorewood/notesexport/internal/logging"
)

// Runner executes one script against the host application and returns its
// trimmed standard output.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// Script languages understood by osascript.
const (
	LanguageJavaScript  = "JavaScript"
	LanguageAppleScript = "AppleScript"
)

// DefaultPath is the interpreter looked up on PATH when none is configured.
const DefaultPath = "osascript"

// Osascript runs scripts through the macOS osascript interpreter. The script
// is passed on stdin, so its size is not limited by argv.
type Osascript struct {
	// Path is the interpreter binary; empty means DefaultPath.
	Path string
	// Language is passed as -l; empty means LanguageJavaScript.
	Language string
}

// NewOsascript returns a JavaScript-for-Automation runner using the given
// interpreter path.
func NewOsascript(path string) *Osascript {
	return &Osascript{Path: path, Language: LanguageJavaScript}
}

// Run executes script synchronously in a single osascript process. There is
// no retry and no timeout beyond ctx cancellation.
//
// Failures are returned as *ScriptError:
//   - KindUnavailable when the interpreter cannot be started or the host
//     application cannot be reached (not running, automation not permitted)
//   - KindScriptFailed when the script ran and exited non-zero
func (o *Osascript) Run(ctx context.Context, script string) (string, error) {
	path := o.Path
	if path == "" {
		path = DefaultPath
	}
	lang := o.Language
	if lang == "" {
		lang = LanguageJavaScript
	}

	cmd := exec.CommandContext(ctx, path, "-l", lang, "-")
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := logging.FromContext(ctx)
	started := time.Now()
	err := cmd.Run()
	logger.Debug().
		Str("interpreter", path).
		Str("language", lang).
		Int("script_bytes", len(script)).
		Int("stdout_bytes", stdout.Len()).
		Dur("elapsed", time.Since(started)).
		Err(err).
		Msg("ran host script")

	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", &ScriptError{
				Kind:    KindUnavailable,
				Message: path + " not found: the scripting bridge is only available on macOS",
				Cause:   err,
			}
		}

		diag := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &ScriptError{
				Kind:    KindUnavailable,
				Message: "cannot run " + path + ": " + err.Error(),
				Cause:   err,
			}
		}
		if diag == "" {
			diag = err.Error()
		}
		return "", &ScriptError{
			Kind:    classify(diag),
			Message: "host script failed: " + diag,
			Stderr:  diag,
			Cause:   err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// unavailableCodes are Apple Event error numbers that mean the host could
// not be reached at all, as opposed to the script failing inside it.
var unavailableCodes = []string{
	"(-600)",   // application isn't running
	"(-609)",   // connection is invalid
	"(-1743)",  // not authorized to send Apple events
	"(-10810)", // launch services failed to start the application
}

// unavailablePhrases catch the same conditions when the interpreter reports
// them without a numeric code. JXA reports every uncaught error as -2700,
// so that code alone says nothing about reachability.
var unavailablePhrases = []string{
	"not authorized",
	"isn't running",
	"isn’t running",
	"application can't be found",
	"connection is invalid",
}

// classify maps interpreter diagnostics to an error kind.
func classify(diag string) Kind {
	for _, code := range unavailableCodes {
		if strings.Contains(diag, code) {
			return KindUnavailable
		}
	}
	lower := strings.ToLower(diag)
	for _, phrase := range unavailablePhrases {
		if strings.Contains(lower, phrase) {
			return KindUnavailable
		}
	}
	return KindScriptFailed
}
