package notes

import (
	"context"

	"github.com/gorewood/notesexport/internal/bridge"
	"github.com/gorewood/notesexport/internal/logging"
)

// Client queries the host application through a scripting bridge.
// It holds no state between calls and is safe for concurrent use when the
// runner is.
type Client struct {
	runner bridge.Runner
}

// NewClient creates a Client running scripts through runner.
func NewClient(runner bridge.Runner) *Client {
	return &Client{runner: runner}
}

// ListFolders returns the names of every top-level folder in host order.
// Bridge errors are returned unchanged.
func (c *Client) ListFolders(ctx context.Context) ([]string, error) {
	script, err := FoldersScript()
	if err != nil {
		return nil, err
	}
	out, err := c.runner.Run(ctx, script)
	if err != nil {
		return nil, err
	}
	return decodeList(out)
}

// ListSubfolders returns the names of the direct subfolders of parent. A
// parent that does not exist or cannot be read yields an empty list rather
// than an error; only bridge failures are returned.
func (c *Client) ListSubfolders(ctx context.Context, parent string) ([]string, error) {
	script, err := SubfoldersScript(parent)
	if err != nil {
		return nil, err
	}
	out, err := c.runner.Run(ctx, script)
	if err != nil {
		return nil, err
	}
	return decodeList(out)
}

// ReadNotes resolves folder, then subfolder under it when subfolder is
// non-empty, and reads every note in the result. A missing folder or
// subfolder is a *ResolutionError. Notes the host failed to read are
// returned with ReadError set instead of failing the whole call.
func (c *Client) ReadNotes(ctx context.Context, folder, subfolder string, format BodyFormat) ([]Note, error) {
	script, err := NotesScript(folder, subfolder, format)
	if err != nil {
		return nil, err
	}
	out, err := c.runner.Run(ctx, script)
	if err != nil {
		return nil, err
	}

	notes, resolveErr, err := decodeNotes(out)
	if err != nil {
		return nil, err
	}
	if resolveErr != "" {
		return nil, &ResolutionError{Folder: folder, Subfolder: subfolder, Message: resolveErr}
	}

	logging.FromContext(ctx).Debug().
		Str("folder", folder).
		Str("subfolder", subfolder).
		Int("notes", len(notes)).
		Msg("read notes")
	return notes, nil
}
