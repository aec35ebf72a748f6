// Package mcp provides a Model Context Protocol server for notesexport.
// It exposes folder listing and note export as MCP tools that any
// MCP-capable agent can call.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/notesexport/internal/export"
)

// Host is the view of the notes application the tools need.
// *notes.Client implements it.
type Host interface {
	ListFolders(ctx context.Context) ([]string, error)
	ListSubfolders(ctx context.Context, parent string) ([]string, error)
	export.Source
}

// Defaults are applied when a tool call leaves an argument empty.
type Defaults struct {
	ExportDir string
	Options   export.Options
}

// NewServer creates an MCP server with all notesexport tools registered.
func NewServer(version string, host Host, defaults Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "notesexport",
		Version: version,
	}, nil)
	registerTools(server, host, defaults)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only query the host.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// exportAnnotations describes export_notes: it never touches the notes, but
// it writes and may overwrite files in the export directory.
func exportAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all notesexport tools to the server.
func registerTools(server *mcp.Server, host Host, defaults Defaults) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_folders",
		Description: "List the top-level folders of the Notes app, in the app's order.",
		Annotations: readOnlyAnnotations(),
	}, handleListFolders(host))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_subfolders",
		Description: "List the direct subfolders of a Notes folder. Returns an empty list when the folder has none or does not exist.",
		Annotations: readOnlyAnnotations(),
	}, handleListSubfolders(host))

	mcp.AddTool(server, &mcp.Tool{
		Name: "export_notes",
		Description: "Export every note in a folder (optionally a subfolder of it) as <YYYY-MM-DD>_<first-two-words>.txt files. " +
			"Notes in the app are never modified. Returns one result per note.",
		Annotations: exportAnnotations(),
	}, handleExportNotes(host, defaults))
}
