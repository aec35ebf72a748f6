package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/notesexport/internal/export"
	"github.com/gorewood/notesexport/internal/notes"
)

// --- List folders tool ---

// ListFoldersInput is the input for the list_folders tool (no parameters needed).
type ListFoldersInput struct{}

// ListFoldersOutput is the output for the list_folders tool.
type ListFoldersOutput struct {
	Folders []string `json:"folders" jsonschema:"top-level folder names"`
}

func handleListFolders(host Host) mcp.ToolHandlerFor[ListFoldersInput, ListFoldersOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListFoldersInput) (*mcp.CallToolResult, ListFoldersOutput, error) {
		folders, err := host.ListFolders(ctx)
		if err != nil {
			return nil, ListFoldersOutput{}, fmt.Errorf("listing folders: %w", err)
		}
		return nil, ListFoldersOutput{Folders: folders}, nil
	}
}

// --- List subfolders tool ---

// ListSubfoldersInput is the input for the list_subfolders tool.
type ListSubfoldersInput struct {
	Folder string `json:"folder" jsonschema:"name of the parent folder"`
}

// ListSubfoldersOutput is the output for the list_subfolders tool.
type ListSubfoldersOutput struct {
	Folder     string   `json:"folder"     jsonschema:"the parent folder"`
	Subfolders []string `json:"subfolders" jsonschema:"direct subfolder names"`
}

func handleListSubfolders(host Host) mcp.ToolHandlerFor[ListSubfoldersInput, ListSubfoldersOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListSubfoldersInput) (*mcp.CallToolResult, ListSubfoldersOutput, error) {
		if input.Folder == "" {
			return nil, ListSubfoldersOutput{}, errors.New("folder is required")
		}
		subfolders, err := host.ListSubfolders(ctx, input.Folder)
		if err != nil {
			return nil, ListSubfoldersOutput{}, fmt.Errorf("listing subfolders of %s: %w", input.Folder, err)
		}
		return nil, ListSubfoldersOutput{Folder: input.Folder, Subfolders: subfolders}, nil
	}
}

// --- Export tool ---

// ExportInput is the input for the export_notes tool.
type ExportInput struct {
	Folder     string `json:"folder"               jsonschema:"folder to export"`
	Subfolder  string `json:"subfolder,omitempty"  jsonschema:"optional subfolder of folder to export instead"`
	Dir        string `json:"dir,omitempty"        jsonschema:"destination directory (default from config, ~ is expanded)"`
	Collisions string `json:"collisions,omitempty" jsonschema:"overwrite (default) or suffix when two notes map to the same filename"`
	Format     string `json:"format,omitempty"     jsonschema:"plaintext (default) or html"`
}

// ExportOutput is the output for the export_notes tool.
type ExportOutput struct {
	Report *export.Report `json:"report" jsonschema:"per-note export results"`
}

func handleExportNotes(host Host, defaults Defaults) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		opts, err := exportOptions(defaults.Options, input)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		dir := input.Dir
		if dir == "" {
			dir = defaults.ExportDir
		}

		report, err := export.New(host, opts).Export(ctx, export.Target{
			Folder:    input.Folder,
			Subfolder: input.Subfolder,
			Dir:       dir,
		})
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("exporting notes: %w", err)
		}
		return nil, ExportOutput{Report: report}, nil
	}
}

// exportOptions overlays per-call choices on the server defaults.
func exportOptions(base export.Options, input ExportInput) (export.Options, error) {
	opts := base
	if input.Collisions != "" {
		policy, err := export.ParseCollisionPolicy(input.Collisions)
		if err != nil {
			return opts, err
		}
		opts.Collisions = policy
	}
	if input.Format != "" {
		format, err := notes.ParseBodyFormat(input.Format)
		if err != nil {
			return opts, err
		}
		opts.BodyFormat = format
	}
	return opts, nil
}
