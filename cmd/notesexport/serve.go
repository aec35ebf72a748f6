package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	notesmcp "github.com/gorewood/notesexport/internal/mcp"
	"github.com/gorewood/notesexport/internal/output"
)

// newServeCmdInternal creates the serve command for running as an MCP
// server, with optional host injection.
func newServeCmdInternal(host notesHost) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run notesexport as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "notesexport": {
        "command": "notesexport",
        "args": ["serve"]
      }
    }
  }

Available tools: list_folders, list_subfolders, export_notes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			cfg, err := loadConfig(printer)
			if err != nil {
				return err
			}
			opts, err := exportOptions(cfg, "", "")
			if err != nil {
				printer.Error(err)
				return err
			}

			server := notesmcp.NewServer(buildVersion(), ensureHost(host, cfg), notesmcp.Defaults{
				ExportDir: cfg.ExportDir,
				Options:   opts,
			})
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return output.NewSystemErrorWithCause("mcp server stopped", err)
			}
			return nil
		},
	}
}
