package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gorewood/notesexport/internal/httpapi"
	"github.com/gorewood/notesexport/internal/logging"
	"github.com/gorewood/notesexport/internal/output"
)

// newServeHTTPCmdInternal creates the serve-http command with optional host injection.
func newServeHTTPCmdInternal(host notesHost) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-http",
		Short: "Serve the JSON HTTP API",
		Long: `Serve folder listing and export over a local JSON HTTP API.

Routes:
  GET  /api/folders                      {"folders": [...]}
  GET  /api/folders/{folder}/subfolders  {"folder": "...", "subfolders": [...]}
  POST /api/export                       {"folder", "subfolder", "dir", "collisions", "format"}

Errors are returned as {"error": "...", "code": N} using the CLI exit codes.
The listen address defaults to http_addr from the config file, or
127.0.0.1:8765. Stop the server with Ctrl-C.

Examples:
  notesexport serve-http
  notesexport serve-http --addr :9000`,
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
			if addr == "" {
				addr = cfg.HTTPAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := httpapi.New(ensureHost(host, cfg), cfg.ExportDir, opts, *logging.FromContext(ctx))
			if err := printer.Listening("http://"+addr, cfg.ExportDir); err != nil {
				return err
			}
			if err := server.Serve(ctx, addr); err != nil {
				err = output.NewSystemErrorWithCause("http server failed: "+err.Error(), err)
				printer.Error(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, 127.0.0.1:8765)")
	return cmd
}
