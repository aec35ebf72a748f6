package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gorewood/notesexport/internal/bridge"
	"github.com/gorewood/notesexport/internal/config"
	"github.com/gorewood/notesexport/internal/export"
	"github.com/gorewood/notesexport/internal/notes"
	"github.com/gorewood/notesexport/internal/output"
)

// notesHost is everything the commands need from the Notes app.
// *notes.Client implements it; tests inject a fake.
type notesHost interface {
	ListFolders(ctx context.Context) ([]string, error)
	ListSubfolders(ctx context.Context, parent string) ([]string, error)
	ReadNotes(ctx context.Context, folder, subfolder string, format notes.BodyFormat) ([]notes.Note, error)
}

// newPrinter creates a printer honoring --json and --color, with human
// errors on stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// useColor resolves --color against the TTY state of stdout.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(persistentFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// loadConfig reads the config file and environment.
func loadConfig(printer *output.Printer) (config.Config, error) {
	cfg, err := config.Load(config.FilePath())
	if err != nil {
		err = output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(err)
		return cfg, err
	}
	return cfg, nil
}

// ensureHost returns host, or a client for the configured osascript.
func ensureHost(host notesHost, cfg config.Config) notesHost {
	if host != nil {
		return host
	}
	return notes.NewClient(bridge.NewOsascript(cfg.Osascript))
}

// exportOptions builds exporter options from the config, letting non-empty
// flag values win.
func exportOptions(cfg config.Config, collisions, format string) (export.Options, error) {
	if collisions == "" {
		collisions = cfg.Collisions
	}
	if format == "" {
		format = cfg.Format
	}

	policy, err := export.ParseCollisionPolicy(collisions)
	if err != nil {
		return export.Options{}, err
	}
	bodyFormat, err := notes.ParseBodyFormat(format)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{Collisions: policy, BodyFormat: bodyFormat}, nil
}
