// Package main provides the entry point for the notesexport CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/notesexport/internal/config"
	"github.com/gorewood/notesexport/internal/logging"
	"github.com/gorewood/notesexport/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// isVerbose reports whether --verbose was given.
func isVerbose(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "verbose") == "true"
}

func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the notesexport CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdWithHost(nil)
}

// newRootCmdWithHost creates the root command with an optional host
// injected into every subcommand. If host is nil, each command talks to
// the Notes app through osascript.
func newRootCmdWithHost(host notesHost) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notesexport",
		Short: "Export Apple Notes folders to plain-text files",
		Long: `notesexport - Export Apple Notes folders to plain-text files.

notesexport reads notes through the macOS scripting bridge (osascript) and
writes one file per note, named <YYYY-MM-DD>_<first-two-words>.txt after
the note's creation date and title. Notes in the app are never modified.

The same operations are available to agents over MCP (notesexport serve)
and to local tools over HTTP (notesexport serve-http).

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'notesexport --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local, .env and the global env file, then attach a logger.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadEnvFiles(); err != nil {
			return output.NewUserErrorWithCause(err.Error(), err)
		}
		if _, err := output.ParseColorMode(persistentFlag(cmd, "color")); err != nil {
			output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).Error(err)
			return err
		}
		logger := logging.New(cmd.ErrOrStderr(), isVerbose(cmd) || config.DebugEnabled())
		cmd.SetContext(logging.WithContext(cmd.Context(), logger))
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("verbose", false, "Log bridge calls and export steps to stderr")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd, host)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "notes", Title: "Notes Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "server", Title: "Server Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command, host notesHost) {
	addGroupedCommand(cmd, newFoldersCmdInternal(host), "notes")
	addGroupedCommand(cmd, newSubfoldersCmdInternal(host), "notes")
	addGroupedCommand(cmd, newExportCmdInternal(host), "notes")

	addGroupedCommand(cmd, newServeCmdInternal(host), "server")
	addGroupedCommand(cmd, newServeHTTPCmdInternal(host), "server")

	addGroupedCommand(cmd, newDoctorCmdInternal(host), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
