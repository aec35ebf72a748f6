package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/notesexport/internal/output"
)

// newFoldersCmdInternal creates the folders command with optional host injection.
func newFoldersCmdInternal(host notesHost) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List top-level Notes folders",
		Long: `List the top-level folders of the Notes app, in the app's order.

Examples:
  notesexport folders          # One folder per line
  notesexport folders --json   # {"folders": [...]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFolders(cmd, host)
		},
	}
}

// runFolders executes the folders command.
func runFolders(cmd *cobra.Command, host notesHost) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	folders, err := ensureHost(host, cfg).ListFolders(cmd.Context())
	if err != nil {
		printer.Error(err)
		return output.FromError(err)
	}

	if printer.IsJSON() {
		return printer.JSON(map[string]any{"folders": folders})
	}
	printer.Names(folders, "No folders found.")
	return nil
}

// newSubfoldersCmdInternal creates the subfolders command with optional host injection.
func newSubfoldersCmdInternal(host notesHost) *cobra.Command {
	return &cobra.Command{
		Use:   "subfolders <folder>",
		Short: "List the subfolders of a Notes folder",
		Long: `List the direct subfolders of a Notes folder.

A folder with no subfolders, or one that does not exist, yields an
empty list.

Examples:
  notesexport subfolders Work
  notesexport subfolders "Recipes, Desserts" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubfolders(cmd, host, args[0])
		},
	}
}

// runSubfolders executes the subfolders command.
func runSubfolders(cmd *cobra.Command, host notesHost, folder string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	subfolders, err := ensureHost(host, cfg).ListSubfolders(cmd.Context(), folder)
	if err != nil {
		printer.Error(err)
		return output.FromError(err)
	}

	if printer.IsJSON() {
		return printer.JSON(map[string]any{"folder": folder, "subfolders": subfolders})
	}
	printer.Names(subfolders, "No subfolders.")
	return nil
}
