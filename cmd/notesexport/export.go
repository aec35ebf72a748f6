package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/notesexport/internal/config"
	"github.com/gorewood/notesexport/internal/export"
	"github.com/gorewood/notesexport/internal/output"
)

// exportFlags holds the command-line flags for the export command.
type exportFlags struct {
	folder     string
	subfolder  string
	out        string
	collisions string
	format     string
}

// newExportCmdInternal creates the export command with optional host injection.
func newExportCmdInternal(host notesHost) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a folder's notes to plain-text files",
		Long: `Export every note in a folder, or in one subfolder of it, to the
export directory. Each note becomes <YYYY-MM-DD>_<first-two-words>.txt,
named after its creation date and title.

A note that cannot be read or written is reported and skipped; the
remaining notes are still exported and the command exits with code 3.

The export directory defaults to export_dir from the config file, or
~/NotesExport. It is created when missing; its parent must exist.

Examples:
  notesexport export --folder Work
  notesexport export --folder Work --subfolder Meetings --out ~/Desktop/meetings
  notesexport export --folder Work --collisions suffix   # keep same-named notes apart
  notesexport export --folder Work --json                # per-note report as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, host, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.folder, "folder", "f", "", "Folder to export (required)")
	cmd.Flags().StringVarP(&flags.subfolder, "subfolder", "s", "", "Export this subfolder of --folder instead")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Export directory (default from config)")
	cmd.Flags().StringVar(&flags.collisions, "collisions", "", "Same filename policy: overwrite or suffix (default from config)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Note body: plaintext or html (default from config)")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, host notesHost, flags *exportFlags) error {
	printer := newPrinter(cmd)

	if flags.folder == "" {
		err := output.NewUserError("--folder is required. Run 'notesexport folders' to list folders")
		printer.Error(err)
		return err
	}

	cfg, err := loadConfig(printer)
	if err != nil {
		return err
	}

	opts, err := exportOptions(cfg, flags.collisions, flags.format)
	if err != nil {
		printer.Error(err)
		return err
	}

	report, err := export.New(ensureHost(host, cfg), opts).Export(cmd.Context(), exportTarget(cfg, flags))
	if err != nil {
		printer.Error(err)
		return output.FromError(err)
	}

	if printer.IsJSON() {
		if err := printer.JSON(report); err != nil {
			return err
		}
	} else {
		printer.ExportReport(report.Summary())
	}
	return report.Err()
}

// exportTarget combines the flags with the configured export directory.
func exportTarget(cfg config.Config, flags *exportFlags) export.Target {
	dir := flags.out
	if dir == "" {
		dir = cfg.ExportDir
	}
	return export.Target{Folder: flags.folder, Subfolder: flags.subfolder, Dir: dir}
}
