package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/notesexport/internal/bridge"
	"github.com/gorewood/notesexport/internal/config"
	"github.com/gorewood/notesexport/internal/export"
	"github.com/gorewood/notesexport/internal/output"
)

// doctorResult is the doctor report.
type doctorResult struct {
	Version string            `json:"version"`
	Checks  []output.Check    `json:"checks"`
	Summary output.CheckTally `json:"summary"`
}

// newDoctorCmdInternal creates the doctor command with optional host injection.
func newDoctorCmdInternal(host notesHost) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that notes can be read and exported",
		Long: `Check that notesexport can reach the Notes app and write exports.

Checks:
  Config      - the config file parses
  Interpreter - osascript (or NOTESEXPORT_OSASCRIPT) is on PATH
  Notes app   - the app answers a folder listing
  Export dir  - the export directory exists or can be created

Exits with code 2 when any check fails.

Examples:
  notesexport doctor
  notesexport doctor --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, host)
		},
	}
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, host notesHost) error {
	printer := newPrinter(cmd)
	result := gatherDoctorChecks(cmd.Context(), host)

	if printer.IsJSON() {
		if err := printer.JSON(result); err != nil {
			return err
		}
	} else {
		printer.Checks("notesexport doctor "+result.Version, result.Checks)
	}

	if result.Summary.Failed > 0 {
		return output.NewSystemError(fmt.Sprintf("%d of %d checks failed", result.Summary.Failed, len(result.Checks)))
	}
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(ctx context.Context, host notesHost) *doctorResult {
	cfg, configCheck := checkConfig()
	result := &doctorResult{
		Version: buildVersion(),
		Checks: []output.Check{
			configCheck,
			checkInterpreter(cfg.Osascript),
			checkNotesApp(ctx, ensureHost(host, cfg)),
			checkExportDir(cfg.ExportDir),
		},
	}
	result.Summary = output.Tally(result.Checks)
	return result
}

// checkConfig loads the config file. On failure the defaults are used for
// the remaining checks.
func checkConfig() (config.Config, output.Check) {
	path := config.FilePath()
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default(), output.Check{
			Name:    "Config",
			Status:  output.CheckFail,
			Message: err.Error(),
			Hint:    "Fix or remove " + path,
		}
	}

	if _, statErr := os.Stat(path); statErr != nil {
		return cfg, output.Check{Name: "Config", Status: output.CheckPass, Message: "no config file, using defaults"}
	}
	return cfg, output.Check{Name: "Config", Status: output.CheckPass, Message: path}
}

// checkInterpreter looks up the scripting interpreter.
func checkInterpreter(path string) output.Check {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return output.Check{
			Name:    "Interpreter",
			Status:  output.CheckFail,
			Message: path + " not found",
			Hint:    "osascript ships with macOS; set " + config.EnvOsascript + " to use another path",
		}
	}
	return output.Check{Name: "Interpreter", Status: output.CheckPass, Message: resolved}
}

// checkNotesApp asks the host for its folders.
func checkNotesApp(ctx context.Context, host notesHost) output.Check {
	folders, err := host.ListFolders(ctx)
	if err != nil {
		check := output.Check{Name: "Notes app", Status: output.CheckFail, Message: err.Error()}
		if bridge.IsUnavailable(err) {
			check.Hint = "Allow automation of Notes in System Settings > Privacy & Security > Automation"
		}
		return check
	}
	if len(folders) == 0 {
		return output.Check{Name: "Notes app", Status: output.CheckWarn, Message: "no folders found"}
	}
	return output.Check{Name: "Notes app", Status: output.CheckPass, Message: fmt.Sprintf("%d folders", len(folders))}
}

// checkExportDir verifies the export directory exists or can be created.
func checkExportDir(dir string) output.Check {
	abs, err := export.ResolveDir(dir)
	if err != nil {
		return output.Check{Name: "Export dir", Status: output.CheckFail, Message: err.Error()}
	}

	if info, statErr := os.Stat(abs); statErr == nil {
		if !info.IsDir() {
			return output.Check{Name: "Export dir", Status: output.CheckFail, Message: abs + " is not a directory"}
		}
		return output.Check{Name: "Export dir", Status: output.CheckPass, Message: abs}
	}

	if info, statErr := os.Stat(filepath.Dir(abs)); statErr != nil || !info.IsDir() {
		return output.Check{
			Name:    "Export dir",
			Status:  output.CheckFail,
			Message: "parent directory of " + abs + " does not exist",
			Hint:    "Create it or set export_dir in " + config.FilePath(),
		}
	}
	return output.Check{Name: "Export dir", Status: output.CheckWarn, Message: abs + " will be created on first export"}
}
