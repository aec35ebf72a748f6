// Package output provides structured output handling for the notesexport CLI.
//
// Every command can print for a human at a terminal or emit JSON for a
// script or agent. The Printer switches between the two based on the
// --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Names(folders, "No folders found.")
//	printer.ExportReport(report.Summary())
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad arguments, folder or subfolder not found
//	output.ExitSystemError // 2: Scripting bridge unavailable, script failed, I/O error
//	output.ExitPartial     // 3: Export finished but some notes failed
//
// Domain errors implement Classifier to pick their own code; FromError
// converts any error into an *ExitError while keeping it as the cause.
package output
