// Package export writes the notes of a host folder to plain-text files.
//
// # Export Runs
//
// An Exporter reads notes through a Source (normally *notes.Client) and
// writes one file per note into the destination directory:
//
//	exp := export.New(client, export.Options{Collisions: export.CollisionSuffix})
//	report, err := exp.Export(ctx, export.Target{Folder: "Work", Subfolder: "Meetings", Dir: "~/NotesExport"})
//
// Export fails as a whole only when the destination cannot be prepared,
// the folder or subfolder does not exist, or the bridge fails. Each note
// otherwise gets its own Result, exported or failed, in host order.
//
// # File Naming
//
// Files are named "<YYYY-MM-DD>_<stem>.txt" from the creation date and the
// first two words of the title:
//
//	"Grocery List for Sunday" created 2024-03-01 -> 2024-03-01_Grocery-List.txt
//	"Ideas"                                      -> 2024-03-01_Ideas-Note.txt
//	""                                           -> 2024-03-01_Untitled-Note.txt
//
// Re-running an export overwrites the same files. Within one run, two
// notes with the same name overwrite each other unless CollisionSuffix is
// set.
package export
