// Package notes talks to the host notes application: it lists folders and
// subfolders and reads the notes of a folder, all through a bridge.Runner.
//
// Scripts are JavaScript for Automation templates embedded in the binary.
// Caller supplied names are rendered as JSON string literals, never spliced
// in raw, and every script prints a single JSON document that the package
// decodes. Nothing here modifies the host's notes.
//
//	client := notes.NewClient(bridge.NewOsascript("osascript"))
//	folders, err := client.ListFolders(ctx)
//	subs, err := client.ListSubfolders(ctx, "Work")
//	list, err := client.ReadNotes(ctx, "Work", "Meetings", notes.BodyPlaintext)
package notes
