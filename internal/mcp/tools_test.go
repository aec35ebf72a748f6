package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/notesexport/internal/export"
	"github.com/gorewood/notesexport/internal/notes"
)

// --- Mock host ---

type mockHost struct {
	folders    []string
	subfolders map[string][]string
	notes      map[string][]notes.Note
	err        error
	lastFormat notes.BodyFormat
}

func (m *mockHost) ListFolders(_ context.Context) ([]string, error) {
	return m.folders, m.err
}

func (m *mockHost) ListSubfolders(_ context.Context, parent string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	subs, ok := m.subfolders[parent]
	if !ok {
		return []string{}, nil
	}
	return subs, nil
}

func (m *mockHost) ReadNotes(_ context.Context, folder, subfolder string, format notes.BodyFormat) ([]notes.Note, error) {
	m.lastFormat = format
	if m.err != nil {
		return nil, m.err
	}
	key := folder
	if subfolder != "" {
		key += "/" + subfolder
	}
	list, ok := m.notes[key]
	if !ok {
		return nil, &notes.ResolutionError{Folder: folder, Subfolder: subfolder, Message: "folder not found: " + key}
	}
	return list, nil
}

func newMockHost() *mockHost {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &mockHost{
		folders:    []string{"Notes", "Work"},
		subfolders: map[string][]string{"Work": {"Meetings"}},
		notes: map[string][]notes.Note{
			"Work/Meetings": {
				{Title: "Standup notes", Body: "all good", Created: created},
				{Title: "Retro", Body: "keep going", Created: created},
			},
		},
	}
}

func testDefaults(dir string) Defaults {
	return Defaults{ExportDir: dir, Options: export.Options{Location: time.UTC}}
}

// --- List handler tests ---

func TestHandleListFolders(t *testing.T) {
	handler := handleListFolders(newMockHost())

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListFoldersInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Folders) != 2 || out.Folders[1] != "Work" {
		t.Errorf("Folders = %v, want [Notes Work]", out.Folders)
	}
}

func TestHandleListFolders_Error(t *testing.T) {
	host := newMockHost()
	host.err = errors.New("osascript not found")

	_, _, err := handleListFolders(host)(context.Background(), &mcp.CallToolRequest{}, ListFoldersInput{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestHandleListSubfolders(t *testing.T) {
	tests := []struct {
		name    string
		folder  string
		want    int
		wantErr bool
	}{
		{name: "with children", folder: "Work", want: 1},
		{name: "no children", folder: "Notes", want: 0},
		{name: "missing folder argument", folder: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := handleListSubfolders(newMockHost())(context.Background(), &mcp.CallToolRequest{}, ListSubfoldersInput{Folder: tt.folder})
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Subfolders) != tt.want {
				t.Errorf("len(Subfolders) = %d, want %d", len(out.Subfolders), tt.want)
			}
			if out.Subfolders == nil {
				t.Error("Subfolders should be an empty list, not null")
			}
		})
	}
}

// --- Export handler tests ---

func TestHandleExportNotes(t *testing.T) {
	dir := t.TempDir()
	handler := handleExportNotes(newMockHost(), testDefaults(dir))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ExportInput{Folder: "Work", Subfolder: "Meetings"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Report.Exported != 2 || out.Report.Failed != 0 {
		t.Errorf("Exported/Failed = %d/%d, want 2/0", out.Report.Exported, out.Report.Failed)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	want := []string{"2024-03-01_Retro-Note.txt", "2024-03-01_Standup-notes.txt"}
	if len(names) != 2 || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("files = %v, want %v", names, want)
	}
}

func TestHandleExportNotes_ExplicitDirAndFormat(t *testing.T) {
	host := newMockHost()
	dir := filepath.Join(t.TempDir(), "custom")
	handler := handleExportNotes(host, testDefaults(t.TempDir()))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ExportInput{
		Folder: "Work", Subfolder: "Meetings", Dir: dir, Format: "html",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Report.Dir != dir {
		t.Errorf("Dir = %q, want %q", out.Report.Dir, dir)
	}
	if host.lastFormat != notes.BodyHTML {
		t.Errorf("format = %q, want html", host.lastFormat)
	}
}

func TestHandleExportNotes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input ExportInput
	}{
		{name: "unknown folder", input: ExportInput{Folder: "Nope"}},
		{name: "missing folder", input: ExportInput{}},
		{name: "bad collisions", input: ExportInput{Folder: "Work", Subfolder: "Meetings", Collisions: "rename"}},
		{name: "bad format", input: ExportInput{Folder: "Work", Subfolder: "Meetings", Format: "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			handler := handleExportNotes(newMockHost(), testDefaults(dir))
			_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("expected no files written, got %d", len(entries))
			}
		})
	}
}

// --- Server registration test ---

func TestNewServer_RegistersTools(t *testing.T) {
	ctx := context.Background()
	server := NewServer("test-version", newMockHost(), testDefaults(t.TempDir()))
	if server == nil {
		t.Fatal("NewServer returned nil")
	}

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close() //nolint:errcheck

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close() //nolint:errcheck

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	got := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		got = append(got, tool.Name)
	}
	sort.Strings(got)
	want := []string{"export_notes", "list_folders", "list_subfolders"}
	if len(got) != len(want) {
		t.Fatalf("tools = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tools = %v, want %v", got, want)
			break
		}
	}
}
