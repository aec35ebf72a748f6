package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gorewood/notesexport/internal/logging"
	"github.com/gorewood/notesexport/internal/notes"
	"github.com/gorewood/notesexport/internal/output"
)

// Source reads the notes of a folder. *notes.Client implements it.
type Source interface {
	ReadNotes(ctx context.Context, folder, subfolder string, format notes.BodyFormat) ([]notes.Note, error)
}

// Target names what to export and where.
type Target struct {
	Folder    string `json:"folder"`
	Subfolder string `json:"subfolder,omitempty"`
	Dir       string `json:"dir"`
}

// Options tune an Exporter. The zero value overwrites on collision,
// exports plain text and formats dates in local time.
type Options struct {
	Collisions CollisionPolicy
	BodyFormat notes.BodyFormat
	Location   *time.Location
}

// Status is the outcome of one note.
type Status string

const (
	StatusExported Status = "exported"
	StatusFailed   Status = "failed"
)

// Result records what happened to one note: Exported(Filename) or
// Failed(Title, Reason).
type Result struct {
	Status   Status `json:"status"`
	Filename string `json:"filename,omitempty"`
	Title    string `json:"title"`
	Reason   string `json:"reason,omitempty"`
}

// Report is the outcome of one export run.
type Report struct {
	RunID     string   `json:"run_id"`
	Folder    string   `json:"folder"`
	Subfolder string   `json:"subfolder,omitempty"`
	Dir       string   `json:"dir"`
	Results   []Result `json:"results"`
	Exported  int      `json:"exported"`
	Failed    int      `json:"failed"`
}

// Exporter writes the notes of a folder to plain-text files. It keeps no
// state between runs.
type Exporter struct {
	source Source
	opts   Options
}

// New creates an Exporter reading notes from source.
func New(source Source, opts Options) *Exporter {
	if opts.Collisions == "" {
		opts.Collisions = CollisionOverwrite
	}
	if opts.BodyFormat == "" {
		opts.BodyFormat = notes.BodyPlaintext
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Exporter{source: source, opts: opts}
}

// Export resolves the destination directory (creating it if needed), reads
// every note in the target folder and writes one file per note.
//
// A missing folder or subfolder, or a bridge failure, fails the whole call
// with a single error. A note that cannot be read or written becomes a
// failed Result and does not stop the remaining notes. The host's notes
// are never modified.
func (e *Exporter) Export(ctx context.Context, target Target) (*Report, error) {
	if strings.TrimSpace(target.Folder) == "" {
		return nil, output.NewUserError("a folder is required")
	}

	dir, err := PrepareDir(target.Dir)
	if err != nil {
		return nil, err
	}

	list, err := e.source.ReadNotes(ctx, target.Folder, target.Subfolder, e.opts.BodyFormat)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Folder:    target.Folder,
		Subfolder: target.Subfolder,
		Dir:       dir,
		Results:   make([]Result, 0, len(list)),
	}

	logger := logging.FromContext(ctx).With().Str("run_id", report.RunID).Logger()
	names := newNamer(e.opts.Collisions)
	for _, note := range list {
		result := e.exportNote(dir, note, names)
		if result.Status == StatusExported {
			report.Exported++
			logger.Debug().Str("file", result.Filename).Msg("exported note")
		} else {
			report.Failed++
			logger.Debug().Str("title", result.Title).Str("reason", result.Reason).Msg("note not exported")
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

// exportNote writes one note. Every failure is captured in the Result.
func (e *Exporter) exportNote(dir string, note notes.Note, names *namer) Result {
	if note.Failed() {
		return Result{Status: StatusFailed, Title: note.Title, Reason: note.ReadError}
	}

	filename := names.next(Filename(note.Title, note.Created, e.opts.Location))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(note.Body), 0o644); err != nil { //nolint:gosec // exported notes are meant to be readable
		return Result{Status: StatusFailed, Title: note.Title, Reason: writeReason(err)}
	}

	return Result{Status: StatusExported, Filename: filename, Title: note.Title}
}

func writeReason(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("writing %s: %v", filepath.Base(pathErr.Path), pathErr.Err)
	}
	return err.Error()
}

// PrepareDir expands a leading "~", makes dir absolute and creates it if it
// does not exist. The parent directory must already exist so that a typo
// does not silently create a deep tree.
func PrepareDir(dir string) (string, error) {
	abs, err := ResolveDir(dir)
	if err != nil {
		return "", err
	}

	parent := filepath.Dir(abs)
	if info, statErr := os.Stat(parent); statErr != nil || !info.IsDir() {
		return "", output.NewUserError(fmt.Sprintf("parent directory of the export path does not exist: %s", parent))
	}

	if err := os.MkdirAll(abs, 0o755); err != nil { //nolint:gosec // export dir is shared with the user
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("failed to create export directory: %v", err), err)
	}
	return abs, nil
}

// ResolveDir expands a leading "~" and makes dir absolute without touching
// the filesystem.
func ResolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", output.NewUserError("an export directory is required")
	}

	expanded, err := expandHome(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", output.NewUserErrorWithCause(fmt.Sprintf("invalid export directory %q", dir), err)
	}
	return abs, nil
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot determine home directory", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Err returns a partial-export error when any note failed, nil otherwise.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return output.NewPartialError(r.Failed, len(r.Results))
}

// Summary converts the report for output.Printer.ExportReport.
func (r *Report) Summary() output.ExportSummary {
	source := r.Folder
	if r.Subfolder != "" {
		source += "/" + r.Subfolder
	}

	lines := make([]output.ExportLine, 0, len(r.Results))
	for _, result := range r.Results {
		lines = append(lines, output.ExportLine{
			Exported: result.Status == StatusExported,
			Filename: result.Filename,
			Title:    result.Title,
			Reason:   result.Reason,
		})
	}
	return output.ExportSummary{Source: source, Dir: r.Dir, Lines: lines, Failed: r.Failed}
}
