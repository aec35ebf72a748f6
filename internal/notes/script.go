package notes

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

//go:embed scripts/*.js.tmpl
var scriptFS embed.FS

var scripts = template.Must(
	template.New("scripts").
		Funcs(template.FuncMap{"literal": literal}).
		ParseFS(scriptFS, "scripts/*.js.tmpl"),
)

// literal renders s as a double-quoted JavaScript string literal. Quotes,
// backslashes and line terminators are escaped, so a caller supplied name
// can only ever be a string value inside the generated script.
func literal(s string) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type subfoldersParams struct {
	Parent string
}

type notesParams struct {
	Folder       string
	Subfolder    string
	BodyProperty string
}

// render executes the named embedded script template.
func render(name string, data any) (string, error) {
	var builder strings.Builder
	if err := scripts.ExecuteTemplate(&builder, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return builder.String(), nil
}

// FoldersScript returns the script listing top-level folder names.
func FoldersScript() (string, error) {
	return render("folders.js.tmpl", nil)
}

// SubfoldersScript returns the script listing the direct subfolders of parent.
func SubfoldersScript(parent string) (string, error) {
	return render("subfolders.js.tmpl", subfoldersParams{Parent: parent})
}

// NotesScript returns the script that resolves folder (and subfolder, when
// non-empty) and reads every note in it.
func NotesScript(folder, subfolder string, format BodyFormat) (string, error) {
	return render("notes.js.tmpl", notesParams{
		Folder:       folder,
		Subfolder:    subfolder,
		BodyProperty: format.property(),
	})
}
