package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results either for a person at a terminal or as
// JSON for scripts and agents. Human errors and warnings go to a separate
// writer (stderr in the CLI); in JSON mode everything stays on the main
// writer so the stream is one document per result.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	styles palette
}

// palette holds the few styles the notes output uses.
type palette struct {
	ok      lipgloss.Style
	failed  lipgloss.Style
	warn    lipgloss.Style
	heading lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	label   lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{plain, plain, plain, plain, plain, plain, plain}
	}
	return palette{
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		header:  lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Faint(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// NewPrinter creates a Printer writing to w. isTTY enables colors in
// human mode; JSON output is never styled.
func NewPrinter(w io.Writer, jsonMode bool, isTTY bool) *Printer {
	return &Printer{
		w:      w,
		errW:   w,
		json:   jsonMode,
		styles: newPalette(isTTY && !jsonMode),
	}
}

// WithStderr routes human errors and warnings to w. Returns the printer
// for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer emits JSON.
func (p *Printer) IsJSON() bool {
	return p.json
}

// JSON writes v as one indented JSON document.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// errorBody is the JSON shape of every reported error. The HTTP API uses
// the same fields.
type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Error reports err with the exit code the process will end with:
// {"error": "...", "code": N} on the main writer in JSON mode, or
// "Error: ..." on the error writer otherwise.
func (p *Printer) Error(err error) {
	exitErr := FromError(err)
	if exitErr == nil {
		return
	}
	if p.json {
		mustWrite(0, json.NewEncoder(p.w).Encode(errorBody{Error: exitErr.Message, Code: exitErr.Code}))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s %s\n", p.styles.failed.Render("Error:"), exitErr.Message))
}

// Warn reports a non-fatal problem. Ignored in JSON mode, where the result
// document already carries the details.
func (p *Printer) Warn(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s %s\n", p.styles.warn.Render("Warning:"), fmt.Sprintf(format, args...)))
}

// Names prints folder or subfolder names one per line, in the order given.
// An empty list prints empty, muted, so "none" differs from no output.
func (p *Printer) Names(names []string, empty string) {
	if len(names) == 0 {
		mustWrite(fmt.Fprintln(p.w, p.styles.muted.Render(empty)))
		return
	}
	for _, name := range names {
		mustWrite(fmt.Fprintln(p.w, name))
	}
}

// Listening announces a running server at url.
func (p *Printer) Listening(url, exportDir string) error {
	if p.json {
		return p.JSON(map[string]string{"listening": url, "export_dir": exportDir})
	}
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.ok.Render("Serving notesexport API on"), url))
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.label.Render("Export dir:"), exportDir))
	return nil
}

// row writes cells padded to widths, each padded cell passed through style
// so that colors never shift the columns.
func (p *Printer) row(widths []int, cells []string, styles ...lipgloss.Style) {
	var line strings.Builder
	for i, cell := range cells {
		if i > 0 {
			line.WriteString("  ")
		}
		if i < len(cells)-1 {
			cell += strings.Repeat(" ", max(widths[i]-len(cell), 0))
		}
		if i < len(styles) {
			cell = styles[i].Render(cell)
		}
		line.WriteString(cell)
	}
	mustWrite(fmt.Fprintln(p.w, line.String()))
}

// widths returns the widest cell of each column.
func widths(rows [][]string) []int {
	var out []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(out) {
				out = append(out, 0)
			}
			out[i] = max(out[i], len(cell))
		}
	}
	return out
}

// mustWrite panics if writing to the terminal or a buffer fails; there is
// nowhere left to report it.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
