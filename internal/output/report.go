package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ExportLine is one processed note in an export summary.
type ExportLine struct {
	Exported bool
	Filename string
	Title    string
	Reason   string
}

// ExportSummary is the human view of an export run.
type ExportSummary struct {
	// Source is "Folder" or "Folder/Subfolder".
	Source string
	Dir    string
	Lines  []ExportLine
	Failed int
}

// ExportReport prints one row per note, then a summary line. Failures also
// raise a warning on the error writer.
//
//	STATUS    NOTE
//	exported  2024-03-01_Grocery-List.txt
//	failed    Locked note: note is password protected
//
//	!! Exported 1 of 2 notes from Home to /Users/me/NotesExport
func (p *Printer) ExportReport(s ExportSummary) {
	if len(s.Lines) == 0 {
		mustWrite(fmt.Fprintln(p.w, p.styles.muted.Render("No notes in "+s.Source+".")))
		return
	}

	rows := [][]string{{"STATUS", "NOTE"}}
	for _, line := range s.Lines {
		if line.Exported {
			rows = append(rows, []string{"exported", line.Filename})
		} else {
			rows = append(rows, []string{"failed", line.Title + ": " + line.Reason})
		}
	}
	cols := widths(rows)
	p.row(cols, rows[0], p.styles.header, p.styles.header)
	for i, line := range s.Lines {
		status := p.styles.ok
		if !line.Exported {
			status = p.styles.failed
		}
		p.row(cols, rows[i+1], status)
	}

	exported := len(s.Lines) - s.Failed
	marker, style := "ok", p.styles.ok
	if s.Failed > 0 {
		marker, style = "!!", p.styles.warn
	}
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintf(p.w, "%s Exported %d of %d notes from %s to %s\n",
		style.Render(marker), exported, len(s.Lines), s.Source, s.Dir))

	if s.Failed > 0 {
		p.Warn("%s could not be exported; see the failed rows above", Plural(s.Failed, "note"))
	}
}

// Plural formats a count with a noun: "1 note", "2 notes".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// CheckStatus is the outcome of one doctor check.
type CheckStatus string

const (
	CheckPass CheckStatus = "pass"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// Icon returns the short marker printed before a check.
func (s CheckStatus) Icon() string {
	switch s {
	case CheckPass:
		return "ok"
	case CheckWarn:
		return "!!"
	case CheckFail:
		return "XX"
	default:
		return "??"
	}
}

// Check is one health check result.
type Check struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// CheckTally counts checks by status.
type CheckTally struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// Tally counts checks by status.
func Tally(checks []Check) CheckTally {
	var tally CheckTally
	for _, check := range checks {
		switch check.Status {
		case CheckPass:
			tally.Passed++
		case CheckWarn:
			tally.Warnings++
		case CheckFail:
			tally.Failed++
		}
	}
	return tally
}

// Checks prints a titled list of checks with hints and a tally line.
func (p *Printer) Checks(title string, checks []Check) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.heading.Render(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.muted.Render(strings.Repeat("─", len(title)))))

	rows := make([][]string, 0, len(checks))
	for _, check := range checks {
		rows = append(rows, []string{check.Status.Icon(), check.Name, check.Message})
	}
	cols := widths(rows)
	for i, check := range checks {
		p.row(cols, rows[i], p.statusStyle(check.Status))
		if check.Hint != "" {
			mustWrite(fmt.Fprintf(p.w, "    %s %s\n", p.styles.muted.Render("->"), check.Hint))
		}
	}

	tally := Tally(checks)
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintf(p.w, "%s %d passed  %s %d warnings  %s %d failed\n",
		p.statusStyle(CheckPass).Render(CheckPass.Icon()), tally.Passed,
		p.statusStyle(CheckWarn).Render(CheckWarn.Icon()), tally.Warnings,
		p.statusStyle(CheckFail).Render(CheckFail.Icon()), tally.Failed,
	))
}

func (p *Printer) statusStyle(status CheckStatus) lipgloss.Style {
	switch status {
	case CheckPass:
		return p.styles.ok
	case CheckWarn:
		return p.styles.warn
	default:
		return p.styles.failed
	}
}
