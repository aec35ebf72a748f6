package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_ExportReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.ExportReport(ExportSummary{
		Source: "Work/Meetings",
		Dir:    "/tmp/out",
		Lines: []ExportLine{
			{Exported: true, Filename: "2024-03-01_Idea.txt", Title: "Idea"},
			{Title: "Locked note", Reason: "note is password protected"},
		},
		Failed: 1,
	})

	want := "STATUS    NOTE\n" +
		"exported  2024-03-01_Idea.txt\n" +
		"failed    Locked note: note is password protected\n" +
		"\n" +
		"!! Exported 1 of 2 notes from Work/Meetings to /tmp/out\n"
	if got := stdout.String(); got != want {
		t.Errorf("report =\n%s\nwant\n%s", got, want)
	}
	if got := stderr.String(); got != "Warning: 1 note could not be exported; see the failed rows above\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestPrinter_ExportReportAllExported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.ExportReport(ExportSummary{
		Source: "Home",
		Dir:    "/tmp/out",
		Lines:  []ExportLine{{Exported: true, Filename: "a.txt"}, {Exported: true, Filename: "b.txt"}},
	})

	if !strings.Contains(stdout.String(), "ok Exported 2 of 2 notes from Home to /tmp/out") {
		t.Errorf("summary line missing, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("no warning expected, got %q", stderr.String())
	}
}

func TestPrinter_ExportReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).ExportReport(ExportSummary{Source: "Home", Dir: "/tmp/out"})
	if got := buf.String(); got != "No notes in Home.\n" {
		t.Errorf("empty report = %q", got)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 notes"},
		{1, "1 note"},
		{2, "2 notes"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "note"); got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCheckStatusIcon(t *testing.T) {
	tests := []struct {
		status CheckStatus
		want   string
	}{
		{CheckPass, "ok"},
		{CheckWarn, "!!"},
		{CheckFail, "XX"},
		{CheckStatus("other"), "??"},
	}
	for _, tt := range tests {
		if got := tt.status.Icon(); got != tt.want {
			t.Errorf("%q.Icon() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestPrinter_Checks(t *testing.T) {
	checks := []Check{
		{Name: "Config", Status: CheckPass, Message: "no config file, using defaults"},
		{Name: "Notes app", Status: CheckFail, Message: "not authorized", Hint: "Allow automation"},
		{Name: "Export dir", Status: CheckWarn, Message: "/tmp/out will be created on first export"},
	}

	if got, want := Tally(checks), (CheckTally{Passed: 1, Warnings: 1, Failed: 1}); got != want {
		t.Errorf("Tally() = %+v, want %+v", got, want)
	}

	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Checks("notesexport doctor dev", checks)
	out := buf.String()
	for _, want := range []string{
		"notesexport doctor dev\n",
		"ok  Config      no config file, using defaults\n",
		"XX  Notes app   not authorized\n",
		"    -> Allow automation\n",
		"!!  Export dir  /tmp/out will be created on first export\n",
		"ok 1 passed  !! 1 warnings  XX 1 failed\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}
