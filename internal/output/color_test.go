package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never disables on TTY", colorMode: "never", isTTY: true, want: false},
		{name: "never disables on non-TTY", colorMode: "never", isTTY: false, want: false},
		{name: "always enables on TTY", colorMode: "always", isTTY: true, want: true},
		{name: "always enables on non-TTY", colorMode: "always", isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: "auto", isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: "auto", isTTY: false, want: false},
		{name: "empty string defaults to auto", colorMode: "", isTTY: true, want: true},
		{name: "unknown value defaults to auto", colorMode: "bogus", isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveColorMode(tt.colorMode, tt.isTTY)
			if got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "", want: ColorAuto},
		{value: "auto", want: ColorAuto},
		{value: "always", want: ColorAlways},
		{value: "never", want: ColorNever},
		{value: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseColorMode(tt.value)
			if tt.wantErr {
				if GetExitCode(err) != ExitUserError {
					t.Errorf("ParseColorMode(%q) error = %v, want user error", tt.value, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, %v; want %q", tt.value, got, err, tt.want)
			}
		})
	}
}

func TestPrinterColors(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		jsonMode  bool
		wantColor bool
	}{
		{name: "never on a terminal", colorMode: ColorNever, isTTY: true},
		{name: "always off a terminal", colorMode: ColorAlways, isTTY: false, wantColor: true},
		{name: "json is never styled", colorMode: ColorAlways, isTTY: true, jsonMode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printer := NewPrinter(&bytes.Buffer{}, tt.jsonMode, ResolveColorMode(tt.colorMode, tt.isTTY))
			_, noColor := printer.styles.failed.GetForeground().(lipgloss.NoColor)
			if noColor == tt.wantColor {
				t.Errorf("failed style colored = %v, want %v", !noColor, tt.wantColor)
			}
		})
	}
}

func TestResolveColorMode_NeverNoANSI(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, ResolveColorMode(ColorNever, true)).WithStderr(&stderr)

	printer.ExportReport(ExportSummary{
		Source: "Home",
		Dir:    "/tmp/out",
		Lines:  []ExportLine{{Title: "Locked", Reason: "protected"}},
		Failed: 1,
	})
	printer.Error(NewUserError("folder not found: Work"))

	for name, out := range map[string]string{"stdout": stdout.String(), "stderr": stderr.String()} {
		if containsANSI(out) {
			t.Errorf("--color never should produce no ANSI codes on %s, got: %q", name, out)
		}
	}
}

// containsANSI checks if a string contains ANSI escape sequences.
func containsANSI(s string) bool {
	return strings.Contains(s, "\033[")
}
