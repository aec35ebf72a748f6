package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets every notesexport variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvExportDir, EnvOsascript, EnvHTTPAddr, EnvDebug} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key) //nolint:errcheck
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "export_dir: /tmp/notes\ncollisions: suffix\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ExportDir != "/tmp/notes" {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, "/tmp/notes")
	}
	if cfg.Collisions != "suffix" {
		t.Errorf("Collisions = %q, want %q", cfg.Collisions, "suffix")
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q, want default %q", cfg.Format, DefaultFormat)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "export_dir: /tmp/from-file\nosascript: /usr/bin/osascript\n")
	t.Setenv(EnvExportDir, "/tmp/from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ExportDir != "/tmp/from-env" {
		t.Errorf("ExportDir = %q, want env value", cfg.ExportDir)
	}
	if cfg.Osascript != "/usr/bin/osascript" {
		t.Errorf("Osascript = %q, want file value", cfg.Osascript)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "exportdir: /tmp/typo\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %q, want parse error", err)
	}
}

func TestLoadEnvFiles_DoesNotOverrideExisting(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigHome, t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, ".env.local"), "NOTESEXPORT_EXPORT_DIR=/tmp/local\n")
	t.Setenv(EnvOsascript, "/opt/osascript")
	writeFile(t, filepath.Join(dir, ".env"), "NOTESEXPORT_EXPORT_DIR=/tmp/shared\nNOTESEXPORT_HTTP_ADDR=:9999\nNOTESEXPORT_OSASCRIPT=/from/file\n")

	if err := LoadEnvFiles(); err != nil {
		t.Fatalf("LoadEnvFiles() error = %v", err)
	}

	if got := os.Getenv(EnvExportDir); got != "/tmp/local" {
		t.Errorf("%s = %q, want .env.local to win", EnvExportDir, got)
	}
	if got := os.Getenv(EnvHTTPAddr); got != ":9999" {
		t.Errorf("%s = %q, want value from .env", EnvHTTPAddr, got)
	}
	if got := os.Getenv(EnvOsascript); got != "/opt/osascript" {
		t.Errorf("%s = %q, want environment to take precedence", EnvOsascript, got)
	}
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	t.Setenv(EnvConfigHome, t.TempDir())
	t.Chdir(t.TempDir())

	if err := LoadEnvFiles(); err != nil {
		t.Errorf("LoadEnvFiles() error = %v, want nil when no files exist", err)
	}
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"on", true},
		{"", false},
		{"0", false},
		{"no", false},
	}

	for _, tt := range tests {
		t.Setenv(EnvDebug, tt.value)
		if got := DebugEnabled(); got != tt.want {
			t.Errorf("DebugEnabled() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}
