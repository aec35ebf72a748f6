package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by notesexport.
const (
	EnvConfigHome = "NOTESEXPORT_CONFIG_HOME"
	EnvExportDir  = "NOTESEXPORT_EXPORT_DIR"
	EnvOsascript  = "NOTESEXPORT_OSASCRIPT"
	EnvHTTPAddr   = "NOTESEXPORT_HTTP_ADDR"
	EnvDebug      = "NOTESEXPORT_DEBUG"
)

// Defaults applied before the config file and the environment.
const (
	DefaultExportDir  = "~/NotesExport"
	DefaultCollisions = "overwrite"
	DefaultFormat     = "plaintext"
	DefaultOsascript  = "osascript"
	DefaultHTTPAddr   = "127.0.0.1:8765"
)

// Config holds the settings every command starts from. Command-line flags
// override these values.
type Config struct {
	ExportDir  string `yaml:"export_dir"`
	Collisions string `yaml:"collisions"`
	Format     string `yaml:"format"`
	Osascript  string `yaml:"osascript"`
	HTTPAddr   string `yaml:"http_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ExportDir:  DefaultExportDir,
		Collisions: DefaultCollisions,
		Format:     DefaultFormat,
		Osascript:  DefaultOsascript,
		HTTPAddr:   DefaultHTTPAddr,
	}
}

// Load returns the defaults overlaid with the YAML file at path and then
// with the environment. A missing file is not an error; an empty path
// skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := decode(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// decode overlays YAML data onto cfg. Unknown keys are rejected so a
// misspelled setting does not silently fall back to its default.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file Config
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	overlay(&cfg.ExportDir, file.ExportDir)
	overlay(&cfg.Collisions, file.Collisions)
	overlay(&cfg.Format, file.Format)
	overlay(&cfg.Osascript, file.Osascript)
	overlay(&cfg.HTTPAddr, file.HTTPAddr)
	return nil
}

func (c *Config) applyEnv() {
	overlay(&c.ExportDir, os.Getenv(EnvExportDir))
	overlay(&c.Osascript, os.Getenv(EnvOsascript))
	overlay(&c.HTTPAddr, os.Getenv(EnvHTTPAddr))
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// LoadEnvFiles loads env files in priority order. The first file that sets
// a variable wins; variables already present in the environment are never
// overridden.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env (global fallback)
func LoadEnvFiles() error {
	paths := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
	}
	return nil
}

// DebugEnabled reports whether NOTESEXPORT_DEBUG asks for debug logging.
func DebugEnabled() bool {
	switch os.Getenv(EnvDebug) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
