// Package config resolves notesexport settings from flags, the
// environment, env files and an optional YAML config file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the config directory and the env variable prefix.
const AppName = "notesexport"

// Dir returns the notesexport configuration directory.
//
// Resolution:
//   - $NOTESEXPORT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/notesexport if set (respects XDG on any platform)
//   - %AppData%/notesexport on Windows
//   - ~/.config/notesexport on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path of the YAML config file, or "" when no config
// directory can be determined.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
