// Package pathutil resolves user-facing paths: home expansion, environment
// variables and the XDG base directories used for config and logs.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces a leading "~/" with the user's home directory and expands
// $VAR and ${VAR} references. The path is returned unchanged when the home
// directory cannot be resolved.
func Expand(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		path = filepath.Join(home, path[2:])
	}
	if strings.Contains(path, "$") {
		path = os.ExpandEnv(path)
	}
	return path
}

// ConfigDir returns $XDG_CONFIG_HOME/app, falling back to ~/.config/app.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", ".config", app)
}

// StateDir returns $XDG_STATE_HOME/app, falling back to ~/.local/state/app.
func StateDir(app string) string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"), app)
}

func xdgDir(envKey, fallback, app string) string {
	base := os.Getenv(envKey)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, app)
}
