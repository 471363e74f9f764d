package config

import (
	"os"
	"path/filepath"
)

// configDirOverride and dataDirOverride are set by tests to redirect
// ConfigDir and DataDir.
var (
	configDirOverride string
	dataDirOverride   string
)

// ConfigDir returns the config directory for vshell.
func ConfigDir() string {
	if configDirOverride != "" {
		return configDirOverride
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vshell")
}

// DataDir returns ~/.local/share/vshell, creating it if needed.
func DataDir() (string, error) {
	dir := dataDirOverride
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".local", "share", "vshell")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
