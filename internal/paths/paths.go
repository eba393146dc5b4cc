package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// TermpickDir returns ~/.termpick.
func TermpickDir() string {
	return filepath.Join(home(), ".termpick")
}

// SettingsFile returns ~/.termpick/settings.yaml.
func SettingsFile() string {
	return filepath.Join(TermpickDir(), "settings.yaml")
}

// PluginsDir returns ~/.termpick/plugins.
func PluginsDir() string {
	return filepath.Join(TermpickDir(), "plugins")
}

// WorkspaceSettingsFile returns the per-directory settings overlay
// (.termpick.yaml) for the given working directory.
func WorkspaceSettingsFile(dir string) string {
	return filepath.Join(dir, ".termpick.yaml")
}
