package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/ruminaider/termpick/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestTermpickDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.TermpickDir(), home))
	assert.True(t, strings.HasSuffix(paths.TermpickDir(), ".termpick"))
}

func TestSettingsFile(t *testing.T) {
	assert.True(t, strings.HasPrefix(paths.SettingsFile(), paths.TermpickDir()))
	assert.True(t, strings.HasSuffix(paths.SettingsFile(), "settings.yaml"))
}

func TestPluginsDir(t *testing.T) {
	assert.True(t, strings.HasPrefix(paths.PluginsDir(), paths.TermpickDir()))
	assert.True(t, strings.HasSuffix(paths.PluginsDir(), "plugins"))
}

func TestWorkspaceSettingsFile(t *testing.T) {
	got := paths.WorkspaceSettingsFile("/work/dir")
	assert.True(t, strings.HasSuffix(got, ".termpick.yaml"))
}
