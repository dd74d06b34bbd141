package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/claude-switch/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestAppDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.AppDir(), home))
	assert.True(t, strings.HasSuffix(paths.AppDir(), ".claude-code-switcher"))
}

func TestClaudeDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ClaudeDir(), home))
	assert.True(t, strings.HasSuffix(paths.ClaudeDir(), ".claude"))
}

func TestAppSettingsFile(t *testing.T) {
	assert.Equal(t, filepath.Join(paths.AppDir(), "app_settings.json"), paths.AppSettingsFile())
}

func TestTemplateAndLogFiles(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.TemplateFile(), "template.yaml"))
	assert.True(t, strings.HasSuffix(paths.LogFile(), "claude-switch.log"))
}

func TestDefaultStoreDir(t *testing.T) {
	assert.Equal(t, paths.AppDir(), paths.DefaultStoreDir())
}

func TestProfilesDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/store", "settings"), paths.ProfilesDir("/store"))
}

func TestClaudeSettingsFile(t *testing.T) {
	assert.Equal(t, filepath.Join("/x", ".claude", "settings.json"), paths.ClaudeSettingsFile(filepath.Join("/x", ".claude")))
}
