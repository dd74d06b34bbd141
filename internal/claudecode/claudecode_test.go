package claudecode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/claude-switch/internal/claudecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSettings(t *testing.T) {
	dir := t.TempDir()
	data := `{"env":{"ANTHROPIC_BASE_URL":"https://api.anthropic.com"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(data), 0644))

	got, err := claudecode.ReadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.True(t, claudecode.SettingsExists(dir))
}

func TestReadSettings_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := claudecode.ReadSettings(dir)
	assert.Error(t, err)
	assert.False(t, claudecode.SettingsExists(dir))
}

func TestWriteSettings_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".claude")
	assert.False(t, claudecode.DirExists(dir))

	require.NoError(t, claudecode.WriteSettings(dir, `{"a": 1}`))
	assert.True(t, claudecode.DirExists(dir))

	got, err := claudecode.ReadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestWriteSettings_Overwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, claudecode.WriteSettings(dir, "old"))
	require.NoError(t, claudecode.WriteSettings(dir, "new"))

	got, err := claudecode.ReadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}
