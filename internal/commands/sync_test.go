package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/claude-switch/internal/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClaudeSettings(t *testing.T, env testEnv, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(env.claudeDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(env.claudeDir, "settings.json"), []byte(content), 0644))
}

func TestSync_MatchMarksDefault(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "a.json", `{"x":1}`)
	env.writeProfile(t, "b.json", "{\n  \"env\": {\"K\": \"v\"},\n  \"model\": \"opus\"\n}")
	writeClaudeSettings(t, env, `{"model":"opus","env":{"K":"v"}}`)
	s := env.open(t)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, commands.SyncMatched, res.Outcome)
	assert.Equal(t, "b.json", res.Profile)
	assert.Equal(t, "b.json", env.savedSettings(t).DefaultConfigFile)

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names, "no file created on match")
}

func TestSync_MatchIgnoresNumberSpelling(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "a.json", `{"ratio": 1.50, "n": 1e2}`)
	writeClaudeSettings(t, env, `{"n":100,"ratio":1.5}`)
	s := env.open(t)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, commands.SyncMatched, res.Outcome)
	assert.Equal(t, "a.json", res.Profile)
}

func TestSync_NoMatchImports(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "a.json", `{"x":1}`)
	external := `{"model": "sonnet"}`
	writeClaudeSettings(t, env, external)
	s := env.open(t)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, commands.SyncImported, res.Outcome)
	assert.Equal(t, "Claude默认配置.json", res.Profile)
	assert.Equal(t, external, env.readProfile(t, res.Profile), "content is imported verbatim")
	assert.Equal(t, res.Profile, env.savedSettings(t).DefaultConfigFile)

	names, err := s.List()
	require.NoError(t, err)
	assert.Len(t, names, 2)

	again, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, commands.SyncMatched, again.Outcome, "second run finds the import")
}

func TestSync_ImportAvoidsCollision(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "Claude默认配置.json", `{"old":true}`)
	writeClaudeSettings(t, env, `{"new":true}`)
	s := env.open(t)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, "Claude默认配置_1.json", res.Profile)
	assert.Equal(t, `{"old":true}`, env.readProfile(t, "Claude默认配置.json"))
}

func TestSync_MissingOrInvalidIsSilent(t *testing.T) {
	env := setupEnv(t, "keep.json")
	s := env.open(t)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.Equal(t, commands.SyncSkipped, res.Outcome)

	writeClaudeSettings(t, env, "{broken")
	res, err = s.Sync()
	require.NoError(t, err)
	assert.Equal(t, commands.SyncSkipped, res.Outcome)
	assert.Equal(t, "keep.json", env.savedSettings(t).DefaultConfigFile)

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
