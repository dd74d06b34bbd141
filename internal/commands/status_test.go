package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_InSync(t *testing.T) {
	env := setupEnv(t, "a.json")
	env.writeProfile(t, "a.json", `{"a":1}`)
	writeClaudeSettings(t, env, "{\n  \"a\": 1\n}")
	s := env.open(t)

	st, err := s.Status()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Profiles)
	assert.Equal(t, "a.json", st.Default)
	assert.True(t, st.ClaudeSettings)
	assert.True(t, st.InSync)
	assert.False(t, st.DefaultMissing)
}

func TestStatus_DanglingDefault(t *testing.T) {
	env := setupEnv(t, "gone.json")
	s := env.open(t)

	st, err := s.Status()
	require.NoError(t, err)
	assert.True(t, st.DefaultMissing)
	assert.False(t, st.InSync)
	assert.False(t, st.ClaudeSettings)
}

func TestDiff(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "a.json", "{\n  \"model\": \"opus\"\n}")
	writeClaudeSettings(t, env, "{\n  \"model\": \"sonnet\"\n}")
	s := env.open(t)

	out, err := s.Diff("a.json")
	require.NoError(t, err)
	assert.Contains(t, out, `-  "model": "sonnet"`)
	assert.Contains(t, out, `+  "model": "opus"`)
}

func TestDiff_IdenticalIsEmpty(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "a.json", `{"a":1}`)
	writeClaudeSettings(t, env, `{"a":1}`)
	s := env.open(t)

	out, err := s.Diff("a.json")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiff_NoClaudeSettings(t *testing.T) {
	env := setupEnv(t, "")
	env.writeProfile(t, "a.json", `{"a":1}`)
	s := env.open(t)

	out, err := s.Diff("a.json")
	require.NoError(t, err)
	assert.Contains(t, out, `+{"a":1}`)
}

func TestDiff_MissingProfile(t *testing.T) {
	env := setupEnv(t, "")
	s := env.open(t)
	_, err := s.Diff("ghost.json")
	assert.Error(t, err)
}
