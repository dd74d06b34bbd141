package profiles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/claude-switch/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates a store with the given profile files.
func setupStore(t *testing.T, files map[string]string) *profiles.Store {
	t.Helper()
	s := profiles.NewStore(t.TempDir())
	require.NoError(t, os.MkdirAll(s.Dir(), 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(s.Path(name), []byte(content), 0644))
	}
	return s
}

func TestList_ExcludesReservedAndSorts(t *testing.T) {
	s := setupStore(t, map[string]string{
		"b.json":        "{}",
		"a.json":        "{}",
		"settings.json": "{}",
		"notes.txt":     "x",
	})
	require.NoError(t, os.Mkdir(s.Path("dir.json"), 0755))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names)
}

func TestList_MissingDir(t *testing.T) {
	s := profiles.NewStore(filepath.Join(t.TempDir(), "nope"))
	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListPreserving_AppendsNewFiles(t *testing.T) {
	s := setupStore(t, map[string]string{"a.json": "{}", "c.json": "{}", "b.json": "{}"})

	names, err := s.ListPreserving([]string{"c.json", "gone.json", "a.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.json", "a.json", "b.json"}, names)
}

func TestMergeOrder_EmptyPrevious(t *testing.T) {
	assert.Equal(t, []string{"a.json", "b.json"}, profiles.MergeOrder(nil, []string{"a.json", "b.json"}))
}

func TestCreate_AvoidsCollision(t *testing.T) {
	s := setupStore(t, map[string]string{"新配置.json": "{}"})

	name, err := s.Create(profiles.NewProfileBase, profiles.DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, "新配置_1.json", name)

	original, err := s.Read("新配置.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", original, "existing file must not be overwritten")

	created, err := s.Read(name)
	require.NoError(t, err)
	assert.Equal(t, profiles.DefaultTemplate, created)
}

func TestNextFreeName(t *testing.T) {
	s := setupStore(t, map[string]string{"x.json": "{}", "x_1.json": "{}"})
	assert.Equal(t, "x_2.json", s.NextFreeName("x"))
	assert.Equal(t, "y.json", s.NextFreeName("y"))
}

func TestNormalizeName(t *testing.T) {
	name, err := profiles.NormalizeName("  work ")
	require.NoError(t, err)
	assert.Equal(t, "work.json", name)

	name, err = profiles.NormalizeName("work.json")
	require.NoError(t, err)
	assert.Equal(t, "work.json", name)

	_, err = profiles.NormalizeName("")
	assert.ErrorIs(t, err, profiles.ErrEmptyName)
	_, err = profiles.NormalizeName(".json")
	assert.ErrorIs(t, err, profiles.ErrEmptyName)
	_, err = profiles.NormalizeName("../escape")
	assert.ErrorIs(t, err, profiles.ErrInvalidName)
	_, err = profiles.NormalizeName("settings")
	assert.ErrorIs(t, err, profiles.ErrInvalidName)
}

func TestRename(t *testing.T) {
	s := setupStore(t, map[string]string{"a.json": `{"a":1}`})

	newName, err := s.Rename("a.json", "b")
	require.NoError(t, err)
	assert.Equal(t, "b.json", newName)
	assert.False(t, s.Exists("a.json"))

	content, err := s.Read("b.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, content)
}

func TestRename_Collision(t *testing.T) {
	s := setupStore(t, map[string]string{"a.json": "1", "b.json": "2"})

	_, err := s.Rename("a.json", "b.json")
	assert.ErrorIs(t, err, profiles.ErrExists)
	assert.True(t, s.Exists("a.json"))
}

func TestRename_MissingSource(t *testing.T) {
	s := setupStore(t, nil)
	_, err := s.Rename("ghost.json", "real")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := setupStore(t, map[string]string{"a.json": "{}"})
	require.NoError(t, s.Delete("a.json"))
	assert.False(t, s.Exists("a.json"))
	assert.Error(t, s.Delete("a.json"))
}

func TestEnsureLayout_SeedsReservedFile(t *testing.T) {
	s := profiles.NewStore(t.TempDir())
	require.NoError(t, s.EnsureLayout(profiles.DefaultTemplate))

	data, err := os.ReadFile(s.ReservedPath())
	require.NoError(t, err)
	assert.Equal(t, profiles.DefaultTemplate, string(data))

	require.NoError(t, os.WriteFile(s.ReservedPath(), []byte("{}"), 0644))
	require.NoError(t, s.EnsureLayout(profiles.DefaultTemplate))
	data, err = os.ReadFile(s.ReservedPath())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data), "existing reserved file is kept")
}

func TestActivateLocal(t *testing.T) {
	s := setupStore(t, map[string]string{"a.json": `{"a":1}`, "settings.json": "{}"})

	require.NoError(t, s.ActivateLocal("a.json"))
	data, err := os.ReadFile(s.ReservedPath())
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	assert.ErrorIs(t, s.ActivateLocal("settings.json"), profiles.ErrReservedTarget)
}

func TestStat(t *testing.T) {
	s := setupStore(t, map[string]string{"a.json": "12345"})
	info, err := s.Stat("a.json")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	assert.False(t, info.ModTime.IsZero())
}
