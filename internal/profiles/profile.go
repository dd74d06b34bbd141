package profiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ruminaider/claude-switch/internal/paths"
)

// Ext is the extension every profile file carries.
const Ext = ".json"

// Base names for generated profiles.
const (
	NewProfileBase    = "新配置"
	ImportProfileBase = "Claude默认配置"
)

var (
	// ErrEmptyName is returned when a rename target is empty or only ".json".
	ErrEmptyName = errors.New("file name cannot be empty")
	// ErrInvalidName is returned for names with path separators or the reserved name.
	ErrInvalidName = errors.New("invalid file name")
	// ErrExists is returned when the target name is already taken.
	ErrExists = errors.New("file name already exists")
	// ErrReservedTarget is returned when activating the reserved file onto itself.
	ErrReservedTarget = errors.New("profile is already the active settings file")
)

// Store is a directory of JSON profiles plus one reserved active-settings file.
type Store struct {
	dir string
}

// NewStore returns the store rooted at <storeDir>/settings.
func NewStore(storeDir string) *Store {
	return &Store{dir: paths.ProfilesDir(storeDir)}
}

// Dir returns the directory holding the profile files.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of a profile file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// ReservedPath returns the path of the store's own active-settings file.
func (s *Store) ReservedPath() string {
	return s.Path(paths.ActiveSettingsName)
}

// Exists reports whether a file with the given name is present in the store.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// EnsureLayout creates the profile directory and seeds the reserved
// active-settings file with template when it is missing.
func (s *Store) EnsureLayout(template string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if _, err := os.Stat(s.ReservedPath()); os.IsNotExist(err) {
		if err := os.WriteFile(s.ReservedPath(), []byte(template), 0644); err != nil {
			return fmt.Errorf("creating default %s: %w", paths.ActiveSettingsName, err)
		}
	}
	return nil
}

// List returns profile file names sorted alphabetically. The reserved
// active-settings file is never listed. A missing directory lists as empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		name := e.Name()
		if name == paths.ActiveSettingsName || filepath.Ext(name) != Ext {
			continue
		}
		if !isRegular(filepath.Join(s.dir, name), e) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// isRegular follows symlinks so a linked profile lists like a plain file.
func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ListPreserving lists profiles keeping the order of previous for names that
// still exist. Newly discovered files are appended in alphabetical order.
func (s *Store) ListPreserving(previous []string) ([]string, error) {
	current, err := s.List()
	if err != nil {
		return nil, err
	}
	return MergeOrder(previous, current), nil
}

// MergeOrder orders current by its position in previous; names missing from
// previous keep their relative order at the end.
func MergeOrder(previous, current []string) []string {
	present := make(map[string]bool, len(current))
	for _, n := range current {
		present[n] = true
	}

	ordered := make([]string, 0, len(current))
	seen := make(map[string]bool, len(current))
	for _, n := range previous {
		if present[n] && !seen[n] {
			ordered = append(ordered, n)
			seen[n] = true
		}
	}
	for _, n := range current {
		if !seen[n] {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

// NextFreeName returns base.json, or base_N.json with the smallest N >= 1
// that does not exist yet.
func (s *Store) NextFreeName(base string) string {
	name := base + Ext
	for i := 1; s.Exists(name); i++ {
		name = fmt.Sprintf("%s_%d%s", base, i, Ext)
	}
	return name
}

// Create writes content under a non-colliding name derived from base and
// returns the chosen file name.
func (s *Store) Create(base, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating profile directory: %w", err)
	}
	name := s.NextFreeName(base)
	if err := os.WriteFile(s.Path(name), []byte(content), 0644); err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	return name, nil
}

// NormalizeName trims input and appends .json when absent.
func NormalizeName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if !strings.HasSuffix(name, Ext) {
		name += Ext
	}
	if name == Ext {
		return "", ErrEmptyName
	}
	if strings.ContainsAny(name, `/\`) || name == paths.ActiveSettingsName {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

// Rename moves oldName to the normalized form of input and returns the new
// file name. Naming rules are checked before the disk is touched.
func (s *Store) Rename(oldName, input string) (string, error) {
	newName, err := NormalizeName(input)
	if err != nil {
		return "", err
	}
	if s.Exists(newName) {
		return "", fmt.Errorf("%w: %s", ErrExists, newName)
	}
	if err := os.Rename(s.Path(oldName), s.Path(newName)); err != nil {
		return "", fmt.Errorf("renaming %s: %w", oldName, err)
	}
	return newName, nil
}

// Delete removes a profile file.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.Path(name)); err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

// Read returns the raw text of a profile.
func (s *Store) Read(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// Write overwrites a profile with content.
func (s *Store) Write(name, content string) error {
	if err := os.WriteFile(s.Path(name), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// ActivateLocal copies a profile into the store's reserved active-settings
// file. Claude Code's own settings are not touched.
func (s *Store) ActivateLocal(name string) error {
	if name == paths.ActiveSettingsName {
		return ErrReservedTarget
	}
	content, err := s.Read(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.ReservedPath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", paths.ActiveSettingsName, err)
	}
	return nil
}

// Info describes a profile file on disk.
type Info struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Stat returns size and modification time for a profile.
func (s *Store) Stat(name string) (Info, error) {
	fi, err := os.Stat(s.Path(name))
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", name, err)
	}
	return Info{Name: name, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}
