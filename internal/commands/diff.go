package commands

import (
	"errors"
	"io/fs"

	"github.com/aymanbagabas/go-udiff"
	"github.com/ruminaider/claude-switch/internal/claudecode"
	"github.com/ruminaider/claude-switch/internal/paths"
)

// Diff returns a unified diff from Claude Code's current settings.json to
// the given profile. A missing settings.json diffs as empty. An empty string
// means the texts are identical.
func (s *Switcher) Diff(name string) (string, error) {
	profile, err := s.store.Read(name)
	if err != nil {
		return "", err
	}

	external, err := claudecode.ReadSettings(s.claudeDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	return udiff.Unified(paths.ClaudeSettingsFile(s.claudeDir), s.store.Path(name), withNewline(external), withNewline(profile)), nil
}

// withNewline keeps udiff from flagging a missing trailing newline on files
// written without one.
func withNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
