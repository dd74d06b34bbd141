package claudecode

import (
	"fmt"
	"os"

	"github.com/ruminaider/claude-switch/internal/paths"
)

// DefaultClaudeDir returns the default ~/.claude path.
func DefaultClaudeDir() string {
	return paths.ClaudeDir()
}

// DirExists returns true if the Claude Code directory exists.
func DirExists(claudeDir string) bool {
	info, err := os.Stat(claudeDir)
	return err == nil && info.IsDir()
}

// SettingsExists reports whether <claudeDir>/settings.json is present.
func SettingsExists(claudeDir string) bool {
	_, err := os.Stat(paths.ClaudeSettingsFile(claudeDir))
	return err == nil
}

// ReadSettings returns the raw text of settings.json.
func ReadSettings(claudeDir string) (string, error) {
	data, err := os.ReadFile(paths.ClaudeSettingsFile(claudeDir))
	if err != nil {
		return "", fmt.Errorf("reading Claude settings: %w", err)
	}
	return string(data), nil
}

// WriteSettings replaces settings.json with content, creating the Claude
// directory when needed.
func WriteSettings(claudeDir, content string) error {
	if err := os.MkdirAll(claudeDir, 0755); err != nil {
		return fmt.Errorf("creating Claude directory: %w", err)
	}
	if err := os.WriteFile(paths.ClaudeSettingsFile(claudeDir), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing Claude settings: %w", err)
	}
	return nil
}
