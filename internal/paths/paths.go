package paths

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the application directory under the user's home.
	AppDirName = ".claude-code-switcher"
	// AppSettingsName is the AppSettings file inside the app directory.
	AppSettingsName = "app_settings.json"
	// ProfilesSubdir holds the profile files inside a store directory.
	ProfilesSubdir = "settings"
	// ActiveSettingsName is the reserved file name excluded from profile listings.
	// Claude Code reads a file with the same name from ~/.claude.
	ActiveSettingsName = "settings.json"
	// ClaudeDirName is Claude Code's own configuration directory.
	ClaudeDirName = ".claude"
	// TemplateName is the optional new-profile template override.
	TemplateName = "template.yaml"
	// LogName is the log file written while the TUI owns the terminal.
	LogName = "claude-switch.log"
)

func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

// AppDir returns ~/.claude-code-switcher, or a relative path when the home
// directory cannot be resolved.
func AppDir() string {
	return filepath.Join(home(), AppDirName)
}

// AppSettingsFile returns ~/.claude-code-switcher/app_settings.json.
func AppSettingsFile() string {
	return filepath.Join(AppDir(), AppSettingsName)
}

// TemplateFile returns ~/.claude-code-switcher/template.yaml.
func TemplateFile() string {
	return filepath.Join(AppDir(), TemplateName)
}

// LogFile returns ~/.claude-code-switcher/claude-switch.log.
func LogFile() string {
	return filepath.Join(AppDir(), LogName)
}

// DefaultStoreDir is the store directory used until the user picks another.
func DefaultStoreDir() string {
	return AppDir()
}

// ProfilesDir returns <storeDir>/settings.
func ProfilesDir(storeDir string) string {
	return filepath.Join(storeDir, ProfilesSubdir)
}

// ClaudeDir returns ~/.claude.
func ClaudeDir() string {
	return filepath.Join(home(), ClaudeDirName)
}

// ClaudeSettingsFile returns <claudeDir>/settings.json.
func ClaudeSettingsFile(claudeDir string) string {
	return filepath.Join(claudeDir, ActiveSettingsName)
}
