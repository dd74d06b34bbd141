package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/claude-switch/internal/paths"
)

// ErrMalformed marks an AppSettings file that exists but could not be parsed.
// Callers surface it as a warning and keep running on defaults.
var ErrMalformed = errors.New("malformed app settings")

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeDark  Theme = "Dark"
	ThemeLight Theme = "Light"
)

// ParseTheme maps a stored theme name to a Theme. Anything other than
// "Light" is Dark.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// AppSettings represents ~/.claude-code-switcher/app_settings.json.
type AppSettings struct {
	ConfigDirectory   string `json:"config_directory"`
	Theme             Theme  `json:"theme"`
	DefaultConfigFile string `json:"default_config_file"`
}

// Defaults returns the settings used on first run.
func Defaults() AppSettings {
	return AppSettings{
		ConfigDirectory: paths.DefaultStoreDir(),
		Theme:           ThemeDark,
	}
}

// IsDefault reports whether name is the recorded default profile.
func (s AppSettings) IsDefault(name string) bool {
	return name != "" && s.DefaultConfigFile == name
}

// Parse parses app_settings.json bytes. Only a syntax or type error is
// ErrMalformed: absent fields take their defaults, so a missing
// config_directory falls back to the default store directory, a missing theme
// is Dark and a missing default_config_file means no default.
func Parse(data []byte) (AppSettings, error) {
	var s AppSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return AppSettings{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	s.Theme = ParseTheme(string(s.Theme))
	if s.ConfigDirectory == "" {
		s.ConfigDirectory = paths.DefaultStoreDir()
	}
	return s, nil
}

// Marshal serializes settings as indented JSON.
func Marshal(s AppSettings) ([]byte, error) {
	s.Theme = ParseTheme(string(s.Theme))
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling app settings: %w", err)
	}
	return data, nil
}

// Load reads the settings file at path.
//
// When the file parses, its settings are returned. When it exists but does
// not parse, Defaults() is returned with an ErrMalformed error and the file is
// left untouched. When it is missing or unreadable, Defaults() is persisted
// immediately; any write error is returned alongside the defaults.
func Load(path string) (AppSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s := Defaults()
		return s, Save(path, s)
	}
	s, err := Parse(data)
	if err != nil {
		return Defaults(), err
	}
	return s, nil
}

// Save overwrites the settings file, creating its directory when needed.
func Save(path string, s AppSettings) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating app settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing app settings: %w", err)
	}
	return nil
}
