package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ruminaider/claude-switch/internal/config"
	"github.com/ruminaider/claude-switch/internal/logging"
	"github.com/ruminaider/claude-switch/internal/paths"
	"github.com/ruminaider/claude-switch/internal/profiles"
)

// NoticeLevel classifies a startup notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// Notice is a non-fatal message produced while opening the switcher.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Options locates the files the switcher works on. Empty fields fall back to
// the defaults in package paths.
type Options struct {
	SettingsPath string
	ClaudeDir    string
	TemplatePath string
	// StoreDir overrides config_directory for this process only.
	StoreDir string
	Logger   *slog.Logger
}

// Switcher owns the application state: AppSettings, the profile store and
// the location of Claude Code's settings. Every mutating method persists
// AppSettings before returning.
type Switcher struct {
	settingsPath  string
	claudeDir     string
	storeOverride string
	template      string

	settings config.AppSettings
	store    *profiles.Store
	log      *slog.Logger
}

// Open loads AppSettings, the profile template and prepares the store layout.
// Problems are returned as notices; Open itself never fails.
func Open(opts Options) (*Switcher, []Notice) {
	if opts.SettingsPath == "" {
		opts.SettingsPath = paths.AppSettingsFile()
	}
	if opts.ClaudeDir == "" {
		opts.ClaudeDir = paths.ClaudeDir()
	}
	if opts.TemplatePath == "" {
		opts.TemplatePath = paths.TemplateFile()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	s := &Switcher{
		settingsPath:  opts.SettingsPath,
		claudeDir:     opts.ClaudeDir,
		storeOverride: opts.StoreDir,
		log:           opts.Logger,
	}

	var notices []Notice

	settings, err := config.Load(s.settingsPath)
	if err != nil {
		if errors.Is(err, config.ErrMalformed) {
			s.log.Warn("app settings unreadable, using defaults", "path", s.settingsPath, "err", err)
			notices = append(notices, Notice{NoticeWarning, fmt.Sprintf("Error parsing app settings: %v", err)})
		} else {
			s.log.Error("saving default app settings", "path", s.settingsPath, "err", err)
			notices = append(notices, Notice{NoticeError, fmt.Sprintf("Error saving app settings: %v", err)})
		}
	}
	s.settings = settings

	tmpl, err := profiles.LoadTemplate(opts.TemplatePath)
	if err != nil {
		s.log.Warn("template override ignored", "path", opts.TemplatePath, "err", err)
		notices = append(notices, Notice{NoticeWarning, fmt.Sprintf("Template ignored: %v", err)})
	}
	s.template = tmpl

	s.store = profiles.NewStore(s.StoreDir())
	if err := s.store.EnsureLayout(s.template); err != nil {
		s.log.Error("preparing store", "dir", s.store.Dir(), "err", err)
		notices = append(notices, Notice{NoticeError, err.Error()})
	}

	return s, notices
}

// Settings returns a copy of the current AppSettings.
func (s *Switcher) Settings() config.AppSettings {
	return s.settings
}

// Store returns the profile store in use.
func (s *Switcher) Store() *profiles.Store {
	return s.store
}

// ClaudeDir returns Claude Code's configuration directory.
func (s *Switcher) ClaudeDir() string {
	return s.claudeDir
}

// Template returns the body used for new profiles.
func (s *Switcher) Template() string {
	return s.template
}

// StoreDir returns the effective store directory.
func (s *Switcher) StoreDir() string {
	if s.storeOverride != "" {
		return s.storeOverride
	}
	return s.settings.ConfigDirectory
}

// DefaultProfile returns the recorded default profile name, which may not
// exist on disk.
func (s *Switcher) DefaultProfile() string {
	return s.settings.DefaultConfigFile
}

// IsDefault reports whether name is the recorded default profile.
func (s *Switcher) IsDefault(name string) bool {
	return s.settings.IsDefault(name)
}

// Persist writes AppSettings to disk.
func (s *Switcher) Persist() error {
	if err := config.Save(s.settingsPath, s.settings); err != nil {
		s.log.Error("persisting app settings", "path", s.settingsPath, "err", err)
		return err
	}
	return nil
}

// setDefault records name as the default profile and persists.
func (s *Switcher) setDefault(name string) error {
	s.settings.DefaultConfigFile = name
	return s.Persist()
}

// ChangeStoreDir switches to another store directory, prepares its layout
// and persists the choice.
func (s *Switcher) ChangeStoreDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("store directory cannot be empty")
	}
	s.settings.ConfigDirectory = dir
	s.storeOverride = ""
	s.store = profiles.NewStore(dir)
	s.log.Info("store directory changed", "dir", dir)

	layoutErr := s.store.EnsureLayout(s.template)
	return errors.Join(layoutErr, s.Persist())
}

// ToggleTheme flips between Dark and Light and persists.
func (s *Switcher) ToggleTheme() (config.Theme, error) {
	t := s.settings.Theme.Toggle()
	return t, s.SetTheme(t)
}

// SetTheme records theme and persists.
func (s *Switcher) SetTheme(theme config.Theme) error {
	s.settings.Theme = config.ParseTheme(string(theme))
	s.log.Info("theme changed", "theme", s.settings.Theme)
	return s.Persist()
}
