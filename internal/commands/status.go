package commands

import (
	"github.com/ruminaider/claude-switch/internal/claudecode"
	"github.com/ruminaider/claude-switch/internal/config"
	"github.com/ruminaider/claude-switch/internal/profiles"
)

// StatusResult summarises the switcher state for display.
type StatusResult struct {
	StoreDir       string
	ClaudeDir      string
	Theme          config.Theme
	Profiles       int
	Default        string
	DefaultMissing bool // the recorded default names a file that is gone
	ClaudeSettings bool // Claude Code's settings.json exists
	InSync         bool // settings.json equals the default profile's JSON
}

// Status inspects the store and Claude Code's settings.
func (s *Switcher) Status() (*StatusResult, error) {
	names, err := s.store.List()
	if err != nil {
		return nil, err
	}

	res := &StatusResult{
		StoreDir:       s.StoreDir(),
		ClaudeDir:      s.claudeDir,
		Theme:          s.settings.Theme,
		Profiles:       len(names),
		Default:        s.settings.DefaultConfigFile,
		ClaudeSettings: claudecode.SettingsExists(s.claudeDir),
	}

	if res.Default == "" {
		return res, nil
	}
	content, err := s.store.Read(res.Default)
	if err != nil {
		res.DefaultMissing = true
		return res, nil
	}
	if external, err := claudecode.ReadSettings(s.claudeDir); err == nil {
		res.InSync = profiles.SameJSON([]byte(content), []byte(external))
	}
	return res, nil
}
