package commands

import (
	"fmt"

	"github.com/ruminaider/claude-switch/internal/claudecode"
	"github.com/ruminaider/claude-switch/internal/profiles"
)

// List returns profile names in alphabetical order.
func (s *Switcher) List() ([]string, error) {
	return s.store.List()
}

// ListPreserving returns profile names keeping the order of previous.
func (s *Switcher) ListPreserving(previous []string) ([]string, error) {
	return s.store.ListPreserving(previous)
}

// Read returns the text of a profile.
func (s *Switcher) Read(name string) (string, error) {
	return s.store.Read(name)
}

// Create writes the template under a fresh name derived from base. An empty
// base uses profiles.NewProfileBase.
func (s *Switcher) Create(base string) (string, error) {
	if base == "" {
		base = profiles.NewProfileBase
	}
	name, err := s.store.Create(base, s.template)
	if err != nil {
		return "", err
	}
	s.log.Info("profile created", "profile", name)
	return name, nil
}

// Rename renames a profile and carries the default marker along. On success
// the new file name is returned even when persisting AppSettings fails.
func (s *Switcher) Rename(oldName, input string) (string, error) {
	newName, err := s.store.Rename(oldName, input)
	if err != nil {
		return "", err
	}
	s.log.Info("profile renamed", "from", oldName, "to", newName)

	if s.IsDefault(oldName) {
		if err := s.setDefault(newName); err != nil {
			return newName, err
		}
	}
	return newName, nil
}

// Delete removes a profile. Deleting the default profile clears the default.
func (s *Switcher) Delete(name string) error {
	if err := s.store.Delete(name); err != nil {
		return err
	}
	s.log.Info("profile deleted", "profile", name)

	if s.IsDefault(name) {
		return s.setDefault("")
	}
	return nil
}

// SaveResult reports what Save wrote.
type SaveResult struct {
	// Content is the formatted text now on disk.
	Content string
	// Mirrored is true when the content was also written to Claude Code's
	// settings.json because the profile is the default.
	Mirrored bool
	// MirrorErr is set when the profile was saved but mirroring failed.
	MirrorErr error
}

// Save validates text as JSON, writes it formatted and mirrors it into
// Claude Code's settings when name is the default profile. Invalid JSON is
// refused before anything is written.
func (s *Switcher) Save(name, text string) (SaveResult, error) {
	formatted, err := profiles.Format(text)
	if err != nil {
		return SaveResult{}, err
	}
	if err := s.store.Write(name, formatted); err != nil {
		return SaveResult{}, err
	}
	s.log.Info("profile saved", "profile", name)

	res := SaveResult{Content: formatted}
	if s.IsDefault(name) {
		if err := claudecode.WriteSettings(s.claudeDir, formatted); err != nil {
			s.log.Error("mirroring default profile", "profile", name, "err", err)
			res.MirrorErr = err
		} else {
			res.Mirrored = true
			s.log.Info("default profile mirrored", "profile", name, "dir", s.claudeDir)
		}
	}
	return res, nil
}

// SetDefault marks name as the default profile and copies its content into
// Claude Code's settings.json.
func (s *Switcher) SetDefault(name string) error {
	if err := s.setDefault(name); err != nil {
		return err
	}
	content, err := s.store.Read(name)
	if err != nil {
		return err
	}
	if err := claudecode.WriteSettings(s.claudeDir, content); err != nil {
		return err
	}
	s.log.Info("default profile set", "profile", name)
	return nil
}

// ActivateLocal copies a profile into the store's reserved settings.json.
func (s *Switcher) ActivateLocal(name string) error {
	if err := s.store.ActivateLocal(name); err != nil {
		return fmt.Errorf("activating %s: %w", name, err)
	}
	s.log.Info("profile activated locally", "profile", name)
	return nil
}
