package commands

import (
	"github.com/ruminaider/claude-switch/internal/claudecode"
	"github.com/ruminaider/claude-switch/internal/profiles"
)

// SyncOutcome describes what Sync did.
type SyncOutcome int

const (
	SyncSkipped  SyncOutcome = iota // no readable JSON settings in the Claude dir
	SyncMatched                     // an existing profile became the default
	SyncImported                    // the Claude settings were imported as a new profile
)

// SyncResult is the outcome of Sync together with the profile it concerns.
type SyncResult struct {
	Outcome SyncOutcome
	Profile string
}

// Sync reconciles Claude Code's settings.json with the store. A profile whose
// JSON value equals the external settings becomes the default; without a
// match the external content is imported verbatim as a new default profile.
//
// A missing, unreadable or non-JSON settings file is not an error: Sync
// reports SyncSkipped and logs at debug level.
func (s *Switcher) Sync() (SyncResult, error) {
	external, err := claudecode.ReadSettings(s.claudeDir)
	if err != nil {
		s.log.Debug("sync skipped", "reason", err)
		return SyncResult{Outcome: SyncSkipped}, nil
	}
	if err := profiles.Validate(external); err != nil {
		s.log.Debug("sync skipped", "reason", err)
		return SyncResult{Outcome: SyncSkipped}, nil
	}

	names, err := s.store.List()
	if err != nil {
		return SyncResult{Outcome: SyncSkipped}, err
	}
	for _, name := range names {
		content, err := s.store.Read(name)
		if err != nil {
			continue
		}
		if profiles.SameJSON([]byte(content), []byte(external)) {
			s.log.Info("sync matched profile", "profile", name)
			return SyncResult{Outcome: SyncMatched, Profile: name}, s.setDefault(name)
		}
	}

	name, err := s.store.Create(profiles.ImportProfileBase, external)
	if err != nil {
		return SyncResult{Outcome: SyncSkipped}, err
	}
	s.log.Info("sync imported Claude settings", "profile", name)
	return SyncResult{Outcome: SyncImported, Profile: name}, s.setDefault(name)
}
