package tui

import (
	"time"

	"github.com/ruminaider/claude-switch/internal/watch"
)

// FocusZone identifies which pane currently has keyboard focus.
type FocusZone int

const (
	FocusList   FocusZone = iota // profile list
	FocusEditor                  // JSON editor
)

// --- Inter-component messages ---

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Result    string // Text result (for text input) or empty
	Confirmed bool   // true = OK/Submit, false = Cancel/Esc
}

// SelectMsg is sent when the user opens a profile from the list.
type SelectMsg struct{ Name string }

// tickMsg drives toast expiry.
type tickMsg time.Time

// storeChangedMsg reports that files in the watched profile directory
// changed on disk.
type storeChangedMsg struct{ watcher *watch.Watcher }

// watcherStartedMsg carries a freshly started watcher, or the error that
// prevented it.
type watcherStartedMsg struct {
	watcher *watch.Watcher
	dir     string
	err     error
}
