package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// StatusBar renders the bottom row: status text, the open profile, its
// character count and the keyboard shortcuts for the focused pane.
type StatusBar struct {
	status   string
	profile  string
	modified bool
	chars    int
	modTime  time.Time
	now      time.Time
	focus    FocusZone
	width    int
}

// NewStatusBar creates a status bar with the idle status text.
func NewStatusBar() StatusBar {
	return StatusBar{status: "Ready"}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetStatus replaces the status text.
func (s *StatusBar) SetStatus(text string) {
	s.status = text
}

// Status returns the status text.
func (s StatusBar) Status() string {
	return s.status
}

// SetFocus selects which shortcuts are shown.
func (s *StatusBar) SetFocus(f FocusZone) {
	s.focus = f
}

// Update refreshes the editor-derived fields. modTime is the profile file's
// last modification; the zero time hides the age.
func (s *StatusBar) Update(profile string, modified bool, chars int, modTime, now time.Time) {
	s.profile = profile
	s.modified = modified
	s.chars = chars
	s.modTime = modTime
	s.now = now
}

// View renders the status bar.
func (s StatusBar) View(styles Styles) string {
	parts := []string{s.status}
	if s.profile != "" {
		name := s.profile
		if s.modified {
			name += " (modified)"
		}
		parts = append(parts, name)
		if !s.modTime.IsZero() {
			parts = append(parts, "saved "+humanize.RelTime(s.modTime, s.now, "ago", "from now"))
		}
	}
	parts = append(parts, fmt.Sprintf("Chars: %d", s.chars))
	leftPart := strings.Join(parts, " · ")

	var shortcuts []string
	if s.focus == FocusEditor {
		shortcuts = []string{
			styles.StatusBarKey.Render("Ctrl+S") + ": save",
			styles.StatusBarKey.Render("Ctrl+F") + ": format",
			styles.StatusBarKey.Render("Esc") + ": list",
		}
	} else {
		shortcuts = []string{
			styles.StatusBarKey.Render("Enter") + ": open",
			styles.StatusBarKey.Render("n") + ": new",
			styles.StatusBarKey.Render("?") + ": help",
		}
	}
	rightPart := strings.Join(shortcuts, " · ")

	availableWidth := s.width - 2 // account for StatusBar padding
	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	if leftWidth+rightWidth+1 > availableWidth {
		leftPart = ansi.Truncate(leftPart, max(availableWidth-rightWidth-1, 0), "…")
		leftWidth = ansi.StringWidth(leftPart)
	}
	gap := max(availableWidth-leftWidth-rightWidth, 1)

	content := leftPart + strings.Repeat(" ", gap) + rightPart
	return styles.StatusBar.Width(s.width).Render(content)
}
