package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusBarView(t *testing.T) {
	now := time.Now()
	s := NewStatusBar()
	s.SetWidth(120)
	s.Update("work.json", true, 42, now.Add(-2*time.Hour), now)

	view := s.View(NewStyles("Dark"))
	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "work.json (modified)")
	assert.Contains(t, view, "Chars: 42")
	assert.Contains(t, view, "2 hours ago")
	assert.Contains(t, view, "open")
}

func TestStatusBarView_EditorShortcuts(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(120)
	s.SetFocus(FocusEditor)
	s.SetStatus("Saved")

	view := s.View(NewStyles("Dark"))
	assert.Contains(t, view, "Saved")
	assert.Contains(t, view, "Chars: 0")
	assert.Contains(t, view, "format")
	assert.NotContains(t, view, "(modified)")
}
