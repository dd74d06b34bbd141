package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestSidebar(names ...string) Sidebar {
	s := NewSidebar()
	s.SetHeight(20)
	s.SetFocused(true)
	s.SetProfiles(names, "")
	return s
}

func TestSidebarNavigation(t *testing.T) {
	s := newTestSidebar("a.json", "b.json", "c.json")
	assert.Equal(t, "a.json", s.Selected())

	s, _ = s.Update(runeKey("j"))
	assert.Equal(t, "b.json", s.Selected())
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "c.json", s.Selected(), "cursor stops at the end")

	s, _ = s.Update(runeKey("g"))
	assert.Equal(t, "a.json", s.Selected())
	s, _ = s.Update(runeKey("k"))
	assert.Equal(t, "a.json", s.Selected())
}

func TestSidebarEnterSelects(t *testing.T) {
	s := newTestSidebar("a.json", "b.json")
	s, _ = s.Update(runeKey("j"))
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectMsg{Name: "b.json"}, cmd())
}

func TestSidebarEnterOnEmptyList(t *testing.T) {
	s := newTestSidebar()
	assert.Empty(t, s.Selected())
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestSidebarSetProfilesKeepsCursor(t *testing.T) {
	s := newTestSidebar("a.json", "b.json", "c.json")
	s.Select("c.json")

	s.SetProfiles([]string{"c.json", "a.json"}, "")
	assert.Equal(t, "c.json", s.Selected())

	s.SetProfiles([]string{"a.json"}, "")
	assert.Equal(t, "a.json", s.Selected(), "cursor is clamped when its name disappears")
}

func TestSidebarFilter(t *testing.T) {
	s := newTestSidebar("work.json", "personal.json", "proxy.json")

	s, _ = s.Update(runeKey("/"))
	require.True(t, s.Filtering())
	for _, r := range "pr" {
		s, _ = s.Update(runeKey(string(r)))
	}
	assert.Equal(t, "pr", s.Query())
	assert.ElementsMatch(t, []string{"personal.json", "proxy.json"}, s.Visible())

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "p", s.Query())

	// Enter leaves the prompt but keeps the filter.
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, s.Filtering())
	assert.Equal(t, "p", s.Query())

	// Esc outside the prompt clears it.
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, s.Query())
	assert.Len(t, s.Visible(), 3)
}

func TestSidebarFilterEscCancels(t *testing.T) {
	s := newTestSidebar("work.json", "home.json")
	s, _ = s.Update(runeKey("/"))
	s, _ = s.Update(runeKey("w"))
	assert.Equal(t, []string{"work.json"}, s.Visible())

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, s.Filtering())
	assert.Len(t, s.Visible(), 2)
}

func TestSidebarView(t *testing.T) {
	s := newTestSidebar("a.json", "b.json")
	s.SetProfiles([]string{"a.json", "b.json"}, "b.json")
	s.SetLoaded("a.json")

	view := s.View(NewStyles("Dark"))
	assert.Contains(t, view, "Profiles (2)")
	assert.Contains(t, view, "● a.json")
	assert.Contains(t, view, "★")
	assert.Contains(t, view, "b.json")
}

func TestSidebarView_Empty(t *testing.T) {
	s := newTestSidebar()
	assert.Contains(t, s.View(NewStyles("Dark")), "No profiles")
}
