package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

// Sidebar renders the profile list with a cursor, the default marker and an
// optional fuzzy filter.
type Sidebar struct {
	names       []string
	defaultName string
	loaded      string // profile currently open in the editor

	visible []int // indexes into names after filtering
	cursor  int   // index into visible

	filtering bool
	query     string

	height  int
	focused bool
}

// NewSidebar creates an empty sidebar.
func NewSidebar() Sidebar {
	return Sidebar{}
}

// SetHeight sets the available height for rendering.
func (s *Sidebar) SetHeight(h int) {
	s.height = h
}

// SetFocused sets whether the sidebar currently has keyboard focus.
func (s *Sidebar) SetFocused(f bool) {
	s.focused = f
}

// SetLoaded records which profile is open in the editor.
func (s *Sidebar) SetLoaded(name string) {
	s.loaded = name
}

// SetProfiles replaces the listed names. The cursor stays on the same name
// when it still exists.
func (s *Sidebar) SetProfiles(names []string, defaultName string) {
	current := s.Selected()
	s.names = names
	s.defaultName = defaultName
	s.applyFilter()
	if current != "" {
		s.Select(current)
	}
}

// Select moves the cursor to name if it is visible.
func (s *Sidebar) Select(name string) bool {
	for i, idx := range s.visible {
		if s.names[idx] == name {
			s.cursor = i
			return true
		}
	}
	return false
}

// Selected returns the name under the cursor, or "" when the list is empty.
func (s Sidebar) Selected() string {
	if s.cursor < 0 || s.cursor >= len(s.visible) {
		return ""
	}
	return s.names[s.visible[s.cursor]]
}

// Filtering reports whether the filter prompt is capturing keys.
func (s Sidebar) Filtering() bool {
	return s.filtering
}

// Query returns the current filter text.
func (s Sidebar) Query() string {
	return s.query
}

// Visible returns the names shown after filtering, in display order.
func (s Sidebar) Visible() []string {
	out := make([]string, len(s.visible))
	for i, idx := range s.visible {
		out[i] = s.names[idx]
	}
	return out
}

func (s *Sidebar) applyFilter() {
	s.visible = make([]int, 0, len(s.names))
	if s.query == "" {
		for i := range s.names {
			s.visible = append(s.visible, i)
		}
	} else {
		for _, m := range fuzzy.Find(s.query, s.names) {
			s.visible = append(s.visible, m.Index)
		}
	}
	if s.cursor >= len(s.visible) {
		s.cursor = max(len(s.visible)-1, 0)
	}
}

// Update handles key messages when the sidebar has focus.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.filtering {
		return s.updateFilter(key)
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = max(len(s.visible)-1, 0)
	case "/":
		s.filtering = true
	case "esc":
		if s.query != "" {
			s.query = ""
			s.applyFilter()
		}
	case "enter", "right", "l":
		if name := s.Selected(); name != "" {
			return s, func() tea.Msg { return SelectMsg{Name: name} }
		}
	}
	return s, nil
}

func (s Sidebar) updateFilter(key tea.KeyMsg) (Sidebar, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		s.filtering = false
		s.query = ""
	case tea.KeyEnter:
		s.filtering = false
	case tea.KeyBackspace:
		if r := []rune(s.query); len(r) > 0 {
			s.query = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case tea.KeyDown:
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
	case tea.KeyRunes, tea.KeySpace:
		s.query += string(key.Runes)
		s.cursor = 0
	}
	s.applyFilter()
	return s, nil
}

// View renders the sidebar at SidebarWidth columns and exactly s.height rows.
func (s Sidebar) View(styles Styles) string {
	rowWidth := SidebarWidth
	textWidth := rowWidth - 1 // minus PaddingLeft(1)

	lines := make([]string, 0, s.height)
	lines = append(lines, styles.SidebarTitle.Render(fmt.Sprintf("Profiles (%d)", len(s.names))))

	if s.filtering || s.query != "" {
		prompt := "/" + s.query
		if s.filtering {
			prompt += "█"
		}
		lines = append(lines, styles.FilterPrompt.PaddingLeft(1).Render(ansi.Truncate(prompt, textWidth, "…")))
	} else {
		lines = append(lines, "")
	}

	rows := max(s.height-len(lines), 0)
	start := 0
	if s.cursor >= rows && rows > 0 {
		start = s.cursor - rows + 1
	}

	if len(s.visible) == 0 {
		empty := "No profiles. Press n."
		if s.query != "" {
			empty = "No matches."
		}
		lines = append(lines, styles.DimRow.Render(empty))
	}

	for i := start; i < len(s.visible) && i < start+rows; i++ {
		name := s.names[s.visible[i]]
		marker := "  "
		if name == s.defaultName {
			marker = styles.DefaultMarker.Render("★ ")
		}
		label := name
		if name == s.loaded {
			label = "● " + label
		}
		label = marker + ansi.Truncate(label, textWidth-2, "…")

		switch {
		case i == s.cursor && s.focused:
			lines = append(lines, styles.ActiveRow.Width(rowWidth).Render(label))
		case i == s.cursor:
			lines = append(lines, styles.DimActiveRow.Width(rowWidth).Render(label))
		case s.focused:
			lines = append(lines, styles.InactiveRow.Width(rowWidth).Render(label))
		default:
			lines = append(lines, styles.DimRow.Width(rowWidth).Render(label))
		}
	}

	for len(lines) < s.height {
		lines = append(lines, "")
	}
	if s.height > 0 && len(lines) > s.height {
		lines = lines[:s.height]
	}

	borderColor := styles.Palette.Surface1
	if s.focused {
		borderColor = styles.Palette.Blue
	}
	return styles.SidebarContainer.
		Height(s.height).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}
