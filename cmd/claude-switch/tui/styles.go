package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/claude-switch/internal/config"
)

// SidebarWidth is the fixed width of the profile list pane.
const SidebarWidth = 28

// Palette holds the colours used by every style. Dark uses Catppuccin Mocha,
// Light uses Catppuccin Latte.
type Palette struct {
	Base, Mantle, Crust      lipgloss.Color
	Surface0, Surface1       lipgloss.Color
	Text, Subtext0, Overlay0 lipgloss.Color
	Blue, Green, Red, Yellow lipgloss.Color
	Mauve, Peach, Teal       lipgloss.Color
}

// PaletteFor returns the palette for a theme.
func PaletteFor(theme config.Theme) Palette {
	var flavor catppuccin.Flavor = catppuccin.Mocha
	if theme == config.ThemeLight {
		flavor = catppuccin.Latte
	}
	c := func(col catppuccin.Color) lipgloss.Color { return lipgloss.Color(col.Hex) }
	return Palette{
		Base:     c(flavor.Base()),
		Mantle:   c(flavor.Mantle()),
		Crust:    c(flavor.Crust()),
		Surface0: c(flavor.Surface0()),
		Surface1: c(flavor.Surface1()),
		Text:     c(flavor.Text()),
		Subtext0: c(flavor.Subtext0()),
		Overlay0: c(flavor.Overlay0()),
		Blue:     c(flavor.Blue()),
		Green:    c(flavor.Green()),
		Red:      c(flavor.Red()),
		Yellow:   c(flavor.Yellow()),
		Mauve:    c(flavor.Mauve()),
		Peach:    c(flavor.Peach()),
		Teal:     c(flavor.Teal()),
	}
}

// Action is a user-facing operation. Each action has one accent colour so
// the same operation looks the same in the list, the help and the status bar.
type Action int

const (
	ActionAdd Action = iota
	ActionRefresh
	ActionRename
	ActionDelete
	ActionDefault
	ActionActivate
	ActionSave
	ActionFormat
	ActionWarning
)

// Styles is the full set of lipgloss styles for one theme.
type Styles struct {
	Theme   config.Theme
	Palette Palette

	// Sidebar.
	SidebarContainer lipgloss.Style
	SidebarTitle     lipgloss.Style
	ActiveRow        lipgloss.Style
	DimActiveRow     lipgloss.Style
	InactiveRow      lipgloss.Style
	DimRow           lipgloss.Style
	DefaultMarker    lipgloss.Style
	FilterPrompt     lipgloss.Style

	// Editor pane.
	EditorTitle    lipgloss.Style
	EditorModified lipgloss.Style
	EditorPane     lipgloss.Style
	Placeholder    lipgloss.Style

	// Status bar.
	StatusBar    lipgloss.Style
	StatusBarKey lipgloss.Style

	// Overlays.
	Overlay               lipgloss.Style
	OverlayTitle          lipgloss.Style
	OverlayButtonActive   lipgloss.Style
	OverlayButtonInactive lipgloss.Style
	OverlayHint           lipgloss.Style

	// Toasts.
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(theme config.Theme) Styles {
	p := PaletteFor(theme)
	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Background(p.Mantle).
		Padding(0, 1)

	return Styles{
		Theme:   theme,
		Palette: p,

		SidebarContainer: lipgloss.NewStyle().
			Width(SidebarWidth).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Surface1),
		SidebarTitle: lipgloss.NewStyle().
			Foreground(p.Mauve).
			Bold(true).
			PaddingLeft(1),
		ActiveRow: lipgloss.NewStyle().
			Foreground(p.Blue).
			Background(p.Surface1).
			Bold(true).
			PaddingLeft(1),
		DimActiveRow: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Background(p.Surface0).
			PaddingLeft(1),
		InactiveRow: lipgloss.NewStyle().
			Foreground(p.Text).
			PaddingLeft(1),
		DimRow: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			PaddingLeft(1),
		DefaultMarker: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),
		FilterPrompt: lipgloss.NewStyle().
			Foreground(p.Teal),

		EditorTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Crust).
			Bold(true).
			Padding(0, 1),
		EditorModified: lipgloss.NewStyle().
			Foreground(p.Peach).
			Background(p.Crust).
			Bold(true).
			Padding(0, 1),
		EditorPane: lipgloss.NewStyle().
			PaddingLeft(1),
		Placeholder: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Background(p.Surface0).
			Padding(0, 1),
		StatusBarKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Background(p.Surface0).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Blue).
			Background(p.Mantle).
			Foreground(p.Text).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),
		OverlayButtonActive: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Blue).
			Padding(0, 2),
		OverlayButtonInactive: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface1).
			Padding(0, 2),
		OverlayHint: lipgloss.NewStyle().
			Foreground(p.Overlay0),

		ToastSuccess: toast.BorderForeground(p.Green).Foreground(p.Green),
		ToastError:   toast.BorderForeground(p.Red).Foreground(p.Red),
		ToastWarning: toast.BorderForeground(p.Yellow).Foreground(p.Yellow),
	}
}

// ActionColor returns the accent colour of an action.
func (s Styles) ActionColor(a Action) lipgloss.Color {
	p := s.Palette
	switch a {
	case ActionAdd, ActionSave:
		return p.Green
	case ActionRefresh:
		return p.Blue
	case ActionRename, ActionFormat:
		return p.Mauve
	case ActionDelete:
		return p.Red
	case ActionDefault, ActionWarning:
		return p.Yellow
	case ActionActivate:
		return p.Teal
	default:
		return p.Text
	}
}

// Action returns a foreground style in the action's accent colour.
func (s Styles) Action(a Action) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.ActionColor(a))
}
