package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayConfirm   OverlayType = iota // Cancel/OK confirmation
	OverlayTextInput                    // Single-line text input
	OverlayInfo                         // Read-only text, any of enter/esc/q closes
)

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string // body text (for Confirm, Info)
	cursor      int    // button index for Confirm: 0=Cancel, 1=OK
	input       textinput.Model
	width       int
	active      bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
// The cursor starts on Cancel so a stray Enter never deletes anything.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      0,
		active:      true,
	}
}

// NewTextInputOverlay creates a text input dialog pre-filled with value.
func NewTextInputOverlay(title, placeholder, value string) Overlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 30
	return Overlay{
		overlayType: OverlayTextInput,
		title:       title,
		input:       ti,
		active:      true,
	}
}

// NewInfoOverlay creates a read-only dialog.
func NewInfoOverlay(title, body string) Overlay {
	return Overlay{
		overlayType: OverlayInfo,
		title:       title,
		message:     body,
		active:      true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Value returns the current text of a text input overlay.
func (o Overlay) Value() string {
	return o.input.Value()
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	switch o.overlayType {
	case OverlayConfirm:
		return o.updateConfirm(msg)
	case OverlayTextInput:
		return o.updateTextInput(msg)
	case OverlayInfo:
		return o.updateInfo(msg)
	}
	return o, nil
}

func closeCmd(result string, confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return OverlayCloseMsg{Result: result, Confirmed: confirmed}
	}
}

func (o Overlay) updateConfirm(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			o.active = false
			return o, closeCmd("", false)
		case "y":
			o.active = false
			return o, closeCmd("", true)
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor // toggle between 0 and 1
		case "enter":
			o.active = false
			return o, closeCmd("", o.cursor == 1)
		}
	}
	return o, nil
}

func (o Overlay) updateTextInput(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			o.active = false
			return o, closeCmd("", false)
		case "enter":
			// Empty input is submitted too; validation belongs to the caller.
			o.active = false
			return o, closeCmd(o.input.Value(), true)
		}
	}

	// Delegate other keys to the text input.
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

func (o Overlay) updateInfo(msg tea.Msg) (Overlay, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q", "?":
			o.active = false
			return o, closeCmd("", false)
		}
	}
	return o, nil
}

// View renders the overlay box. It does not composite over a background;
// that is the caller's responsibility using Composite().
func (o Overlay) View(styles Styles) string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.OverlayTitle.Render(o.title))
	b.WriteString("\n\n")

	switch o.overlayType {
	case OverlayConfirm:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(o.renderButtons(styles, "Cancel", "OK"))
	case OverlayTextInput:
		b.WriteString(o.input.View())
		b.WriteString("\n\n")
		b.WriteString(styles.OverlayHint.Render("Enter: submit  Esc: cancel"))
	case OverlayInfo:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(styles.OverlayHint.Render("Esc: close"))
	}

	box := styles.Overlay
	if o.width > 0 {
		box = box.Width(o.width)
	}
	return box.Render(b.String())
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(styles Styles, cancel, ok string) string {
	if o.cursor == 0 {
		return styles.OverlayButtonActive.Render(cancel) + "  " + styles.OverlayButtonInactive.Render(ok)
	}
	return styles.OverlayButtonInactive.Render(cancel) + "  " + styles.OverlayButtonActive.Render(ok)
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")

	// Pad background to fill the screen height.
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := max((totalHeight-len(overlayLines))/2, 0)
	startCol := max((totalWidth-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = spliceLine(bgLines[row], overlayLine, startCol)
	}

	return strings.Join(bgLines[:max(totalHeight, 1)], "\n")
}

// PlaceTopRight draws box over the top-right corner of background.
func PlaceTopRight(background, box string, totalWidth int) string {
	if box == "" {
		return background
	}
	bgLines := strings.Split(background, "\n")
	for i, line := range strings.Split(box, "\n") {
		if i >= len(bgLines) {
			break
		}
		col := max(totalWidth-ansi.StringWidth(line), 0)
		bgLines[i] = spliceLine(bgLines[i], line, col)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLine writes fg over bg starting at display column col, keeping the
// visible background on both sides. ANSI sequences are width-aware.
func spliceLine(bg, fg string, col int) string {
	left := ansi.Truncate(bg, col, "")
	if w := ansi.StringWidth(left); w < col {
		left += strings.Repeat(" ", col-w)
	}
	end := col + ansi.StringWidth(fg)
	right := ""
	if bgWidth := ansi.StringWidth(bg); end < bgWidth {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

// SetWidth sets the overlay box width.
func (o *Overlay) SetWidth(w int) {
	o.width = w
	if o.overlayType == OverlayTextInput {
		o.input.Width = max(w-8, 20) // account for overlay padding and border
	}
}

// OverlayMaxWidth returns a reasonable width for overlays on a terminal.
func OverlayMaxWidth(termWidth int) int {
	return min(max(termWidth*2/3, 40), 64)
}
