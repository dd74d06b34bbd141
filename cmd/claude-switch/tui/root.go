package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/claude-switch/internal/commands"
	"github.com/ruminaider/claude-switch/internal/editor"
	"github.com/ruminaider/claude-switch/internal/logging"
	"github.com/ruminaider/claude-switch/internal/paths"
	"github.com/ruminaider/claude-switch/internal/profiles"
	"github.com/ruminaider/claude-switch/internal/watch"
)

// Minimum terminal size the layout is drawn at.
const (
	MinWidth  = 60
	MinHeight = 20
)

const tickInterval = 250 * time.Millisecond

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone          overlayContext = iota
	overlayRename                       // text input for the new profile name
	overlayDeleteConfirm                // delete profile confirmation
	overlayStoreDir                     // text input for the store directory
	overlayHelp                         // help modal
)

// Options configures optional behaviour of the model.
type Options struct {
	// Watch starts an fsnotify watcher on the profile directory.
	Watch bool
	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error
	// Now returns the current time. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Model is the root bubbletea model: profile list on the left, JSON editor
// on the right, status bar at the bottom.
type Model struct {
	sw *commands.Switcher

	names     []string
	sidebar   Sidebar
	editor    textarea.Model
	buf       editor.Buffer
	statusBar StatusBar
	toasts    Toasts
	overlay   Overlay

	// Overlay tracking.
	overlayCtx    overlayContext
	pendingTarget string // profile the overlay acts on

	focus         FocusZone
	styles        Styles
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool

	watchEnabled bool
	watcher      *watch.Watcher

	clipboard func(string) error
	now       func() time.Time
	log       *slog.Logger
}

// NewModel builds the model, lists the store and runs the startup sync.
// notices are shown as toasts.
func NewModel(sw *commands.Switcher, notices []commands.Notice, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	ta := textarea.New()
	ta.Placeholder = "Select a profile to edit"
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.Blur()

	m := Model{
		sw:           sw,
		sidebar:      NewSidebar(),
		editor:       ta,
		statusBar:    NewStatusBar(),
		focus:        FocusList,
		watchEnabled: opts.Watch,
		clipboard:    opts.Clipboard,
		now:          opts.Now,
		log:          opts.Logger,
	}
	m.applyTheme()

	for _, n := range notices {
		switch n.Level {
		case commands.NoticeError:
			m.toastError(n.Message)
		case commands.NoticeWarning:
			m.toastWarning(n.Message)
		default:
			m.toastSuccess(n.Message)
		}
	}

	m.refresh(false)
	m.runSync()
	m.syncStatusBar()
	return m
}

// Init starts the toast ticker and, when enabled, the directory watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watchEnabled {
		cmds = append(cmds, startWatcher(m.sw.Store().Dir()))
	}
	return tea.Batch(cmds...)
}

// Close stops the directory watcher. Call it on the final model returned by
// the program.
func (m Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func startWatcher(dir string) tea.Cmd {
	return func() tea.Msg {
		w, err := watch.New(dir, watch.DefaultDelay)
		return watcherStartedMsg{watcher: w, dir: dir, err: err}
	}
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return storeChangedMsg{watcher: w}
	}
}

// Update handles messages for the whole UI.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case tickMsg:
		m.toasts.Prune(m.now())
		m.syncStatusBar()
		return m, tick()

	case watcherStartedMsg:
		if msg.err != nil {
			m.log.Warn("watching store disabled", "dir", msg.dir, "err", msg.err)
			return m, nil
		}
		if msg.dir != m.sw.Store().Dir() {
			// The store moved while the watcher was starting.
			_ = msg.watcher.Close()
			return m, nil
		}
		m.watcher = msg.watcher
		return m, waitForChange(m.watcher)

	case storeChangedMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		m.refresh(false)
		m.syncStatusBar()
		return m, waitForChange(m.watcher)

	case SelectMsg:
		m.loadProfile(msg.Name)
		cmd := m.setFocus(FocusEditor)
		return m, cmd

	case OverlayCloseMsg:
		return m.handleOverlayClose(msg)
	}

	// When overlay is active, route ALL messages to the overlay.
	if m.overlay.Active() {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == FocusEditor {
			return m.updateEditor(msg)
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m.quit()
	}
	if m.tooSmall() {
		if key.String() == "q" {
			return m.quit()
		}
		return m, nil
	}

	// Global key handling.
	switch key.String() {
	case "ctrl+s":
		m.save()
		return m, nil
	case "ctrl+f":
		m.format()
		return m, nil
	case "ctrl+t":
		m.toggleTheme()
		return m, nil
	case "ctrl+y":
		m.copyToClipboard()
		return m, nil
	case "f5":
		m.refreshAndSync()
		return m, nil
	}

	if m.focus == FocusEditor {
		switch key.String() {
		case "esc", "tab":
			cmd := m.setFocus(FocusList)
			return m, cmd
		}
		return m.updateEditor(msg)
	}
	return m.updateList(key)
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.buf.Loaded() {
		m.buf.SetText(m.editor.Value())
	}
	m.syncStatusBar()
	return m, cmd
}

func (m Model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sidebar.Filtering() {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(key)
		return m, cmd
	}

	selected := m.sidebar.Selected()
	switch key.String() {
	case "q":
		return m.quit()
	case "tab":
		if m.buf.Loaded() {
			cmd := m.setFocus(FocusEditor)
			return m, cmd
		}
		return m, nil
	case "n", "+":
		m.create()
		cmd := m.setFocus(FocusEditor)
		return m, cmd
	case "r", "f2":
		if selected != "" {
			m.openOverlay(NewTextInputOverlay("Rename "+selected, "new name", selected), overlayRename, selected)
		}
		return m, nil
	case "x", "delete":
		if selected != "" {
			m.openOverlay(NewConfirmOverlay("Delete profile",
				fmt.Sprintf("Delete %q? This cannot be undone.", selected)), overlayDeleteConfirm, selected)
		}
		return m, nil
	case "*", "d":
		m.setDefault(selected)
		return m, nil
	case "a":
		m.activateLocal(selected)
		return m, nil
	case "o":
		m.openOverlay(NewTextInputOverlay("Profile directory", "/path/to/store", m.sw.StoreDir()), overlayStoreDir, "")
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	case "?":
		m.openOverlay(NewInfoOverlay("Keys", helpText(m.styles)), overlayHelp, "")
		return m, nil
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(key)
	return m, cmd
}

func (m *Model) openOverlay(o Overlay, ctx overlayContext, target string) {
	o.SetWidth(OverlayMaxWidth(m.width))
	m.overlay = o
	m.overlayCtx = ctx
	m.pendingTarget = target
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx, target := m.overlayCtx, m.pendingTarget
	m.overlayCtx = overlayNone
	m.pendingTarget = ""
	if !msg.Confirmed {
		return m, nil
	}

	switch ctx {
	case overlayRename:
		m.rename(target, msg.Result)
	case overlayDeleteConfirm:
		m.delete(target)
	case overlayStoreDir:
		cmd := m.changeStoreDir(msg.Result)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) setFocus(f FocusZone) tea.Cmd {
	if f == FocusEditor && !m.buf.Loaded() {
		f = FocusList
	}
	m.focus = f
	m.sidebar.SetFocused(f == FocusList)
	m.statusBar.SetFocus(f)
	if f == FocusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// --- Operations ---

// refresh re-lists the store in name order, or keeping the current order
// when preserve is set. A loaded profile that disappeared from disk is
// unloaded.
func (m *Model) refresh(preserve bool) {
	var names []string
	var err error
	if preserve {
		names, err = m.sw.ListPreserving(m.names)
	} else {
		names, err = m.sw.List()
	}
	if err != nil {
		m.toastError(fmt.Sprintf("Error reading profiles: %v", err))
		names = nil
	}
	m.names = names
	m.sidebar.SetProfiles(names, m.sw.DefaultProfile())
	if m.buf.Loaded() && !slices.Contains(names, m.buf.Name()) {
		m.unload()
	}
}

func (m *Model) runSync() {
	res, err := m.sw.Sync()
	if err != nil {
		m.toastError(fmt.Sprintf("Sync failed: %v", err))
	}
	switch res.Outcome {
	case commands.SyncImported:
		m.toastSuccess(fmt.Sprintf("Imported Claude Code settings as %s", res.Profile))
	case commands.SyncMatched:
		m.toastSuccess(fmt.Sprintf("Claude Code settings match %s", res.Profile))
	}
	m.refresh(false)
}

func (m *Model) refreshAndSync() {
	m.refresh(false)
	m.runSync()
	m.statusBar.SetStatus("Refreshed")
	m.syncStatusBar()
}

// loadProfile opens name in the editor. Unsaved edits to the previously
// loaded profile are discarded.
func (m *Model) loadProfile(name string) {
	content, err := m.sw.Read(name)
	if err != nil {
		m.toastError(fmt.Sprintf("Error reading %s: %v", name, err))
		return
	}
	m.buf.Load(name, content)
	m.editor.SetValue(content)
	m.sidebar.SetLoaded(name)
	m.sidebar.Select(name)
	m.statusBar.SetStatus("Loaded " + name)
	m.syncStatusBar()
}

func (m *Model) unload() {
	m.buf.Unload()
	m.editor.Reset()
	m.sidebar.SetLoaded("")
	if m.focus == FocusEditor {
		m.setFocus(FocusList)
	}
}

func (m *Model) create() {
	name, err := m.sw.Create("")
	if err != nil {
		m.toastError(fmt.Sprintf("Error creating profile: %v", err))
		return
	}
	m.refresh(false)
	m.loadProfile(name)
	m.toastSuccess("Created " + name)
}

func (m *Model) rename(oldName, input string) {
	newName, err := m.sw.Rename(oldName, input)
	if newName == "" {
		m.toastError(renameMessage(err))
		return
	}
	if m.buf.Name() == oldName {
		m.buf.Rename(newName)
		m.sidebar.SetLoaded(newName)
	}
	// The renamed profile keeps its slot in the list.
	if i := slices.Index(m.names, oldName); i >= 0 {
		m.names = slices.Clone(m.names)
		m.names[i] = newName
	}
	m.refresh(true)
	m.sidebar.Select(newName)
	if err != nil {
		m.toastError(fmt.Sprintf("Error saving app settings: %v", err))
	}
	m.toastSuccess(fmt.Sprintf("Renamed %s to %s", oldName, newName))
	m.statusBar.SetStatus("Renamed " + newName)
	m.syncStatusBar()
}

func renameMessage(err error) string {
	switch {
	case errors.Is(err, profiles.ErrEmptyName):
		return "Name cannot be empty"
	case errors.Is(err, profiles.ErrExists):
		return "A profile with that name already exists"
	case errors.Is(err, profiles.ErrInvalidName):
		return "Name cannot contain path separators or be settings.json"
	default:
		return fmt.Sprintf("Error renaming: %v", err)
	}
}

func (m *Model) delete(name string) {
	err := m.sw.Delete(name)
	if err != nil {
		m.toastError(fmt.Sprintf("Error deleting %s: %v", name, err))
	}
	m.refresh(false)
	if err == nil {
		m.toastSuccess("Deleted " + name)
		m.statusBar.SetStatus("Deleted " + name)
	}
	m.syncStatusBar()
}

func (m *Model) save() {
	if !m.buf.Loaded() {
		m.toastWarning("No profile selected")
		return
	}
	name := m.buf.Name()
	res, err := m.sw.Save(name, m.buf.Text())
	if err != nil {
		m.toastError(fmt.Sprintf("Save failed: %v", err))
		m.statusBar.SetStatus("Save failed")
		return
	}
	m.buf.MarkSaved(res.Content)
	m.editor.SetValue(res.Content)
	m.toastSuccess("Saved " + name)
	switch {
	case res.MirrorErr != nil:
		m.toastError(fmt.Sprintf("Error applying to Claude Code: %v", res.MirrorErr))
	case res.Mirrored:
		m.toastSuccess("Applied to Claude Code")
	}
	m.statusBar.SetStatus("Saved " + name)
	m.syncStatusBar()
}

func (m *Model) format() {
	err := m.buf.Format()
	switch {
	case errors.Is(err, editor.ErrNoSelection):
		m.toastWarning("No profile selected")
	case errors.Is(err, editor.ErrEmptyBuffer):
		m.toastWarning("Nothing to format")
	case err != nil:
		m.toastError(fmt.Sprintf("Format failed: %v", err))
	default:
		m.editor.SetValue(m.buf.Text())
		m.toastSuccess("Formatted")
		m.syncStatusBar()
	}
}

func (m *Model) setDefault(name string) {
	if name == "" {
		return
	}
	if m.sw.IsDefault(name) {
		m.toastWarning(name + " is already the default")
		return
	}
	if err := m.sw.SetDefault(name); err != nil {
		m.toastError(fmt.Sprintf("Error setting default: %v", err))
	} else {
		m.toastSuccess(name + " is now the default and applied to Claude Code")
	}
	m.sidebar.SetProfiles(m.names, m.sw.DefaultProfile())
}

func (m *Model) activateLocal(name string) {
	if name == "" {
		return
	}
	if err := m.sw.ActivateLocal(name); err != nil {
		m.toastError(fmt.Sprintf("Error activating: %v", err))
		return
	}
	m.toastSuccess(name + " copied to " + paths.ActiveSettingsName)
}

func (m *Model) changeStoreDir(input string) tea.Cmd {
	dir := strings.TrimSpace(input)
	if dir == "" {
		m.toastWarning("Directory cannot be empty")
		return nil
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	err := m.sw.ChangeStoreDir(dir)
	if err != nil {
		m.toastError(fmt.Sprintf("Error changing directory: %v", err))
	} else {
		m.toastSuccess("Profile directory: " + dir)
	}
	m.names = nil
	m.unload()
	m.refresh(false)
	m.syncStatusBar()
	if m.watchEnabled {
		return startWatcher(m.sw.Store().Dir())
	}
	return nil
}

func (m *Model) toggleTheme() {
	if _, err := m.sw.ToggleTheme(); err != nil {
		m.toastError(fmt.Sprintf("Error saving app settings: %v", err))
	}
	m.applyTheme()
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(m.sw.Settings().Theme)
	p := m.styles.Palette
	m.editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(p.Surface0)
	m.editor.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(p.Overlay0)
	m.editor.FocusedStyle.Text = lipgloss.NewStyle().Foreground(p.Text)
	m.editor.BlurredStyle.LineNumber = lipgloss.NewStyle().Foreground(p.Surface1)
	m.editor.BlurredStyle.Text = lipgloss.NewStyle().Foreground(p.Subtext0)
	m.editor.FocusedStyle.Placeholder = m.styles.Placeholder
	m.editor.BlurredStyle.Placeholder = m.styles.Placeholder
}

func (m *Model) copyToClipboard() {
	if !m.buf.Loaded() {
		m.toastWarning("No profile selected")
		return
	}
	if m.clipboard == nil {
		m.toastError("Clipboard unavailable")
		return
	}
	if err := m.clipboard(m.buf.Text()); err != nil {
		m.toastError(fmt.Sprintf("Error copying: %v", err))
		return
	}
	m.toastSuccess("Copied to clipboard")
}

// --- Toasts and status ---

func (m *Model) toastSuccess(msg string) { m.toasts.Push(ToastSuccess, msg, m.now()) }
func (m *Model) toastError(msg string)   { m.toasts.Push(ToastError, msg, m.now()) }
func (m *Model) toastWarning(msg string) { m.toasts.Push(ToastWarning, msg, m.now()) }

func (m *Model) syncStatusBar() {
	var modTime time.Time
	if m.buf.Loaded() {
		if info, err := m.sw.Store().Stat(m.buf.Name()); err == nil {
			modTime = info.ModTime
		}
	}
	m.statusBar.Update(m.buf.Name(), m.buf.Modified(), m.buf.CharCount(), modTime, m.now())
}

// --- Layout ---

func (m Model) tooSmall() bool {
	return m.ready && (m.width < MinWidth || m.height < MinHeight)
}

// distributeSize recalculates child component sizes from the terminal size.
func (m *Model) distributeSize() {
	m.statusBar.SetWidth(m.width)
	m.sidebar.SetHeight(m.height - 1)
	// Sidebar border and editor pane padding take one column each.
	m.editor.SetWidth(max(m.width-SidebarWidth-2, 10))
	// Status bar and editor title take one line each.
	m.editor.SetHeight(max(m.height-2, 1))
	if m.overlay.Active() {
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.tooSmall() {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nNeed at least %dx%d.\n\nq: quit",
			m.width, m.height, MinWidth, MinHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.sidebar.SetFocused(m.focus == FocusList)
	sidebarView := m.sidebar.View(m.styles)
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, m.editorView())
	frame := main + "\n" + m.statusBar.View(m.styles)

	frame = PlaceTopRight(frame, m.toasts.View(m.styles, max(m.width/2, 30)), m.width)
	if m.overlay.Active() {
		frame = Composite(frame, m.overlay.View(m.styles), m.width, m.height)
	}
	return frame
}

func (m Model) editorView() string {
	var title string
	if m.buf.Loaded() {
		title = m.styles.EditorTitle.Render("◉ " + m.buf.Name())
		if m.buf.Modified() {
			title += m.styles.EditorModified.Render("(modified)")
		}
		if m.sw.IsDefault(m.buf.Name()) {
			title += " " + m.styles.DefaultMarker.Render("★ default")
		}
	} else {
		title = m.styles.Placeholder.Render("No profile loaded")
	}

	var body string
	if m.buf.Loaded() {
		body = m.editor.View()
	} else {
		body = m.styles.Placeholder.Render("Select a profile and press Enter, or n for a new one.")
	}
	return m.styles.EditorPane.Render(title + "\n" + body)
}

// helpRow is one line of the help overlay; the key is drawn in the accent
// colour of its action.
type helpRow struct {
	key    string
	desc   string
	action Action
}

var helpRows = []helpRow{
	{"Enter", "open profile", ActionRefresh},
	{"n", "new profile", ActionAdd},
	{"r", "rename", ActionRename},
	{"x", "delete", ActionDelete},
	{"*", "set as default (applies to Claude Code)", ActionDefault},
	{"a", "copy into the store's settings.json", ActionActivate},
	{"/", "filter", ActionRefresh},
	{"o", "change profile directory", ActionRename},
	{"F5", "refresh and sync", ActionRefresh},
	{"t", "toggle theme", ActionFormat},
	{"Ctrl+S", "save", ActionSave},
	{"Ctrl+F", "format JSON", ActionFormat},
	{"Ctrl+Y", "copy editor text", ActionActivate},
	{"Tab/Esc", "switch pane", ActionRefresh},
	{"q", "quit", ActionWarning},
}

func helpText(styles Styles) string {
	var b strings.Builder
	for i, r := range helpRows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Action(r.action).Render(fmt.Sprintf("%-8s", r.key)))
		b.WriteString(" ")
		b.WriteString(r.desc)
	}
	return b.String()
}
