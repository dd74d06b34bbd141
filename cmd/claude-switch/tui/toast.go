package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// ToastKind selects the toast colour.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastWarning
)

// Toast is a transient notification.
type Toast struct {
	Kind    ToastKind
	Message string
	Spawned time.Time
}

// Toasts is the queue of visible notifications, oldest first.
type Toasts struct {
	items []Toast
}

// Push appends a toast spawned at now.
func (t *Toasts) Push(kind ToastKind, message string, now time.Time) {
	t.items = append(t.items, Toast{Kind: kind, Message: message, Spawned: now})
}

// Prune drops toasts older than ToastDuration.
func (t *Toasts) Prune(now time.Time) {
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Sub(item.Spawned) < ToastDuration {
			kept = append(kept, item)
		}
	}
	t.items = kept
}

// Items returns the visible toasts.
func (t Toasts) Items() []Toast {
	return t.items
}

// Len returns the number of visible toasts.
func (t Toasts) Len() int {
	return len(t.items)
}

// View renders the toasts stacked vertically, newest at the bottom.
func (t Toasts) View(styles Styles, maxWidth int) string {
	if len(t.items) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(t.items))
	for _, item := range t.items {
		style := styles.ToastSuccess
		icon := "✓"
		switch item.Kind {
		case ToastError:
			style, icon = styles.ToastError, "✗"
		case ToastWarning:
			style, icon = styles.ToastWarning, "!"
		}
		boxes = append(boxes, style.MaxWidth(maxWidth).Render(icon+" "+item.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}
