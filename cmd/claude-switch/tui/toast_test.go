package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToastsPrune(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var ts Toasts
	ts.Push(ToastSuccess, "saved", start)
	ts.Push(ToastError, "failed", start.Add(2*time.Second))
	assert.Equal(t, 2, ts.Len())

	ts.Prune(start.Add(ToastDuration - time.Millisecond))
	assert.Equal(t, 2, ts.Len())

	ts.Prune(start.Add(ToastDuration))
	assert.Equal(t, 1, ts.Len())
	assert.Equal(t, "failed", ts.Items()[0].Message)

	ts.Prune(start.Add(time.Minute))
	assert.Zero(t, ts.Len())
}

func TestToastsView(t *testing.T) {
	now := time.Now()
	var ts Toasts
	assert.Empty(t, ts.View(NewStyles("Dark"), 40))

	ts.Push(ToastSuccess, "saved", now)
	ts.Push(ToastError, "broken", now)
	ts.Push(ToastWarning, "careful", now)
	view := ts.View(NewStyles("Light"), 40)
	assert.Contains(t, view, "✓ saved")
	assert.Contains(t, view, "✗ broken")
	assert.Contains(t, view, "! careful")
}
