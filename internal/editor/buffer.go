package editor

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ruminaider/claude-switch/internal/profiles"
)

var (
	// ErrEmptyBuffer is returned when formatting a blank buffer.
	ErrEmptyBuffer = errors.New("editor content is empty")
	// ErrNoSelection is returned when no profile is loaded.
	ErrNoSelection = errors.New("no profile selected")
)

// State is the lifecycle of the editor buffer.
type State int

const (
	Unloaded State = iota
	Clean          // loaded, text equals the last loaded or saved snapshot
	Dirty          // loaded, text differs from the snapshot
)

// String returns a short label for the state.
func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "modified"
	default:
		return "unloaded"
	}
}

// Buffer holds the text of the profile being edited and the snapshot it is
// compared against.
type Buffer struct {
	name     string
	text     string
	snapshot string
	loaded   bool
}

// Load replaces the buffer with a profile's content and snapshots it.
func (b *Buffer) Load(name, content string) {
	b.name = name
	b.text = content
	b.snapshot = content
	b.loaded = true
}

// Unload discards the buffer, including unsaved edits.
func (b *Buffer) Unload() {
	*b = Buffer{}
}

// Rename follows a profile rename without touching the text.
func (b *Buffer) Rename(name string) {
	if b.loaded {
		b.name = name
	}
}

// SetText records an edit.
func (b *Buffer) SetText(text string) {
	b.text = text
}

// MarkSaved makes content both the text and the snapshot.
func (b *Buffer) MarkSaved(content string) {
	b.text = content
	b.snapshot = content
}

// Format pretty-prints the text in place. On error the text is unchanged.
func (b *Buffer) Format() error {
	if !b.loaded {
		return ErrNoSelection
	}
	if strings.TrimSpace(b.text) == "" {
		return ErrEmptyBuffer
	}
	formatted, err := profiles.Format(b.text)
	if err != nil {
		return err
	}
	b.text = formatted
	return nil
}

func (b Buffer) Name() string   { return b.name }
func (b Buffer) Text() string   { return b.text }
func (b Buffer) Loaded() bool   { return b.loaded }
func (b Buffer) Modified() bool { return b.loaded && b.text != b.snapshot }

// State derives the lifecycle state.
func (b Buffer) State() State {
	switch {
	case !b.loaded:
		return Unloaded
	case b.Modified():
		return Dirty
	default:
		return Clean
	}
}

// CharCount counts characters, not bytes.
func (b Buffer) CharCount() int {
	return utf8.RuneCountInString(b.text)
}
