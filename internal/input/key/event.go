package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if a non-Shift modifier is pressed.
// For character events Shift is part of the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// String returns a canonical representation used as the keymap lookup
// form. Examples: "5", "+", "Enter", "BS", "C-c".
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return strings.Join(parts, "-")
}
