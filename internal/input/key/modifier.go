package key

import "strings"

// Modifier is a bitmask of modifier keys.
type Modifier uint8

// Modifier flags.
const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new mask with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new mask with the given modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// HasCtrl returns true if Ctrl is pressed.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasMeta returns true if Meta (Cmd/Win) is pressed.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// String returns a "+"-joined list of modifier names.
func (m Modifier) String() string {
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}
