package key

// Key identifies a keyboard key.
type Key uint8

// Keys the calculator distinguishes. Printable characters use KeyRune
// with the character in Event.Rune.
const (
	// KeyNone is an unrecognized key.
	KeyNone Key = iota
	// KeyRune is a printable character key.
	KeyRune
	// KeyEnter is the Enter/Return key.
	KeyEnter
	// KeyEscape is the Escape key.
	KeyEscape
	// KeyBackspace is the Backspace key.
	KeyBackspace
	// KeyDelete is the Delete key.
	KeyDelete
	// KeyTab is the Tab key.
	KeyTab
)

// String returns the canonical name of the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyTab:
		return "Tab"
	default:
		return "None"
	}
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
