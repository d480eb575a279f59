package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// specialNames maps spec names to keys. Lookup is case-insensitive.
var specialNames = map[string]Key{
	"enter":     KeyEnter,
	"cr":        KeyEnter,
	"return":    KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"tab":       KeyTab,
}

// Parse parses a key specification string into an Event.
//
// Specs are a single character ("5", "+", "c"), a special key name
// ("Enter", "Esc", "BS"), or either form prefixed with modifiers
// ("C-c", "A-Enter"). The word "Space" names the space character.
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	mods := ModNone
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C':
			mods = mods.With(ModCtrl)
		case 'A':
			mods = mods.With(ModAlt)
		case 'S':
			mods = mods.With(ModShift)
		case 'M':
			mods = mods.With(ModMeta)
		default:
			return Event{}, fmt.Errorf("unknown modifier %q in key spec %q", rest[0], spec)
		}
		rest = rest[2:]
	}

	if rest == "" {
		return Event{}, fmt.Errorf("missing key in spec %q", spec)
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}, nil
	}

	if strings.EqualFold(rest, "space") {
		return Event{Key: KeyRune, Rune: ' ', Modifiers: mods}, nil
	}

	if k, ok := specialNames[strings.ToLower(rest)]; ok {
		return Event{Key: k, Modifiers: mods}, nil
	}

	return Event{}, fmt.Errorf("unknown key %q in spec %q", rest, spec)
}
