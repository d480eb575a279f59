package keymap

import "github.com/dshills/calcstorm/internal/input"

// defaultBindings are the built-in non-structural bindings.
// Digits, operators and the decimal point need no entries; Lookup
// resolves them from the rune directly.
var defaultBindings = []struct {
	spec string
	cmd  input.Command
}{
	{"=", input.Equals()},
	{"Enter", input.Equals()},
	{"BS", input.Clear()},
	{"c", input.Clear()},
	{"C", input.Clear()},
	{"q", input.Quit()},
	{"Esc", input.Quit()},
	{"C-c", input.Quit()},
}

// Default returns the keymap with the built-in bindings installed.
func Default() *Keymap {
	k := New()
	for _, b := range defaultBindings {
		// Specs are static and known-valid.
		if err := k.Bind(b.spec, b.cmd); err != nil {
			panic(err)
		}
	}
	return k
}
