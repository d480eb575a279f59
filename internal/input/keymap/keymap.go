// Package keymap maps key events to calculator commands.
package keymap

import (
	"fmt"

	"github.com/dshills/calcstorm/internal/calc"
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/input/key"
)

// Keymap resolves key events to commands.
//
// Digits, operator symbols and the decimal point are resolved
// structurally from the rune; everything else goes through the binding
// table keyed on the event's canonical string form.
type Keymap struct {
	bindings map[string]input.Command
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[string]input.Command)}
}

// Bind associates a key spec with a command.
// The spec is validated through key.Parse.
func (k *Keymap) Bind(spec string, cmd input.Command) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	k.bindings[ev.String()] = cmd
	return nil
}

// BindName associates a key spec with a named argument-free command.
// This is the form used for configuration overrides.
func (k *Keymap) BindName(spec, name string) error {
	cmd, ok := input.ByName(name)
	if !ok {
		return fmt.Errorf("bind %q: unknown command %q", spec, name)
	}
	return k.Bind(spec, cmd)
}

// Unbind removes a binding.
func (k *Keymap) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("unbind %q: %w", spec, err)
	}
	delete(k.bindings, ev.String())
	return nil
}

// Len returns the number of explicit bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Lookup resolves a key event to a command.
// Explicit bindings win over the structural digit/operator mapping so
// that overrides can shadow a character.
func (k *Keymap) Lookup(ev key.Event) (input.Command, bool) {
	if cmd, ok := k.bindings[ev.String()]; ok {
		return cmd.WithSource(input.SourceKeyboard), true
	}

	if ev.IsRune() && !ev.IsModified() {
		r := ev.Rune
		switch {
		case r >= '0' && r <= '9':
			return input.Digit(int(r - '0')), true
		case r == '.':
			return input.Decimal(), true
		}
		if op, ok := calc.OperatorFromRune(r); ok {
			return input.Operator(op), true
		}
	}

	return input.Command{}, false
}
