// Package key models keyboard input independently of the terminal
// library. The renderer backend translates raw terminal events into
// key.Event values; the keymap resolves those into commands.
package key
