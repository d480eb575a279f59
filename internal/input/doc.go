// Package input defines the normalized command set for the calculator.
//
// Every user gesture — a key press or a mouse click on a rendered
// button — is reduced to a Command before it reaches the dispatcher.
// This keeps the state-transition logic independent of the input
// source: the keymap produces Commands from key events and the
// renderer produces Commands from button hits, but downstream nothing
// can tell them apart except by Source.
package input
