// Package engine implements the calculator's state machine.
//
// State is an explicit value type and Reduce is a pure function from
// (State, Command) to an Outcome; the Engine wraps them with the
// history tape and event publication so that rendering stays a
// separate, side-effect-only layer.
package engine

import "github.com/dshills/calcstorm/internal/calc"

// Display texts for the recoverable error states. These are the only
// display values that do not parse as numbers.
const (
	// DisplayError is shown when the display text could not be parsed
	// as a number.
	DisplayError = "Error"

	// DisplayDivZero is shown when a division or modulo by zero is
	// attempted.
	DisplayDivZero = "Err: Div by 0"
)

// State is the complete calculator state.
type State struct {
	// Display is the text shown to the user. Always parses as a
	// number except in the explicit error states.
	Display string

	// Accumulator is the stored intermediate result, used as the left
	// operand of the next evaluation.
	Accumulator float64

	// Pending is the operator awaiting its right-hand operand.
	Pending calc.Operator

	// StartNew is true when the next digit or decimal press begins a
	// fresh number instead of extending the display.
	StartNew bool
}

// NewState returns the initial calculator state.
func NewState() State {
	return State{
		Display:  "0",
		StartNew: true,
	}
}

// IsError returns true while the display shows an error state.
func (s State) IsError() bool {
	return s.Display == DisplayError || s.Display == DisplayDivZero
}
