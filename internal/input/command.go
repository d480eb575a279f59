package input

import (
	"fmt"

	"github.com/dshills/calcstorm/internal/calc"
)

// Kind classifies a command.
type Kind uint8

const (
	// KindNone is an empty command.
	KindNone Kind = iota
	// KindDigit enters a single digit 0-9.
	KindDigit
	// KindDecimal enters the decimal point.
	KindDecimal
	// KindOperator selects a pending arithmetic operator.
	KindOperator
	// KindEquals completes the pending operation.
	KindEquals
	// KindClear resets the calculator state.
	KindClear
	// KindQuit exits the application.
	KindQuit
)

// Source indicates the origin of a command.
type Source uint8

const (
	// SourceKeyboard indicates the command originated from a key press.
	SourceKeyboard Source = iota
	// SourceMouse indicates the command originated from a button click.
	SourceMouse
)

// String returns a string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	default:
		return "keyboard"
	}
}

// Command is a normalized input event ready for dispatch.
type Command struct {
	// Kind classifies the command.
	Kind Kind

	// Digit is the digit value for KindDigit commands (0-9).
	Digit int

	// Op is the operator for KindOperator commands.
	Op calc.Operator

	// Source indicates where the command originated.
	Source Source
}

// Command name constants used by the dispatcher registry.
const (
	NameDigit    = "calc.digit"
	NameDecimal  = "calc.decimal"
	NameOperator = "calc.operator"
	NameEquals   = "calc.equals"
	NameClear    = "calc.clear"
	NameQuit     = "app.quit"
)

// Digit creates a digit command. d must be in 0-9.
func Digit(d int) Command {
	return Command{Kind: KindDigit, Digit: d}
}

// Decimal creates a decimal-point command.
func Decimal() Command {
	return Command{Kind: KindDecimal}
}

// Operator creates an operator command.
func Operator(op calc.Operator) Command {
	return Command{Kind: KindOperator, Op: op}
}

// Equals creates an equals command.
func Equals() Command {
	return Command{Kind: KindEquals}
}

// Clear creates a clear command.
func Clear() Command {
	return Command{Kind: KindClear}
}

// Quit creates a quit command.
func Quit() Command {
	return Command{Kind: KindQuit}
}

// WithSource returns a copy of the command with the given source.
func (c Command) WithSource(src Source) Command {
	c.Source = src
	return c
}

// IsZero returns true for the empty command.
func (c Command) IsZero() bool {
	return c.Kind == KindNone
}

// Name returns the dispatcher registry name for the command.
func (c Command) Name() string {
	switch c.Kind {
	case KindDigit:
		return NameDigit
	case KindDecimal:
		return NameDecimal
	case KindOperator:
		return NameOperator
	case KindEquals:
		return NameEquals
	case KindClear:
		return NameClear
	case KindQuit:
		return NameQuit
	default:
		return ""
	}
}

// String returns a human-readable representation for logs.
func (c Command) String() string {
	switch c.Kind {
	case KindDigit:
		return fmt.Sprintf("%s(%d)", NameDigit, c.Digit)
	case KindOperator:
		return fmt.Sprintf("%s(%s)", NameOperator, c.Op)
	default:
		if name := c.Name(); name != "" {
			return name
		}
		return "none"
	}
}

// ByName returns the argument-free command registered under name.
// Digit and operator commands carry arguments and cannot be produced
// from a bare name; they return false here.
func ByName(name string) (Command, bool) {
	switch name {
	case NameDecimal:
		return Decimal(), true
	case NameEquals:
		return Equals(), true
	case NameClear:
		return Clear(), true
	case NameQuit:
		return Quit(), true
	default:
		return Command{}, false
	}
}
