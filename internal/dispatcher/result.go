package dispatcher

import "fmt"

// Status indicates the outcome of a dispatched command.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
	// StatusQuit indicates the application should shut down.
	StatusQuit
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling a command.
type Result struct {
	// Status indicates the result status.
	Status Status

	// Err contains any error that occurred.
	Err error

	// Message is an optional status message for display.
	Message string
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// IsQuit returns true if the result requests shutdown.
func (r Result) IsQuit() bool {
	return r.Status == StatusQuit
}

// OK returns a successful result.
func OK() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a no-effect result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Quit returns a shutdown result.
func Quit() Result {
	return Result{Status: StatusQuit}
}

// Error returns an error result wrapping err.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err, Message: err.Error()}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	err := fmt.Errorf(format, args...)
	return Result{Status: StatusError, Err: err, Message: err.Error()}
}
