package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler is registered for a command name.
	ErrNoHandler = errors.New("no handler for command")

	// ErrNilHandler indicates a nil handler was registered.
	ErrNilHandler = errors.New("handler must not be nil")
)
