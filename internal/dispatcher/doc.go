// Package dispatcher routes named commands to registered handlers.
//
// Input layers (keyboard, mouse) translate raw events into commands;
// the dispatcher looks up the handler registered for the command's
// name and executes it with panic recovery. Handlers return a Result
// describing what happened so the caller can decide whether to
// redraw, report an error, or shut down.
package dispatcher
