// Package event provides the in-process event bus that decouples the
// calculator engine from its observers.
//
// The engine publishes typed payloads (defined in the events
// subpackage) after every state change; the renderer and other
// observers subscribe by topic. Delivery is synchronous on the
// publisher's goroutine, which matches the single-threaded run loop:
// an event is fully delivered before the next input is processed.
package event
