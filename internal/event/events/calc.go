// Package events defines the typed payloads published on the event bus.
package events

import (
	"github.com/dshills/calcstorm/internal/engine/tape"
	"github.com/dshills/calcstorm/internal/event"
)

// Calculator event topics.
const (
	// TopicCalcDisplay is published whenever the display text changes.
	TopicCalcDisplay event.Topic = "calc.display"

	// TopicCalcEvaluated is published when an evaluation completes and
	// an entry is appended to the tape.
	TopicCalcEvaluated event.Topic = "calc.evaluated"

	// TopicCalcCleared is published when the calculator state is reset.
	TopicCalcCleared event.Topic = "calc.cleared"

	// TopicCalcError is published when input produces a recoverable
	// error (invalid number, division by zero).
	TopicCalcError event.Topic = "calc.error"
)

// DisplayChanged is published whenever the display text changes.
type DisplayChanged struct {
	// Text is the new display text.
	Text string

	// Pending is the symbol of the pending operator, if any.
	Pending string
}

// EventTopic implements event.TopicProvider.
func (DisplayChanged) EventTopic() event.Topic { return TopicCalcDisplay }

// Evaluated is published when an evaluation completes.
type Evaluated struct {
	// Entry is the tape entry that was appended.
	Entry tape.Entry
}

// EventTopic implements event.TopicProvider.
func (Evaluated) EventTopic() event.Topic { return TopicCalcEvaluated }

// Cleared is published when the calculator state is reset.
type Cleared struct{}

// EventTopic implements event.TopicProvider.
func (Cleared) EventTopic() event.Topic { return TopicCalcCleared }

// CalcError is published when input produces a recoverable error.
type CalcError struct {
	// Message is the display-facing error text.
	Message string

	// Err is the underlying error.
	Err error
}

// EventTopic implements event.TopicProvider.
func (CalcError) EventTopic() event.Topic { return TopicCalcError }
