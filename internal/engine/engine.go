package engine

import (
	"sync"

	"github.com/dshills/calcstorm/internal/engine/tape"
	"github.com/dshills/calcstorm/internal/event"
	"github.com/dshills/calcstorm/internal/event/events"
	"github.com/dshills/calcstorm/internal/input"
)

// Engine owns the calculator state and the history tape. Commands are
// applied through the pure reducer; completed evaluations are appended
// to the tape and state changes are published on the bus.
type Engine struct {
	mu    sync.Mutex
	state State
	tape  *tape.Log
	bus   *event.Bus
}

// Option configures an Engine.
type Option func(*Engine)

// WithBus attaches an event bus. Without one the engine stays silent.
func WithBus(b *event.Bus) Option {
	return func(e *Engine) { e.bus = b }
}

// WithTape uses an existing tape log instead of a fresh one.
func WithTape(l *tape.Log) Option {
	return func(e *Engine) { e.tape = l }
}

// New creates an engine in the initial state.
func New(opts ...Option) *Engine {
	e := &Engine{state: NewState()}
	for _, opt := range opts {
		opt(e)
	}
	if e.tape == nil {
		e.tape = tape.NewLog()
	}
	return e
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Tape returns the history log.
func (e *Engine) Tape() *tape.Log {
	return e.tape
}

// Apply reduces one command against the current state, records any
// completed evaluation on the tape, and publishes the resulting
// events. It returns the reducer outcome.
func (e *Engine) Apply(cmd input.Command) Outcome {
	e.mu.Lock()
	prev := e.state
	out := Reduce(e.state, cmd)
	e.state = out.State
	e.mu.Unlock()

	if out.Entry != nil {
		e.tape.Append(*out.Entry)
	}
	e.publish(prev, out, cmd)
	return out
}

// publish emits events describing the outcome.
func (e *Engine) publish(prev State, out Outcome, cmd input.Command) {
	if e.bus == nil {
		return
	}

	if out.Entry != nil {
		_ = e.bus.Publish(events.Evaluated{Entry: *out.Entry})
	}
	if out.Err != nil {
		_ = e.bus.Publish(events.CalcError{Message: out.State.Display, Err: out.Err})
	}
	if cmd.Kind == input.KindClear {
		_ = e.bus.Publish(events.Cleared{})
	}
	if out.State.Display != prev.Display || out.State.Pending != prev.Pending {
		_ = e.bus.Publish(events.DisplayChanged{
			Text:    out.State.Display,
			Pending: out.State.Pending.String(),
		})
	}
}
