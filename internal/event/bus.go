package event

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Handler receives published events.
type Handler interface {
	Handle(ev any) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev any) error

// Handle calls fn.
func (fn HandlerFunc) Handle(ev any) error {
	return fn(ev)
}

// Subscription represents an active topic subscription.
type Subscription struct {
	id      uint64
	pattern Topic
	handler Handler
}

// Pattern returns the subscription's topic pattern.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// Stats holds counters for bus activity.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerErrors uint64
	HandlerPanics uint64
	Subscribers   int
}

// Bus delivers events synchronously to topic subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID atomic.Uint64

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
	handlerPanics atomic.Uint64

	// panicHandler is invoked when a subscriber panics.
	panicHandler func(ev any, recovered any)
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets the callback invoked when a subscriber panics.
func WithPanicHandler(fn func(ev any, recovered any)) BusOption {
	return func(b *Bus) { b.panicHandler = fn }
}

// NewBus creates an event bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for topics matching pattern.
func (b *Bus) Subscribe(pattern Topic, h Handler) (*Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:      b.nextID.Add(1),
		pattern: pattern,
		handler: h,
	}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return sub, nil
}

// SubscribeFunc registers a function handler for topics matching pattern.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc) (*Subscription, error) {
	return b.Subscribe(pattern, fn)
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers ev to every matching subscriber in subscription
// order. The payload must implement TopicProvider. A panicking
// subscriber is recovered and counted; remaining subscribers still run.
// The first handler error is returned after all deliveries complete.
func (b *Bus) Publish(ev any) error {
	tp, ok := ev.(TopicProvider)
	if !ok {
		return ErrUnknownEvent
	}
	topic := tp.EventTopic()

	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if topic.Match(s.pattern) {
			subs = append(subs, s)
		}
	}
	b.mu.RUnlock()

	b.published.Add(1)

	var firstErr error
	for _, s := range subs {
		err := b.deliver(s, ev)
		switch {
		case errors.Is(err, errHandlerPanicked):
			// Counted in deliver; not a delivery and not a handler error.
		case err != nil:
			b.handlerErrors.Add(1)
			if firstErr == nil {
				firstErr = err
			}
		default:
			b.delivered.Add(1)
		}
	}
	return firstErr
}

// errHandlerPanicked marks a delivery aborted by a subscriber panic.
var errHandlerPanicked = errors.New("event: handler panicked")

// deliver invokes a single handler with panic recovery.
func (b *Bus) deliver(s *Subscription, ev any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			if b.panicHandler != nil {
				b.panicHandler(ev, r)
			}
			err = errHandlerPanicked
		}
	}()
	return s.handler.Handle(ev)
}

// Stats returns a snapshot of bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerErrors: b.handlerErrors.Load(),
		HandlerPanics: b.handlerPanics.Load(),
		Subscribers:   n,
	}
}
