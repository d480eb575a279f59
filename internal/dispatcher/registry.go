package dispatcher

import (
	"sort"
	"sync"

	"github.com/dshills/calcstorm/internal/input"
)

// Handler executes one command.
type Handler interface {
	Handle(cmd input.Command) Result
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(cmd input.Command) Result

// Handle calls fn.
func (fn HandlerFunc) Handle(cmd input.Command) Result {
	return fn(cmd)
}

// Registry manages handler registration by exact command name.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates a handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler for a command name, replacing any existing
// registration for the same name.
func (r *Registry) Register(name string, h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
	return nil
}

// RegisterFunc adds a function handler for a command name.
func (r *Registry) RegisterFunc(name string, fn HandlerFunc) error {
	return r.Register(name, fn)
}

// Unregister removes the handler for a command name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, name)
}

// Get returns the handler for a command name, or nil.
func (r *Registry) Get(name string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[name]
}

// Has returns true if a handler is registered for the name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// List returns all registered command names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Clear removes all registered handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string]Handler)
}
