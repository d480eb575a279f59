package dispatcher

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/calcstorm/internal/event"
	"github.com/dshills/calcstorm/internal/event/events"
	"github.com/dshills/calcstorm/internal/input"
)

// Config holds dispatcher configuration.
type Config struct {
	// RecoverFromPanic enables panic recovery around handlers.
	RecoverFromPanic bool

	// EnableMetrics enables per-command dispatch counters.
	EnableMetrics bool
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		EnableMetrics:    true,
	}
}

// Dispatcher routes commands to handlers by name.
type Dispatcher struct {
	registry *Registry
	config   Config
	metrics  *Metrics
	bus      *event.Bus
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBus attaches an event bus; each dispatch publishes an
// input.command event.
func WithBus(b *event.Bus) Option {
	return func(d *Dispatcher) { d.bus = b }
}

// New creates a dispatcher with the given configuration.
func New(config Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults(opts ...Option) *Dispatcher {
	return New(DefaultConfig(), opts...)
}

// Register adds a handler for a command name.
func (d *Dispatcher) Register(name string, h Handler) error {
	return d.registry.Register(name, h)
}

// RegisterFunc adds a function handler for a command name.
func (d *Dispatcher) RegisterFunc(name string, fn HandlerFunc) error {
	return d.registry.RegisterFunc(name, fn)
}

// Unregister removes the handler for a command name.
func (d *Dispatcher) Unregister(name string) {
	d.registry.Unregister(name)
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector. Nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Dispatch executes the handler registered for the command's name.
func (d *Dispatcher) Dispatch(cmd input.Command) Result {
	start := time.Now()
	name := cmd.Name()

	h := d.registry.Get(name)
	if h == nil {
		return Result{Status: StatusError, Err: fmt.Errorf("%w: %s", ErrNoHandler, name)}
	}

	var result Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, cmd)
	} else {
		result = h.Handle(cmd)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(name, time.Since(start), result.Status)
	}
	if d.bus != nil {
		_ = d.bus.Publish(events.CommandDispatched{
			Name:   name,
			Source: cmd.Source.String(),
		})
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h Handler, cmd input.Command) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = Errorf("handler panic for %s: %v\n%s", cmd.Name(), r, string(stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic(cmd.Name())
			}
		}
	}()

	return h.Handle(cmd)
}
