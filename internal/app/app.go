package app

import (
	"fmt"

	"github.com/dshills/calcstorm/internal/config"
	"github.com/dshills/calcstorm/internal/dispatcher"
	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/event"
	"github.com/dshills/calcstorm/internal/input/keymap"
	"github.com/dshills/calcstorm/internal/renderer"
	"github.com/dshills/calcstorm/internal/renderer/backend"
	"github.com/dshills/calcstorm/internal/renderer/core"
)

// Options configures the application.
type Options struct {
	// Config is the parsed configuration. Zero value gets defaults.
	Config config.Config

	// Backend is the display backend. Required; the terminal backend
	// for the binary, NullBackend in tests.
	Backend backend.Backend

	// Logger receives application logs. Defaults to the standard
	// stderr logger at the configured level.
	Logger *Logger
}

// Application wires the calculator subsystems together and owns the
// event loop.
type Application struct {
	logger     *Logger
	cfg        config.Config
	bus        *event.Bus
	engine     *engine.Engine
	dispatcher *dispatcher.Dispatcher
	keymap     *keymap.Keymap
	renderer   *renderer.Renderer
	backend    backend.Backend

	events  chan backend.Event
	done    chan struct{}
	running bool
}

// New builds an application from options.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}

	cfg := opts.Config
	if cfg.HistorySize == 0 {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(LoggerConfig{
			Level:  ParseLogLevel(cfg.LogLevel),
			Prefix: "calcstorm",
		})
	}

	app := &Application{
		logger:  logger,
		cfg:     cfg,
		backend: opts.Backend,
		events:  make(chan backend.Event, 64),
		done:    make(chan struct{}),
	}

	app.bus = event.NewBus(event.WithPanicHandler(func(ev any, recovered any) {
		logger.WithComponent("bus").Error("subscriber panic on %T: %v", ev, recovered)
	}))

	app.engine = engine.New(engine.WithBus(app.bus))

	app.dispatcher = dispatcher.NewWithDefaults(dispatcher.WithBus(app.bus))
	if err := dispatcher.RegisterCalculator(app.dispatcher, app.engine); err != nil {
		return nil, fmt.Errorf("register handlers: %w", err)
	}

	km := keymap.Default()
	for spec, name := range cfg.Bindings {
		if err := km.BindName(spec, name); err != nil {
			logger.WithComponent("keymap").Warn("ignoring binding: %v", err)
		}
	}
	app.keymap = km

	app.renderer = renderer.New(opts.Backend,
		renderer.WithTheme(buildTheme(cfg.Theme, logger)),
		renderer.WithTape(app.engine.Tape()),
		renderer.WithHistorySize(cfg.HistorySize),
	)
	if err := app.renderer.AttachBus(app.bus, app.engine.State); err != nil {
		return nil, fmt.Errorf("attach renderer: %w", err)
	}

	return app, nil
}

// Engine returns the calculator engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// buildTheme applies config color overrides to the built-in theme.
// Malformed colors are logged and skipped so one typo does not blank
// the screen.
func buildTheme(tc config.ThemeColors, logger *Logger) renderer.Theme {
	theme := renderer.DefaultTheme()

	apply := func(hex string, dst *core.Color) {
		if hex == "" {
			return
		}
		c, err := core.ColorFromHex(hex)
		if err != nil {
			logger.WithComponent("theme").Warn("ignoring color: %v", err)
			return
		}
		*dst = c
	}

	apply(tc.Background, &theme.Background)
	apply(tc.HeaderFg, &theme.HeaderFg)
	apply(tc.DisplayFg, &theme.DisplayFg)
	apply(tc.DisplayBg, &theme.DisplayBg)
	apply(tc.ButtonFg, &theme.ButtonFg)
	apply(tc.ButtonBg, &theme.ButtonBg)
	apply(tc.AccentBg, &theme.AccentBg)
	apply(tc.HistoryFg, &theme.HistoryFg)
	apply(tc.StatusFg, &theme.StatusFg)
	apply(tc.ErrorFg, &theme.ErrorFg)

	return theme
}
