package app

import (
	"errors"
	"fmt"

	"github.com/dshills/calcstorm/internal/event/events"
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/input/key"
	"github.com/dshills/calcstorm/internal/renderer/backend"
)

// Run initializes the backend and processes events until quit.
// All state mutation happens on this goroutine; the poll goroutine
// only moves backend events onto a channel.
func (app *Application) Run() error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true

	if err := app.backend.Init(); err != nil {
		return fmt.Errorf("backend init: %w", err)
	}
	defer app.backend.Shutdown()

	if app.cfg.Mouse {
		app.backend.EnableMouse()
	}

	app.logger.Info("starting")
	app.renderer.Render(app.engine.State())

	go app.pollEvents()

	for {
		select {
		case ev := <-app.events:
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info("shutting down")
					return nil
				}
				return err
			}
		case <-app.done:
			return nil
		}
	}
}

// Stop asks the run loop to exit. Safe to call from any goroutine and
// more than once.
func (app *Application) Stop() {
	select {
	case <-app.done:
	default:
		close(app.done)
	}
}

// pollEvents moves backend events onto the loop channel.
func (app *Application) pollEvents() {
	for {
		ev := app.backend.PollEvent()
		select {
		case app.events <- ev:
		case <-app.done:
			return
		}
		if ev.Type == backend.EventNone {
			return
		}
	}
}

// handleBackendEvent routes one backend event.
// Returns ErrQuit when the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		return app.handleMouseEvent(ev)
	default:
		return nil
	}
}

// handleResize recomputes the layout and repaints.
func (app *Application) handleResize(ev backend.Event) error {
	app.renderer.Resize(ev.Width, ev.Height)
	app.renderer.Render(app.engine.State())
	return nil
}

// handleKeyEvent maps a key press through the keymap and dispatches
// the resulting command. Unmapped keys are ignored.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	keyEv, ok := convertKeyEvent(ev)
	if !ok {
		return nil
	}

	cmd, ok := app.keymap.Lookup(keyEv)
	if !ok {
		app.logger.Debug("unmapped key %s", keyEv)
		return nil
	}
	return app.dispatch(cmd)
}

// handleMouseEvent hit-tests left clicks against the button grid.
func (app *Application) handleMouseEvent(ev backend.Event) error {
	if ev.MouseButton != backend.MouseLeft {
		return nil
	}

	cmd, ok := app.renderer.Layout().ButtonAt(ev.MouseX, ev.MouseY)
	if !ok {
		return nil
	}
	return app.dispatch(cmd)
}

// dispatch runs one command and interprets the result.
func (app *Application) dispatch(cmd input.Command) error {
	result := app.dispatcher.Dispatch(cmd)

	switch {
	case result.IsQuit():
		_ = app.bus.Publish(events.QuitRequested{Reason: cmd.Source.String()})
		return ErrQuit
	case result.IsError():
		// Dispatch-level failure (unknown command, handler panic).
		// Calculator errors come back as OK results with the error in
		// the display; this path is for wiring bugs.
		app.logger.WithComponent("dispatcher").Error("%s: %v", cmd, result.Err)
		app.backend.Beep()
	case result.Err != nil:
		app.logger.Debug("recoverable: %s -> %v", cmd, result.Err)
	}
	return nil
}

// convertKeyEvent translates a backend key event into the keymap's
// event model.
func convertKeyEvent(ev backend.Event) (key.Event, bool) {
	mods := convertModifiers(ev.Mod)

	switch ev.Key {
	case backend.KeyRune:
		if ev.Rune == 0 {
			return key.Event{}, false
		}
		return key.NewRuneEvent(ev.Rune, mods), true
	case backend.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case backend.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case backend.KeyBackspace:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case backend.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case backend.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	default:
		return key.Event{}, false
	}
}

// convertModifiers translates backend modifier masks.
func convertModifiers(m backend.ModMask) key.Modifier {
	var mods key.Modifier
	if m.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if m.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if m.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if m.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
