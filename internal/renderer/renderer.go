package renderer

import (
	"sync"

	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/engine/tape"
	"github.com/dshills/calcstorm/internal/event"
	"github.com/dshills/calcstorm/internal/renderer/backend"
	"github.com/dshills/calcstorm/internal/renderer/core"
)

// Screen text constants.
const (
	HeaderTitle = "Calculator Pro"
	StatusReady = "Ready"

	tooSmallMessage = "window too small"
)

// DefaultHistorySize is the number of history lines kept on screen.
const DefaultHistorySize = 50

// Renderer paints the calculator screen into a backend.
type Renderer struct {
	mu         sync.Mutex
	backend    backend.Backend
	theme      Theme
	layout     Layout
	tape       *tape.Log
	historyMax int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the color theme.
func WithTheme(t Theme) Option {
	return func(r *Renderer) { r.theme = t }
}

// WithTape attaches the history log drawn in the history pane.
func WithTape(l *tape.Log) Option {
	return func(r *Renderer) { r.tape = l }
}

// WithHistorySize caps the number of history lines shown.
func WithHistorySize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.historyMax = n
		}
	}
}

// New creates a renderer for the backend. The layout is computed from
// the backend's current size.
func New(b backend.Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend:    b,
		theme:      DefaultTheme(),
		historyMax: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(r)
	}
	w, h := b.Size()
	r.layout = ComputeLayout(w, h)
	return r
}

// Resize recomputes the layout for a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layout = ComputeLayout(width, height)
}

// Layout returns the current layout for mouse hit testing.
func (r *Renderer) Layout() Layout {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layout
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// AttachBus re-renders on every calculator event, pulling a fresh
// state snapshot from stateFn.
func (r *Renderer) AttachBus(bus *event.Bus, stateFn func() engine.State) error {
	_, err := bus.SubscribeFunc("calc.*", func(any) error {
		r.Render(stateFn())
		return nil
	})
	return err
}

// Render repaints the whole screen for the given state.
func (r *Renderer) Render(st engine.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.backend
	b.Fill(core.RectFromSize(0, 0, r.layout.Height, r.layout.Width), r.theme.backgroundCell())

	if r.layout.TooSmall() {
		r.drawText(0, 0, tooSmallMessage, core.DefaultStyle())
		b.Show()
		return
	}

	r.drawHeader()
	r.drawDisplay(st)
	r.drawButtons()
	r.drawHistory()
	r.drawStatus(st)

	b.HideCursor()
	b.Show()
}

// drawHeader centers the title over the grid.
func (r *Renderer) drawHeader() {
	rect := r.layout.Header
	col := rect.Left + (rect.Width()-len(HeaderTitle))/2
	if col < rect.Left {
		col = rect.Left
	}
	r.drawText(rect.Top, col, HeaderTitle, r.theme.headerStyle())
}

// drawDisplay paints the display box: pending operator indicator on
// the left, display text right-aligned, truncated from the left when
// it overflows.
func (r *Renderer) drawDisplay(st engine.State) {
	rect := r.layout.Display
	r.fillRect(rect, ' ', r.theme.displayStyle())

	if !st.Pending.IsNone() {
		r.drawText(rect.Top, rect.Left, st.Pending.String(), r.theme.pendingStyle())
	}

	text := st.Display
	max := rect.Width() - 2
	if max < 1 {
		return
	}
	if len(text) > max {
		text = text[len(text)-max:]
	}
	r.drawText(rect.Top, rect.Right-len(text), text, r.theme.displayStyle())
}

// drawButtons paints the grid with centered labels.
func (r *Renderer) drawButtons() {
	for _, btn := range r.layout.Buttons {
		style := r.theme.buttonStyle(btn.Accent)
		r.fillRect(btn.Rect, ' ', style)
		col := btn.Rect.Left + (btn.Rect.Width()-len(btn.Label))/2
		r.drawText(btn.Rect.Top, col, btn.Label, style)
	}
}

// drawHistory paints the tape tail bottom-aligned in the history pane,
// newest entry last.
func (r *Renderer) drawHistory() {
	rect := r.layout.History
	if rect.IsEmpty() || r.tape == nil {
		return
	}

	max := rect.Height()
	if r.historyMax < max {
		max = r.historyMax
	}
	lines := r.tape.Lines(max)

	style := r.theme.historyStyle()
	row := rect.Bottom - len(lines)
	for _, line := range lines {
		if len(line) > rect.Width() {
			line = line[:rect.Width()]
		}
		r.drawText(row, rect.Left, line, style)
		row++
	}
}

// drawStatus paints the footer: "Ready", or the error text while the
// display shows an error.
func (r *Renderer) drawStatus(st engine.State) {
	rect := r.layout.Status
	text := StatusReady
	if st.IsError() {
		text = st.Display
	}
	if len(text) > rect.Width() {
		text = text[:rect.Width()]
	}
	r.drawText(rect.Top, rect.Left, text, r.theme.statusStyle(st.IsError()))
}

// drawText writes a string starting at (row, col).
func (r *Renderer) drawText(row, col int, text string, style core.Style) {
	for i, ch := range text {
		r.backend.SetCell(col+i, row, core.NewCell(ch, style))
	}
}

// fillRect fills a region with one rune.
func (r *Renderer) fillRect(rect core.ScreenRect, ch rune, style core.Style) {
	r.backend.Fill(rect, core.NewCell(ch, style))
}
