package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/calcstorm/internal/calc"
	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/event"
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/renderer/backend"
)

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("backend init: %v", err)
	}
	return New(b, opts...), b
}

func TestRenderInitialState(t *testing.T) {
	r, b := newTestRenderer(t)
	r.Render(engine.NewState())

	if got := b.Row(0); !strings.Contains(got, HeaderTitle) {
		t.Errorf("header row = %q, want it to contain %q", got, HeaderTitle)
	}
	if got := b.Row(2); !strings.HasSuffix(got, "0") {
		t.Errorf("display row = %q, want right-aligned 0", got)
	}
	if got := b.Row(22); !strings.Contains(got, StatusReady) {
		t.Errorf("status row = %q, want %q", got, StatusReady)
	}
}

func TestRenderButtonLabels(t *testing.T) {
	r, b := newTestRenderer(t)
	r.Render(engine.NewState())

	rows := map[int][]string{
		4: {"C", "%", "/", "*"},
		5: {"7", "8", "9", "-"},
		6: {"4", "5", "6", "+"},
		7: {"1", "2", "3", "="},
		8: {"0", "."},
	}
	for row, labels := range rows {
		got := b.Row(row)
		for _, label := range labels {
			if !strings.Contains(got, label) {
				t.Errorf("row %d = %q, missing button %q", row, got, label)
			}
		}
	}
}

func TestRenderPendingIndicator(t *testing.T) {
	r, b := newTestRenderer(t)

	st := engine.State{Display: "5", Accumulator: 5, Pending: calc.OpAdd, StartNew: true}
	r.Render(st)

	row := b.Row(2)
	if !strings.HasPrefix(strings.TrimLeft(row, " "), "+") {
		t.Errorf("display row = %q, want leading pending indicator +", row)
	}
	if !strings.HasSuffix(row, "5") {
		t.Errorf("display row = %q, want right-aligned 5", row)
	}
}

func TestRenderErrorStatus(t *testing.T) {
	r, b := newTestRenderer(t)

	st := engine.State{Display: engine.DisplayDivZero, StartNew: true}
	r.Render(st)

	if got := b.Row(22); !strings.Contains(got, engine.DisplayDivZero) {
		t.Errorf("status row = %q, want %q", got, engine.DisplayDivZero)
	}
	if got := b.Row(22); strings.Contains(got, StatusReady) {
		t.Errorf("status row = %q, must not show %q in error state", got, StatusReady)
	}
}

func TestRenderHistoryPane(t *testing.T) {
	e := engine.New()
	r, b := newTestRenderer(t, WithTape(e.Tape()))

	for _, cmd := range []input.Command{
		input.Digit(5),
		input.Operator(calc.OpAdd),
		input.Digit(3),
		input.Equals(),
		input.Operator(calc.OpMultiply),
		input.Digit(2),
		input.Equals(),
	} {
		e.Apply(cmd)
	}
	r.Render(e.State())

	var screen []string
	for y := 0; y < 24; y++ {
		screen = append(screen, b.Row(y))
	}
	all := strings.Join(screen, "\n")

	if !strings.Contains(all, "5 + 3 = 8") {
		t.Errorf("history missing first entry:\n%s", all)
	}
	if !strings.Contains(all, "8 * 2 = 16") {
		t.Errorf("history missing second entry:\n%s", all)
	}

	// Newest at the bottom.
	var first, second int
	for y, row := range screen {
		if strings.Contains(row, "5 + 3 = 8") {
			first = y
		}
		if strings.Contains(row, "8 * 2 = 16") {
			second = y
		}
	}
	if second != first+1 {
		t.Errorf("entries at rows %d and %d, want adjacent newest-last", first, second)
	}
}

func TestRenderLongDisplayTruncatesFromLeft(t *testing.T) {
	r, b := newTestRenderer(t)

	st := engine.State{Display: "123456789012345678901234567890"}
	r.Render(st)

	row := b.Row(2)
	if !strings.HasSuffix(row, "1234567890") {
		t.Errorf("display row = %q, want the rightmost digits kept", row)
	}
	if strings.Contains(row, "1234567890123456789012") {
		t.Errorf("display row = %q, want truncation", row)
	}
}

func TestRenderTooSmall(t *testing.T) {
	b := backend.NewNullBackend(20, 4)
	if err := b.Init(); err != nil {
		t.Fatalf("backend init: %v", err)
	}
	r := New(b)

	// Must not panic or draw out of bounds.
	r.Render(engine.NewState())
	if got := b.Row(0); !strings.Contains(got, "too small") {
		t.Errorf("row 0 = %q, want size warning", got)
	}
}

func TestRendererResize(t *testing.T) {
	r, _ := newTestRenderer(t)

	r.Resize(100, 40)
	l := r.Layout()
	if l.Width != 100 || l.Height != 40 {
		t.Errorf("layout size = %dx%d, want 100x40", l.Width, l.Height)
	}

	r.Resize(5, 3)
	if !r.Layout().TooSmall() {
		t.Error("5x3 layout should be too small")
	}
}

func TestAttachBusRerenders(t *testing.T) {
	bus := event.NewBus()
	e := engine.New(engine.WithBus(bus))
	r, b := newTestRenderer(t, WithTape(e.Tape()))

	if err := r.AttachBus(bus, e.State); err != nil {
		t.Fatalf("AttachBus: %v", err)
	}

	e.Apply(input.Digit(7))

	if got := b.Row(2); !strings.HasSuffix(got, "7") {
		t.Errorf("display row = %q, want 7 after bus-driven render", got)
	}
}
