package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/calcstorm/internal/renderer/core"
)

func TestNullBackendCells(t *testing.T) {
	b := NewNullBackend(20, 5)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	style := core.DefaultStyle().Bold()
	b.SetCell(2, 1, core.NewCell('8', style))

	got := b.GetCell(2, 1)
	if got.Rune != '8' || !got.Style.Equals(style) {
		t.Errorf("GetCell = %+v", got)
	}

	// Out-of-bounds access is safe.
	b.SetCell(-1, 0, core.NewCell('x', style))
	b.SetCell(100, 100, core.NewCell('x', style))
	if c := b.GetCell(100, 100); !c.IsEmpty() {
		t.Errorf("out-of-bounds GetCell = %+v, want empty", c)
	}
}

func TestNullBackendFillAndRow(t *testing.T) {
	b := NewNullBackend(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b.Fill(core.RectFromSize(1, 2, 1, 3), core.NewCell('=', core.DefaultStyle()))
	if got := b.Row(1); got != "  ===" {
		t.Errorf("Row(1) = %q, want %q", got, "  ===")
	}

	b.Clear()
	if got := b.Row(1); got != "" {
		t.Errorf("Row(1) after Clear = %q, want empty", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: '5'})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != '5' {
		t.Errorf("event = %+v", ev)
	}

	b.Resize(20, 6)
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 6 {
		t.Errorf("resize event = %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 6 {
		t.Errorf("Size = %dx%d, want 20x6", w, h)
	}
}

func TestConvertKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{
			"digit rune",
			tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone),
			Event{Type: EventKey, Key: KeyRune, Rune: '7'},
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			Event{Type: EventKey, Key: KeyEnter},
		},
		{
			"escape",
			tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			Event{Type: EventKey, Key: KeyEscape},
		},
		{
			"backspace2",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			Event{Type: EventKey, Key: KeyBackspace},
		},
		{
			"ctrl-c normalized to rune",
			tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			Event{Type: EventKey, Key: KeyRune, Rune: 'c', Mod: ModCtrl},
		},
		{
			"shifted rune keeps modifier",
			tcell.NewEventKey(tcell.KeyRune, '*', tcell.ModShift),
			Event{Type: EventKey, Key: KeyRune, Rune: '*', Mod: ModShift},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertKeyEvent(tt.ev); got != tt.want {
				t.Errorf("convertKeyEvent = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvertMouseButton(t *testing.T) {
	tests := []struct {
		mask tcell.ButtonMask
		want MouseButton
	}{
		{tcell.Button1, MouseLeft},
		{tcell.Button2, MouseMiddle},
		{tcell.Button3, MouseRight},
		{tcell.WheelUp, MouseWheelUp},
		{tcell.WheelDown, MouseWheelDown},
		{0, MouseNone},
	}
	for _, tt := range tests {
		if got := convertMouseButton(tt.mask); got != tt.want {
			t.Errorf("convertMouseButton(%v) = %v, want %v", tt.mask, got, tt.want)
		}
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	s := core.NewStyle(core.ColorFromRGB(30, 36, 51), core.ColorFromRGB(200, 200, 200)).Bold()
	got := convertTcellStyle(convertStyle(s))
	if !got.Equals(s) {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}

	// Default style survives too.
	def := core.DefaultStyle()
	if got := convertTcellStyle(convertStyle(def)); !got.Equals(def) {
		t.Errorf("default round trip = %+v", got)
	}
}

func TestConvertModRoundTrip(t *testing.T) {
	for _, m := range []ModMask{ModNone, ModCtrl, ModShift | ModAlt, ModCtrl | ModMeta} {
		if got := convertMod(convertToTcellMod(m)); got != m {
			t.Errorf("mod round trip: got %v, want %v", got, m)
		}
	}
}
