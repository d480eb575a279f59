package renderer

import (
	"testing"

	"github.com/dshills/calcstorm/internal/calc"
	"github.com/dshills/calcstorm/internal/input"
)

func TestComputeLayoutButtonCount(t *testing.T) {
	l := ComputeLayout(80, 24)
	if l.TooSmall() {
		t.Fatal("80x24 should not be too small")
	}
	if len(l.Buttons) != 18 {
		t.Errorf("buttons = %d, want 18", len(l.Buttons))
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	l := ComputeLayout(10, 5)
	if !l.TooSmall() {
		t.Error("10x5 should be too small")
	}
	if len(l.Buttons) != 0 {
		t.Error("too-small layout should have no buttons")
	}
	if _, ok := l.ButtonAt(3, 3); ok {
		t.Error("ButtonAt should miss on a too-small layout")
	}
}

func TestButtonAt(t *testing.T) {
	l := ComputeLayout(80, 24)

	tests := []struct {
		name string
		x, y int
		want input.Command
	}{
		{"clear", 2, 4, input.Clear()},
		{"modulo", 8, 4, input.Operator(calc.OpModulo)},
		{"divide", 14, 4, input.Operator(calc.OpDivide)},
		{"multiply", 20, 4, input.Operator(calc.OpMultiply)},
		{"seven", 2, 5, input.Digit(7)},
		{"minus", 20, 5, input.Operator(calc.OpSubtract)},
		{"four", 2, 6, input.Digit(4)},
		{"plus", 20, 6, input.Operator(calc.OpAdd)},
		{"one", 2, 7, input.Digit(1)},
		{"equals", 20, 7, input.Equals()},
		{"zero wide", 10, 8, input.Digit(0)},
		{"decimal wide", 14, 8, input.Decimal()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.ButtonAt(tt.x, tt.y)
			if !ok {
				t.Fatalf("ButtonAt(%d, %d) missed", tt.x, tt.y)
			}
			want := tt.want.WithSource(input.SourceMouse)
			if got != want {
				t.Errorf("ButtonAt(%d, %d) = %+v, want %+v", tt.x, tt.y, got, want)
			}
		})
	}
}

func TestButtonAtMiss(t *testing.T) {
	l := ComputeLayout(80, 24)

	misses := []struct{ x, y int }{
		{0, 4},  // left margin
		{6, 4},  // gap between buttons
		{40, 4}, // right of the grid
		{2, 3},  // above the grid
		{2, 20}, // below the grid
	}
	for _, m := range misses {
		if cmd, ok := l.ButtonAt(m.x, m.y); ok {
			t.Errorf("ButtonAt(%d, %d) hit %+v, want miss", m.x, m.y, cmd)
		}
	}
}

func TestButtonsCoverGridWidth(t *testing.T) {
	l := ComputeLayout(80, 24)
	for _, b := range l.Buttons {
		if b.Rect.Left < gridLeft || b.Rect.Right > gridLeft+gridWidth {
			t.Errorf("button %q rect %+v outside grid", b.Label, b.Rect)
		}
		if b.Command.IsZero() {
			t.Errorf("button %q has no command", b.Label)
		}
	}
}

func TestAccentButtons(t *testing.T) {
	l := ComputeLayout(80, 24)
	for _, b := range l.Buttons {
		r := rune(b.Label[0])
		isDigit := r >= '0' && r <= '9'
		if b.Accent == isDigit {
			t.Errorf("button %q accent = %v", b.Label, b.Accent)
		}
	}
}
