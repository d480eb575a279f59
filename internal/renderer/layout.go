package renderer

import (
	"github.com/dshills/calcstorm/internal/calc"
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/renderer/core"
)

// Button grid geometry.
const (
	buttonWidth  = 5
	buttonGap    = 1
	gridColumns  = 4
	gridLeft     = 1
	headerRow    = 0
	displayRow   = 2
	gridTopRow   = 4
	historyGap   = 2
	statusMargin = 1
)

// gridWidth is the total width of the button grid in cells.
const gridWidth = gridColumns*buttonWidth + (gridColumns-1)*buttonGap

// MinWidth and MinHeight are the smallest screen the layout fits on.
const (
	MinWidth  = gridLeft + gridWidth + 1
	MinHeight = gridTopRow + 5 + 2
)

// buttonRows is the button grid, top row first. The last row has two
// wide buttons spanning two columns each.
var buttonRows = [][]string{
	{"C", "%", "/", "*"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", "="},
	{"0", "."},
}

// Button is one clickable region of the grid.
type Button struct {
	// Label is the text drawn on the button.
	Label string

	// Command is dispatched when the button is clicked.
	Command input.Command

	// Rect is the clickable screen region.
	Rect core.ScreenRect

	// Accent marks non-digit buttons for the brighter style.
	Accent bool
}

// Layout holds the computed screen regions for one terminal size.
type Layout struct {
	Width  int
	Height int

	Header  core.ScreenRect
	Display core.ScreenRect
	Buttons []Button
	History core.ScreenRect
	Status  core.ScreenRect
}

// TooSmall reports whether the terminal is below the minimum usable
// size.
func (l Layout) TooSmall() bool {
	return l.Width < MinWidth || l.Height < MinHeight
}

// ButtonAt returns the command for the button containing the screen
// position, if any.
func (l Layout) ButtonAt(x, y int) (input.Command, bool) {
	pos := core.NewScreenPos(y, x)
	for _, b := range l.Buttons {
		if b.Rect.Contains(pos) {
			return b.Command, true
		}
	}
	return input.Command{}, false
}

// ComputeLayout arranges the screen regions for the given size.
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	if l.TooSmall() {
		return l
	}

	l.Header = core.RectFromSize(headerRow, 0, 1, width)
	l.Display = core.RectFromSize(displayRow, gridLeft, 1, gridWidth)
	l.Status = core.RectFromSize(height-statusMargin-1, gridLeft, 1, width-gridLeft)

	for row, labels := range buttonRows {
		y := gridTopRow + row
		// Rows shorter than the grid spread their buttons evenly over
		// the full width.
		span := gridColumns / len(labels)
		w := span*buttonWidth + (span-1)*buttonGap
		for col, label := range labels {
			x := gridLeft + col*(w+buttonGap)
			l.Buttons = append(l.Buttons, Button{
				Label:   label,
				Command: commandForLabel(label),
				Rect:    core.RectFromSize(y, x, 1, w),
				Accent:  isAccentLabel(label),
			})
		}
	}

	histLeft := gridLeft + gridWidth + historyGap
	if histLeft < width-4 {
		l.History = core.NewScreenRect(displayRow, histLeft, height-statusMargin-2, width-1)
	}

	return l
}

// commandForLabel maps a button label to its command. All grid
// commands carry SourceMouse; keyboard input goes through the keymap
// instead.
func commandForLabel(label string) input.Command {
	r := rune(label[0])
	var cmd input.Command
	switch {
	case r >= '0' && r <= '9':
		cmd = input.Digit(int(r - '0'))
	case r == '.':
		cmd = input.Decimal()
	case r == '=':
		cmd = input.Equals()
	case r == 'C':
		cmd = input.Clear()
	default:
		if op, ok := calc.OperatorFromRune(r); ok {
			cmd = input.Operator(op)
		}
	}
	return cmd.WithSource(input.SourceMouse)
}

// isAccentLabel reports whether the label is a non-digit control.
func isAccentLabel(label string) bool {
	r := rune(label[0])
	return r < '0' || r > '9'
}
