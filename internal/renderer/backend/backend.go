// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"strings"

	"github.com/dshills/calcstorm/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Key represents a keyboard key.
type Key int

// Key constants for special keys. Printable characters arrive as
// KeyRune with the Rune field set.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other
// display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()

	// HasTrueColor returns true if the backend supports 24-bit color.
	HasTrueColor() bool

	// Beep produces an audible or visual bell.
	Beep()
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	events        chan Event
	beeps         int
	mouse         bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.cells = makeCells(b.width, b.height)
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom && y < b.height; y++ {
		for x := rect.Left; x < rect.Right && x < b.width; x++ {
			if x >= 0 && y >= 0 {
				b.cells[y][x] = cell
			}
		}
	}
}

func (b *NullBackend) Clear() {
	b.cells = makeCells(b.width, b.height)
}

func (b *NullBackend) Show()       {}
func (b *NullBackend) HideCursor() {}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Queue full; drop the event rather than block a test.
	}
}

func (b *NullBackend) EnableMouse()       { b.mouse = true }
func (b *NullBackend) DisableMouse()      { b.mouse = false }
func (b *NullBackend) HasTrueColor() bool { return true }
func (b *NullBackend) Beep()              { b.beeps++ }

// Row returns the text content of one screen row, trailing spaces
// trimmed. For test assertions.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.cells[y][x].Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Beeps returns the number of bell requests. For test assertions.
func (b *NullBackend) Beeps() int {
	return b.beeps
}

// MouseEnabled reports whether mouse reporting is on. For test
// assertions.
func (b *NullBackend) MouseEnabled() bool {
	return b.mouse
}

// Resize simulates a terminal resize.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = makeCells(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

func makeCells(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}
