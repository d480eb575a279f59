package renderer

import "github.com/dshills/calcstorm/internal/renderer/core"

// Theme holds the colors for every screen region. Derived shades
// (button highlights, borders) are computed from the base colors so a
// config override of one color keeps the chrome coherent.
type Theme struct {
	Background core.Color
	HeaderFg   core.Color
	DisplayFg  core.Color
	DisplayBg  core.Color
	ButtonFg   core.Color
	ButtonBg   core.Color
	AccentBg   core.Color // operator, equals, and clear buttons
	HistoryFg  core.Color
	StatusFg   core.Color
	ErrorFg    core.Color
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: core.MustColorFromHex("#14161f"),
		HeaderFg:   core.MustColorFromHex("#8aadf4"),
		DisplayFg:  core.MustColorFromHex("#cad3f5"),
		DisplayBg:  core.MustColorFromHex("#1e2433"),
		ButtonFg:   core.MustColorFromHex("#cad3f5"),
		ButtonBg:   core.MustColorFromHex("#363a4f"),
		AccentBg:   core.MustColorFromHex("#494d64"),
		HistoryFg:  core.MustColorFromHex("#939ab7"),
		StatusFg:   core.MustColorFromHex("#a6da95"),
		ErrorFg:    core.MustColorFromHex("#ed8796"),
	}
}

// headerStyle returns the style for the title bar.
func (t Theme) headerStyle() core.Style {
	return core.NewStyle(t.HeaderFg, t.Background).Bold()
}

// displayStyle returns the style for the display line.
func (t Theme) displayStyle() core.Style {
	return core.NewStyle(t.DisplayFg, t.DisplayBg).Bold()
}

// pendingStyle returns the style for the pending-operator indicator.
func (t Theme) pendingStyle() core.Style {
	return core.NewStyle(t.DisplayFg.Darken(0.3), t.DisplayBg)
}

// buttonStyle returns the style for one button; accent buttons get the
// brighter background.
func (t Theme) buttonStyle(accent bool) core.Style {
	bg := t.ButtonBg
	if accent {
		bg = t.AccentBg.Lighten(0.08)
	}
	return core.NewStyle(t.ButtonFg, bg)
}

// historyStyle returns the style for history lines.
func (t Theme) historyStyle() core.Style {
	return core.NewStyle(t.HistoryFg, t.Background)
}

// statusStyle returns the style for the status footer.
func (t Theme) statusStyle(isErr bool) core.Style {
	if isErr {
		return core.NewStyle(t.ErrorFg, t.Background).Bold()
	}
	return core.NewStyle(t.StatusFg, t.Background)
}

// backgroundCell returns the fill cell for unused screen area.
func (t Theme) backgroundCell() core.Cell {
	return core.NewCell(' ', core.NewStyle(core.ColorDefault, t.Background))
}
