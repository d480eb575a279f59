package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Defaults.
const (
	DefaultHistorySize = 50
	DefaultLogLevel    = "info"
)

// ThemeColors holds hex color overrides for the screen regions. Empty
// fields keep the built-in theme color.
type ThemeColors struct {
	Background string
	HeaderFg   string
	DisplayFg  string
	DisplayBg  string
	ButtonFg   string
	ButtonBg   string
	AccentBg   string
	HistoryFg  string
	StatusFg   string
	ErrorFg    string
}

// Config is the parsed configuration.
type Config struct {
	// HistorySize caps the history lines shown in the pane.
	HistorySize int

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// Mouse enables mouse reporting.
	Mouse bool

	// Theme holds hex color overrides.
	Theme ThemeColors

	// Bindings maps key specs (keymap syntax, e.g. "x" or "C-r") to
	// command names. Digit and operator commands carry arguments and
	// cannot be bound this way.
	Bindings map[string]string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HistorySize: DefaultHistorySize,
		LogLevel:    DefaultLogLevel,
		Mouse:       true,
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "calcstorm", "config.json"), nil
}

// Load reads and parses the config file at path. A missing file is
// not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// LoadDefault reads the config file from the default path.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Parse parses a config document.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if !gjson.ValidBytes(data) {
		return cfg, ErrInvalidDocument
	}
	doc := gjson.ParseBytes(data)

	if v := doc.Get("history.size"); v.Exists() {
		size := int(v.Int())
		if size <= 0 {
			return cfg, fmt.Errorf("%w: history.size must be positive, got %d", ErrInvalidValue, size)
		}
		cfg.HistorySize = size
	}

	if v := doc.Get("log.level"); v.Exists() {
		cfg.LogLevel = v.String()
	}

	if v := doc.Get("input.mouse"); v.Exists() {
		cfg.Mouse = v.Bool()
	}

	if v := doc.Get("input.bindings"); v.Exists() {
		cfg.Bindings = make(map[string]string)
		v.ForEach(func(key, value gjson.Result) bool {
			cfg.Bindings[key.String()] = value.String()
			return true
		})
	}

	theme := doc.Get("theme")
	if theme.Exists() {
		cfg.Theme = ThemeColors{
			Background: theme.Get("background").String(),
			HeaderFg:   theme.Get("header_fg").String(),
			DisplayFg:  theme.Get("display_fg").String(),
			DisplayBg:  theme.Get("display_bg").String(),
			ButtonFg:   theme.Get("button_fg").String(),
			ButtonBg:   theme.Get("button_bg").String(),
			AccentBg:   theme.Get("accent_bg").String(),
			HistoryFg:  theme.Get("history_fg").String(),
			StatusFg:   theme.Get("status_fg").String(),
			ErrorFg:    theme.Get("error_fg").String(),
		}
	}

	return cfg, nil
}
