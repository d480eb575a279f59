package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/sjson"
)

// defaultThemeHex mirrors the built-in theme so the generated file
// documents every color a user can override.
var defaultThemeHex = map[string]string{
	"background": "#14161f",
	"header_fg":  "#8aadf4",
	"display_fg": "#cad3f5",
	"display_bg": "#1e2433",
	"button_fg":  "#cad3f5",
	"button_bg":  "#363a4f",
	"accent_bg":  "#494d64",
	"history_fg": "#939ab7",
	"status_fg":  "#a6da95",
	"error_fg":   "#ed8796",
}

// DefaultJSON renders the default configuration as a JSON document.
func DefaultJSON() ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("history.size", DefaultHistorySize)
	set("log.level", DefaultLogLevel)
	set("input.mouse", true)
	set("input.bindings", map[string]string{})
	for _, key := range []string{
		"background", "header_fg", "display_fg", "display_bg",
		"button_fg", "button_bg", "accent_bg",
		"history_fg", "status_fg", "error_fg",
	} {
		set("theme."+key, defaultThemeHex[key])
	}

	if err != nil {
		return nil, fmt.Errorf("build default config: %w", err)
	}
	return doc, nil
}

// WriteDefault writes the default config document to path, creating
// parent directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}

	doc, err := DefaultJSON()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
