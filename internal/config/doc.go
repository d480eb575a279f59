// Package config reads the optional JSON configuration file.
//
// The file lives at ~/.config/calcstorm/config.json (following the
// platform's user config dir) and can override the history size, log
// level, mouse support, theme colors, and extra key bindings. A
// missing file yields the defaults; a malformed file is an error so
// typos are not silently ignored.
package config
