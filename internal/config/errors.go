package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidDocument indicates the config file is not valid JSON.
	ErrInvalidDocument = errors.New("config is not valid JSON")

	// ErrInvalidValue indicates a setting has an out-of-range value.
	ErrInvalidValue = errors.New("invalid config value")
)
