package config

import "errors"

// Sentinel errors for the config package
var (
	// ErrInvalidFormat indicates the config file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("config must be valid YAML or JSON")

	// ErrFileNotFound indicates the config file does not exist
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)
