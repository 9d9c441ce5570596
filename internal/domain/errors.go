package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNoHashPlaceholder indicates the manifest filename template has no
	// hash placeholder, which would produce a colliding static filename
	ErrNoHashPlaceholder = errors.New("precache manifest filename must contain a [manifestHash] placeholder")

	// ErrBundleNotFound indicates the named runtime bundle does not exist
	// in the compilation
	ErrBundleNotFound = errors.New("runtime bundle not found in compilation")

	// ErrBundleEmpty indicates the named runtime bundle produced no script files
	ErrBundleEmpty = errors.New("runtime bundle produced no script files")

	// ErrInvalidImportMode indicates an unrecognized runtime import mode
	ErrInvalidImportMode = errors.New("invalid runtime import mode")

	// ErrNilCompilation indicates the host supplied no compilation
	ErrNilCompilation = errors.New("compilation is required")

	// ErrGenerationFailed indicates the generation service failed
	ErrGenerationFailed = errors.New("worker generation failed")
)

// ConfigError represents a fatal configuration error. Configuration errors
// abort the emission pass before any output is registered.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error for %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error for %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsConfigError checks whether an error is a fatal configuration error
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return true
	}
	return errors.Is(err, ErrNoHashPlaceholder) ||
		errors.Is(err, ErrBundleNotFound) ||
		errors.Is(err, ErrBundleEmpty) ||
		errors.Is(err, ErrInvalidImportMode)
}
