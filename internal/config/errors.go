package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration loading.
var (
	// ErrInvalidLogLevel indicates a log level outside debug, info, warn,
	// and error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidHistorySize indicates a negative history size.
	ErrInvalidHistorySize = errors.New("config: history size cannot be negative")
)

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parsing %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}
