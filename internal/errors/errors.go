package errors

import (
	"fmt"
	"time"
)

// Error types for the wordnum pipeline
type ErrorType string

const (
	// Configuration errors: malformed table, invalid length bounds.
	ErrorTypeConfig ErrorType = "config"

	// Input source errors: network or file failure while reading words.
	ErrorTypeInput ErrorType = "input"
)

// ConfigError represents an invalid configuration value. Config errors are
// fatal and reported before any processing starts.
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("config error for %s (value %q): %v", e.Field, e.Value, e.Underlying)
	}
	return fmt.Sprintf("config error for %s: %v", e.Field, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// InputSourceError represents a failure reading the word stream. It aborts
// the run; no partial-results recovery is attempted and the core never
// retries.
type InputSourceError struct {
	Source     string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewInputSourceError creates a new input source error
func NewInputSourceError(op, source string, err error) *InputSourceError {
	return &InputSourceError{
		Source:     source,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *InputSourceError) Error() string {
	return fmt.Sprintf("input %s failed for %s: %v", e.Operation, e.Source, e.Underlying)
}

// Unwrap returns the underlying error
func (e *InputSourceError) Unwrap() error {
	return e.Underlying
}
