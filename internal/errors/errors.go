package errors

import (
	"fmt"
	"time"
)

// Error types for the fuzzy path resolution system
type ErrorType string

const (
	ErrorTypeResolve ErrorType = "resolve"
	ErrorTypeCorpus  ErrorType = "corpus"
	ErrorTypeConfig  ErrorType = "config"
)

// ResolveError represents a failure while resolving requested identifiers
type ResolveError struct {
	Type       ErrorType
	Operation  string
	Query      string
	Underlying error
	Timestamp  time.Time
}

// NewResolveError creates a new resolve error with context
func NewResolveError(op, query string, err error) *ResolveError {
	return &ResolveError{
		Type:       ErrorTypeResolve,
		Operation:  op,
		Query:      query,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ResolveError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("%s %s failed for %q: %v", e.Type, e.Operation, e.Query, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *ResolveError) Unwrap() error {
	return e.Underlying
}

// CorpusError represents a failure listing or probing the corpus
type CorpusError struct {
	Type       ErrorType
	Operation  string
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewCorpusError creates a new corpus error
func NewCorpusError(op, path string, err error) *CorpusError {
	return &CorpusError{
		Type:       ErrorTypeCorpus,
		Operation:  op,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *CorpusError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("corpus %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("corpus %s failed: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error
func (e *CorpusError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
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
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}
