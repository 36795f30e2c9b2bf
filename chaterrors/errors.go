package chaterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnknownPattern indicates a pattern type outside the closed registry.
	ErrUnknownPattern = errors.New("unknown pattern type")

	// ErrInvalidPattern indicates a pattern expression that failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidColor indicates a color value that could not be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrDecode indicates a payload that could not be decoded.
	ErrDecode = errors.New("decode error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// PatternError represents a failure to resolve or compile a markup pattern.
type PatternError struct {
	// Type is the pattern type name as supplied by the caller
	Type string
	// Expr is the regular expression source, if any
	Expr string
	// Unknown is true when Type is not a known pattern type
	Unknown bool
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "invalid pattern"
	if e.Unknown {
		msg = "unknown pattern type"
	}
	if e.Type != "" {
		msg += ": " + e.Type
	}
	if e.Expr != "" {
		msg += fmt.Sprintf(" (expr: %s)", e.Expr)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	if e.Unknown {
		return target == ErrUnknownPattern
	}
	return target == ErrInvalidPattern
}

// ColorError represents a color string that could not be parsed strictly.
type ColorError struct {
	// Input is the offending input
	Input string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ColorError) Error() string {
	msg := "invalid color"
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ColorError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// DecodeError represents a failure to decode a JSON or YAML payload, or to
// map a decoded payload onto a Go value.
type DecodeError struct {
	// Format is the source format: "json", "yaml" or "struct"
	Format string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
