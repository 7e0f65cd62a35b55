package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a computation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during an operation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the CalculationError.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
// A negative Fibonacci index is reported with this type.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// DimensionError reports incompatible or malformed matrix operands. It
// captures the observed shapes of both operands so callers can surface a
// precise diagnostic.
type DimensionError struct {
	// ARows and ACols are the dimensions of the left operand.
	ARows, ACols int
	// BRows and BCols are the dimensions of the right operand.
	BRows, BCols int
	// Reason explains which shape constraint was violated.
	Reason string
}

// Error returns a formatted message describing the dimension mismatch.
//
// Returns:
//   - string: The error message string.
func (e DimensionError) Error() string {
	return fmt.Sprintf("invalid dimensions: %s (left %dx%d, right %dx%d)",
		e.Reason, e.ARows, e.ACols, e.BRows, e.BCols)
}

// LimitError represents a resource or request limit being exceeded, such as
// a host boundary rejecting an input too large to compute safely.
type LimitError struct {
	// Operation is the name of the operation that was limited.
	Operation string
	// Requested is the size or index the caller asked for.
	Requested int64
	// Limit is the configured maximum.
	Limit int64
}

// Error returns a formatted message describing the limit violation.
//
// Returns:
//   - string: The error message string.
func (e LimitError) Error() string {
	return fmt.Sprintf("limit exceeded for %q: requested %d, limit %d", e.Operation, e.Requested, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInvalidDimensions reports whether err carries a DimensionError anywhere
// in its chain.
func IsInvalidDimensions(err error) bool {
	var de DimensionError
	return errors.As(err, &de)
}

// IsInvalidInput reports whether err carries a ValidationError anywhere in
// its chain.
func IsInvalidInput(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
